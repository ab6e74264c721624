package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
	"github.com/ensigniasec/canvas-pan/internal/settings"
	"github.com/ensigniasec/canvas-pan/internal/tui"
	"github.com/ensigniasec/canvas-pan/internal/validate"
)

const envPrefix = "CANVAS_PAN"

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = ""
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	settingsFile = settings.DefaultPath
	verbose      bool
	logFile      string
	releaseAfter = tui.DefaultReleaseAfter
	zoom         float64
	ignore       []string
	jsonOutput   bool

	rootCmd = &cobra.Command{
		Use:   "canvas-pan [VAULT_DIR | FILE...]",
		Short: "Pan infinite canvases from the keyboard.",
		Long: `Browse a vault of JSON Canvas boards and markdown notes in the terminal, ` +
			`panning the focused canvas with rebindable direction keys (w/a/s/d by default). ` +
			`The pan speed ramps up logarithmically while keys are held.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
		Args: cobra.ArbitraryArgs,
		Run:  runTUI,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", settingsFile,
		"Settings file; the extension selects JSON, YAML or TOML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Write logs here while the interactive view is open (discarded otherwise)")
	rootCmd.PersistentFlags().DurationVar(&releaseAfter, "release-after", releaseAfter,
		"Time without a key repeat after which a held key counts as released; keep it above the keyboard auto-repeat delay")
	rootCmd.PersistentFlags().Float64Var(&zoom, "zoom", 0, "Zoom level canvases open at (-4 to 1)")
	rootCmd.PersistentFlags().StringSliceVar(&ignore, "ignore", nil,
		"Extra doublestar globs, relative to the vault, to leave out of discovery")

	settingsShowCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the settings as JSON")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSpeedCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPathCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(listCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = getVersion()
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func getVersion() string {
	if releaseVersion != "" {
		return releaseVersion
	}
	return versioninfo.Short()
}

// initConfig lets CANVAS_PAN_* environment variables fill flags the user did not set.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil || f.Name == "help" || f.Name == "version" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			firstErr = fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
		}
	})
	if firstErr != nil {
		return firstErr
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var runCmd = &cobra.Command{
	Use:   "run [VAULT_DIR | FILE...]",
	Short: "Open the interactive canvas view. [Default command]",
	Long: "Open the interactive view. A directory argument is the vault offered in the file picker; " +
		"file arguments (.canvas or .md) are opened as tabs and their directory becomes the vault.",
	Run: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	if releaseAfter <= 0 {
		logrus.Fatalf("--release-after must be positive, got %s", releaseAfter)
	}
	if !verbose {
		logrus.SetLevel(logrus.WarnLevel)
	}

	st, err := settings.NewOrExistingStore(settingsFile)
	if err != nil {
		logrus.Fatalf("Unable to open or create settings: %v", err)
	}

	opts, err := tuiOptions(args)
	if err != nil {
		logrus.Fatal(err)
	}

	var logOut io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logrus.Fatalf("Unable to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	if err := tui.Run(cmd.Context(), st, opts, logOut); err != nil {
		logrus.Fatalf("TUI failed: %v", err)
	}
}

// tuiOptions turns the positional arguments into a vault root and files to open.
func tuiOptions(args []string) (tui.Options, error) {
	opts := tui.Options{
		Ignore:       ignore,
		ReleaseAfter: releaseAfter,
		Zoom:         zoom,
	}
	if len(args) == 0 {
		opts.VaultRoot = "."
		return opts, nil
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return opts, err
		}
		if info.IsDir() {
			if opts.VaultRoot != "" {
				return opts, fmt.Errorf("only one vault directory may be given, got %s and %s", opts.VaultRoot, arg)
			}
			opts.VaultRoot = arg
			continue
		}
		opts.Open = append(opts.Open, arg)
	}
	if opts.VaultRoot == "" {
		opts.VaultRoot = filepath.Dir(opts.Open[0])
	}
	return opts, nil
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or change the saved panning settings",
	Long:  "Show, adjust, or reset the persisted direction keys and maximum pan speed.",
	Run: func(cmd *cobra.Command, args []string) {
		settingsShowCmd.Run(cmd, args)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := settings.NewOrExistingStore(settingsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if jsonOutput {
			out, err := json.MarshalIndent(st.Data, "", "  ")
			if err != nil {
				logrus.Fatal(err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return
		}
		k := st.Bindings()
		fmt.Fprintf(os.Stdout, "north: %s\nwest:  %s\nsouth: %s\neast:  %s\nmaxSpeed: %g\n",
			k.North, k.West, k.South, k.East, st.MaxSpeed())
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var settingsSpeedCmd = &cobra.Command{
	Use:   "speed [N]",
	Short: "Set the maximum pan speed",
	Long: fmt.Sprintf("Set the maximum pan speed, between %g and %g in steps of %g.",
		settings.MinSpeed, settings.MaxSpeedLimit, settings.SpeedStep),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := validate.Var(args[0], "numeric"); err != nil {
			logrus.Fatalf("Invalid speed: %q. Expected a number such as %g.", args[0], settings.DefaultMaxSpeed)
		}
		speed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			logrus.Fatalf("Invalid speed: %q. Expected a number such as %g.", args[0], settings.DefaultMaxSpeed)
		}
		st, err := settings.NewOrExistingStore(settingsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := st.SetMaxSpeed(speed); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Maximum pan speed set to %g\n", st.MaxSpeed())
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default keys and speed",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := settings.NewOrExistingStore(settingsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := st.Reset(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, "Settings reset to defaults")
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := settings.NewStore(settingsFile)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, st.Path)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var listCmd = &cobra.Command{
	Use:   "list [VAULT_DIR]",
	Short: "List the canvases and notes in a vault",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		entries, err := canvas.Discover(cmd.Context(), root, ignore)
		if err != nil {
			logrus.Fatal(err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(os.Stdout, "No canvases or notes found")
			return
		}
		for _, e := range entries {
			kind := "note  "
			if e.IsCanvas() {
				kind = "canvas"
			}
			fmt.Fprintf(os.Stdout, "%s  %s\n", kind, e.Rel)
		}
	},
}

func main() {
	Execute()
}
