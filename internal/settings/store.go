package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/canvas-pan/internal/pan"
	"github.com/ensigniasec/canvas-pan/internal/validate"
)

// DefaultPath is where settings live unless overridden.
const DefaultPath = "~/.config/canvas-pan/settings.json"

// Store handles the loading and saving of the settings file. It is the single
// live copy of the settings for the process.
type Store struct {
	Path   string `validate:"required,filepath"`
	Data   Settings
	format Format
	log    *logrus.Entry
}

// NewStore creates a Store for path, loading it if it exists. A missing file
// yields the defaults.
func NewStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatFor(expandedPath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		Path:   expandedPath,
		Data:   Default(),
		format: format,
		log:    logrus.WithField("component", "settings"),
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("settings path %q: %w", path, err)
	}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

// NewOrExistingStore returns the existing store if the file exists, or creates
// it with the defaults otherwise.
func NewOrExistingStore(path string) (*Store, error) {
	s, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		if err := s.Save(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the file over the defaults. Fields that fail validation fall back
// to their defaults and the healed settings are written back.
func (s *Store) Load() error {
	s.log.Debug("Loading settings file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	loaded := Default()
	if err := Decode(s.format, data, &loaded); err != nil {
		return fmt.Errorf("decoding %s settings %s: %w", s.format, s.Path, err)
	}
	s.Data = loaded

	if err := validate.Struct(s.Data); err != nil {
		changed := false
		if validate.Struct(s.Data.Keys) != nil {
			s.log.Warn("Invalid key bindings found in settings; restoring defaults.")
			s.Data.Keys = pan.DefaultBindings()
			changed = true
		}
		if validate.Var(s.Data.MaxSpeed, "gt=0") != nil {
			s.log.Warn("Invalid maxSpeed found in settings; restoring default.")
			s.Data.MaxSpeed = DefaultMaxSpeed
			changed = true
		}
		if changed {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the settings to the file in full.
func (s *Store) Save() error {
	s.log.Debug("Saving settings file to: ", s.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := Encode(s.format, s.Data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Bindings implements pan.BindingsSource.
func (s *Store) Bindings() pan.Bindings {
	return s.Data.Keys
}

// MaxSpeed implements pan.SpeedSource.
func (s *Store) MaxSpeed() float64 {
	return s.Data.MaxSpeed
}

// SetBindings replaces all four bindings and persists them.
func (s *Store) SetBindings(b pan.Bindings) error {
	if !b.Complete() {
		return ErrIncompleteBindings
	}
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid bindings: %w", err)
	}
	s.Data.Keys = b
	return s.Save()
}

// SetMaxSpeed sets the speed, which must lie on the speed control's scale.
func (s *Store) SetMaxSpeed(v float64) error {
	if v < MinSpeed || v > MaxSpeedLimit || ClampSpeed(v) != v {
		return fmt.Errorf("%w: %v (want %v..%v in steps of %v)", ErrSpeedOutOfRange, v, MinSpeed, MaxSpeedLimit, SpeedStep)
	}
	s.Data.MaxSpeed = v
	return s.Save()
}

// StepSpeed moves the speed by n steps, staying within range.
func (s *Store) StepSpeed(n int) error {
	return s.SetMaxSpeed(ClampSpeed(s.Data.MaxSpeed + float64(n)*SpeedStep))
}

// ResetMaxSpeed restores the default speed.
func (s *Store) ResetMaxSpeed() error {
	s.Data.MaxSpeed = DefaultMaxSpeed
	return s.Save()
}

// Reset restores every setting to its default.
func (s *Store) Reset() error {
	s.Data = Default()
	return s.Save()
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
