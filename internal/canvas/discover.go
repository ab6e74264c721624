package canvas

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"
)

// NoteExtension is the extension of markdown notes.
const NoteExtension = ".md"

// DefaultIgnore lists vault paths that never hold user documents.
//
//nolint:gochecknoglobals // immutable lookup table used across the package.
var DefaultIgnore = []string{".obsidian", ".obsidian/**", ".trash", ".trash/**", "**/.git", "**/.git/**", "**/node_modules", "**/node_modules/**"}

const streamBufferSize = 64

// Entry is a document found in the vault.
type Entry struct {
	// Path is absolute; Rel is relative to the vault root with forward slashes.
	Path string
	Rel  string
}

// IsCanvas reports whether the entry is a canvas document.
func (e Entry) IsCanvas() bool {
	return strings.EqualFold(filepath.Ext(e.Path), Extension)
}

// Discover lists the canvases and notes under root, skipping paths matching
// any ignore glob. Results are sorted by relative path.
func Discover(ctx context.Context, root string, ignore []string) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &InvalidPatternError{Pattern: pattern}
		}
	}

	var entries []Entry
	for e := range streamVaultFiles(ctx, abs, ignore) {
		entries = append(entries, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Rel < entries[j].Rel })
	logrus.Debugf("discovered %d vault documents under %s", len(entries), abs)
	return entries, nil
}

// InvalidPatternError reports a malformed ignore glob.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return "invalid ignore pattern: " + e.Pattern
}

func ignored(rel string, ignore []string) bool {
	for _, pattern := range ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isVaultDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == Extension || ext == NoteExtension
}

// streamVaultFiles walks root and streams canvases and notes over a channel.
// The channel is closed when walking completes or the context is canceled.
func streamVaultFiles(ctx context.Context, root string, ignore []string) <-chan Entry {
	out := make(chan Entry, streamBufferSize)
	go func() {
		defer close(out)
		conf := fastwalk.DefaultConfig
		_ = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // Skip unreadable entries.
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil || rel == "." {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if ignored(rel, ignore) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isVaultDocument(path) {
				return nil
			}
			select {
			case out <- Entry{Path: path, Rel: rel}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}()
	return out
}
