package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for settings files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// Format is a settings file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "json"
	}
}

// FormatFor picks the encoding from a path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Decode overlays data onto v, leaving fields absent from data untouched.
func Decode(f Format, data []byte, v *Settings) error {
	switch f {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	default:
		return json.Unmarshal(data, v)
	}
}

// Encode renders v in full.
func Encode(f Format, v Settings) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.MarshalIndent(v, "", "  ")
	}
}
