package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/log"
)

// ErrUnsupportedFormat is returned for export paths that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is a serialization format for exported highlighting settings.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml or .toml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// exportDocument nests the settings under the same key the config file uses,
// so an exported YAML file can be pasted into a config unchanged.
type exportDocument struct {
	Highlighting highlight.Settings `yaml:"highlighting" toml:"highlighting"`
}

// Export writes settings to path in the format implied by its extension.
func Export(fs afero.Fs, path string, settings highlight.Settings) error {
	path, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding path: %w", err)
	}
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := encodeSettings(format, settings)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err := writeAtomic(fs, path, data); err != nil {
		return err
	}
	log.Info(log.CatConfig, "exported highlighting settings", "path", path, "format", string(format))
	return nil
}

// Import reads settings written by Export. The result is not validated;
// Registry.Import does that atomically.
func Import(fs afero.Fs, path string) (highlight.Settings, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return highlight.Settings{}, fmt.Errorf("expanding path: %w", err)
	}
	format, err := FormatFor(path)
	if err != nil {
		return highlight.Settings{}, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return highlight.Settings{}, fmt.Errorf("reading %s: %w", path, err)
	}
	settings, err := decodeSettings(format, data)
	if err != nil {
		return highlight.Settings{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Info(log.CatConfig, "imported highlighting settings", "path", path, "format", string(format))
	return settings, nil
}

func encodeSettings(format Format, s highlight.Settings) ([]byte, error) {
	if s.Disabled == nil {
		s.Disabled = []string{}
	}
	if s.Custom == nil {
		s.Custom = []highlight.CustomDefinition{}
	}
	doc := exportDocument{Highlighting: s}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		_ = enc.Close()
	}
	return buf.Bytes(), nil
}

func decodeSettings(format Format, data []byte) (highlight.Settings, error) {
	var doc exportDocument
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	return doc.Highlighting, err
}
