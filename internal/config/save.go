package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/log"
)

const highlightingKey = "highlighting"

// SaveHighlighting replaces the highlighting section of the config file.
// Comments and formatting in other sections are preserved by editing the
// yaml.Node tree rather than re-marshaling the whole Config.
func SaveHighlighting(fs afero.Fs, configPath string, settings highlight.Settings) error {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil && !isNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	node, err := buildHighlightingNode(settings)
	if err != nil {
		return fmt.Errorf("building highlighting node: %w", err)
	}

	if err := setTopLevelKey(&doc, highlightingKey, node); err != nil {
		return err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(fs, configPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "saved highlighting settings", "path", configPath,
		"disabled", len(settings.Disabled), "custom", len(settings.Custom))
	return nil
}

// setTopLevelKey replaces or appends key in the document's root mapping,
// creating the document when it is empty.
func setTopLevelKey(doc *yaml.Node, key string, value *yaml.Node) error {
	if doc.Kind == 0 {
		*doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: key},
						value,
					},
				},
			},
		}
		return nil
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("parsing config: unexpected document structure")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = value
			return nil
		}
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
	return nil
}

// buildHighlightingNode encodes settings with empty lists kept as [] so the
// saved file always shows every field.
func buildHighlightingNode(s highlight.Settings) (*yaml.Node, error) {
	if s.Disabled == nil {
		s.Disabled = []string{}
	}
	if s.Custom == nil {
		s.Custom = []highlight.CustomDefinition{}
	}
	node := &yaml.Node{}
	if err := node.Encode(s); err != nil {
		return nil, err
	}
	return node, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := afero.TempFile(fs, dir, ".pgtail.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = fs.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := fs.Rename(tempPath, path); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
