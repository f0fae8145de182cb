package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/syllabus/internal/registry"
)

// Names are the manifest file names looked for in a root, in priority order.
var Names = []string{"topics.yaml", "topics.yml", "topics.hcl"}

type Topic struct {
	ID       string   `yaml:"id" hcl:"id,label"`
	Title    string   `yaml:"title" hcl:"title,optional"`
	Doc      string   `yaml:"doc" hcl:"doc,optional"`
	Examples []string `yaml:"examples" hcl:"examples,optional"`
	Order    int      `yaml:"order" hcl:"order,optional"`
}

type Manifest struct {
	Name   string  `yaml:"name" hcl:"name,optional"`
	Topics []Topic `yaml:"topics" hcl:"topic,block"`

	// Source is the file the manifest was read from, or the directory it
	// was discovered in.
	Source string `yaml:"-"`
}

// Find returns the path of the manifest in root, or "" if there is none.
func Find(root string) (string, error) {
	for _, name := range Names {
		p := filepath.Join(root, name)
		info, err := os.Stat(p)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("manifest: %s is a directory", p)
			}
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}

// Load reads a YAML or HCL manifest, chosen by file extension.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m *Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		m, err = decodeYAML(data)
	case ".hcl":
		m, err = decodeHCL(data, path)
	default:
		return nil, fmt.Errorf("manifest %s: unsupported format %q (must be .yaml, .yml, or .hcl)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	m.Source = path
	m.applyDefaultOrder()
	return m, nil
}

func decodeYAML(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return &Manifest{}, nil
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeHCL(data []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %w", diags)
	}

	var m Manifest
	diags = gohcl.DecodeBody(file.Body, nil, &m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding HCL: %w", diags)
	}
	return &m, nil
}

// applyDefaultOrder numbers topics by their listed position when no topic
// sets an order. Explicit orders are left alone so gaps stay visible.
func (m *Manifest) applyDefaultOrder() {
	for _, t := range m.Topics {
		if t.Order != 0 {
			return
		}
	}
	for i := range m.Topics {
		m.Topics[i].Order = i + 1
	}
}

// Entries converts the manifest topics to registry entries.
func (m *Manifest) Entries() []registry.Entry {
	entries := make([]registry.Entry, len(m.Topics))
	for i, t := range m.Topics {
		entries[i] = registry.Entry{
			ID:          strings.TrimSpace(t.ID),
			Title:       strings.TrimSpace(t.Title),
			DocRef:      strings.TrimSpace(t.Doc),
			ExampleRefs: append([]string(nil), t.Examples...),
			Order:       t.Order,
		}
	}
	return entries
}
