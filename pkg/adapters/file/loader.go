package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wilayah/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.DatasetLoader over a local JSON or YAML file.
// The format is chosen by extension: .yaml/.yml is YAML, everything else JSON.
type Loader struct {
	Path string
}

// NewLoader creates a Loader for path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Describe names the source for logs.
func (l *Loader) Describe() string {
	return "file:" + l.Path
}

// Load reads and parses the dataset file.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data, FormatFor(l.Path))
}

// Format is a dataset serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks a format from a file name or URL path.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a dataset document. Unknown fields are ignored; missing
// sections decode as empty lists.
func Parse(data []byte, format Format) (*domain.Dataset, error) {
	var ds domain.Dataset
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to parse dataset yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to parse dataset json: %w", err)
		}
	}
	return &ds, nil
}
