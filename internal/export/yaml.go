package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the bundle as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(b *Bundle, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	enc.SetIndent(2)
	return enc.Encode(b)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
