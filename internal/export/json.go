package export

import (
	"encoding/json"
	"io"
)

// JSONExporter writes the bundle as indented JSON.
type JSONExporter struct{}

func (e *JSONExporter) Export(b *Bundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
