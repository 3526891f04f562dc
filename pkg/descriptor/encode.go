// pkg/descriptor/encode.go
package descriptor

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Encode
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// view is the serialized shape of a Descriptor
type view struct {
	Name        string   `yaml:"name" json:"name"`
	Sources     []string `yaml:"sources" json:"sources"`
	IncludeDirs []string `yaml:"include_dirs" json:"include_dirs"`
	LibraryDirs []string `yaml:"library_dirs" json:"library_dirs"`
	Libraries   []string `yaml:"libraries" json:"libraries"`
}

func (d *Descriptor) view() view {
	return view{
		Name:        d.name,
		Sources:     d.Sources(),
		IncludeDirs: d.IncludeDirs(),
		LibraryDirs: d.LibraryDirs(),
		Libraries:   d.Libraries(),
	}
}

// MarshalYAML implements yaml.Marshaler
func (d *Descriptor) MarshalYAML() (interface{}, error) {
	return d.view(), nil
}

// MarshalJSON implements json.Marshaler
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

// Encode writes v in the given format
func Encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
