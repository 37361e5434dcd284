package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/cellarctl/internal/util"
	"gopkg.in/yaml.v3"
)

// Marshal encodes a wine list as JSON or YAML.
func Marshal(wines []Wine, format Format) ([]byte, error) {
	if wines == nil {
		wines = []Wine{}
	}
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(wines); err != nil {
			return nil, fmt.Errorf("encoding wines: %w", err)
		}
	case FormatJSON, FormatAuto, "":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(wines); err != nil {
			return nil, fmt.Errorf("encoding wines: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	return buf.Bytes(), nil
}

// WriteFile atomically writes a wine list to disk. FormatAuto picks the
// encoding from the file extension.
func WriteFile(path string, wines []Wine, format Format) error {
	if format == FormatAuto || format == "" {
		format = FormatForPath(path)
	}
	data, err := Marshal(wines, format)
	if err != nil {
		return err
	}
	return util.WriteFileAtomic(path, data)
}
