package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown catalog format %q", raw)
}

// FormatForPath infers the encoding from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	}
	return FormatJSON
}

//go:embed sample.json
var sampleDoc []byte

// Sample returns the bundled demo catalog.
func Sample() (*Catalog, error) {
	c, err := Parse(sampleDoc, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing bundled catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog document from disk. FormatAuto picks the
// encoding from the file extension.
func Load(path string, format Format) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if format == FormatAuto || format == "" {
		format = FormatForPath(path)
	}
	return Parse(data, format)
}

// LoadOrEmpty behaves like Load but never fails: read and decode errors are
// logged and an empty catalog is returned. An empty path loads the bundled
// sample.
func LoadOrEmpty(path string, format Format, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		c   *Catalog
		err error
	)
	if path == "" {
		c, err = Sample()
	} else {
		c, err = Load(path, format)
	}
	if err != nil {
		logger.Error("catalog unavailable, continuing with empty inventory",
			"path", path, "error", err)
		return Empty()
	}
	logger.Debug("catalog loaded",
		"path", path,
		"wines", len(c.wines),
		"open_bottles", len(c.openBottles),
		"ratings", len(c.ratings))
	return c
}

// Parse decodes a catalog document. JSON input may contain comments and
// trailing commas.
func Parse(data []byte, format Format) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Empty().withFingerprint(data), nil
	}
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	case FormatJSON, FormatAuto, "":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return New(doc).withFingerprint(data), nil
}

func validate(doc Document) error {
	for _, w := range doc.Wines {
		if w.ID == "" {
			return fmt.Errorf("wine %q has no id", w.Name)
		}
		if w.Quantity < 0 {
			return fmt.Errorf("wine %s: negative quantity %d", w.ID, w.Quantity)
		}
	}
	for _, b := range doc.OpenBottles {
		if b.DaysOpen < 0 {
			return fmt.Errorf("open bottle for %s: negative days open %d", b.WineID, b.DaysOpen)
		}
	}
	return nil
}
