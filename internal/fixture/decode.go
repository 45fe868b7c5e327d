package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"projects/showcase/internal/domain"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Formats in the order a directory lookup tries them.
var Formats = []Format{FormatYAML, FormatJSON, FormatHTML}

func (f Format) Extensions() []string {
	switch f {
	case FormatYAML:
		return []string{".yaml", ".yml"}
	case FormatJSON:
		return []string{".json"}
	case FormatHTML:
		return []string{".html", ".htm"}
	default:
		return nil
	}
}

func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats {
		for _, e := range f.Extensions() {
			if e == ext {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("no fixture format for file %q", path)
}

func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("bad content type %q: %w", contentType, err)
	}
	switch mediaType {
	case "application/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	case "text/html", "application/xhtml+xml":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("no fixture format for content type %q", mediaType)
	}
}

// Decode parses a whole catalog document. YAML and JSON documents are a
// top-level list of records.
func Decode(format Format, data []byte) ([]domain.Item, error) {
	var records []Record

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML fixture: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode JSON fixture: %w", err)
		}
	case FormatHTML:
		var err error
		records, err = parseHTML(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported fixture format %q", format)
	}

	return Items(records), nil
}
