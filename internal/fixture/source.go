// Package fixture supplies catalog items to the showcase. Sources are
// read-only: nothing the showcase mutates is written back.
package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"projects/showcase/internal/domain"

	log "github.com/sirupsen/logrus"
)

type Source interface {
	LoadCatalog(ctx context.Context, kind domain.CatalogKind) ([]domain.Item, error)
}

//go:embed data/*.yaml
var builtin embed.FS

type fsSource struct {
	fsys fs.FS
	name string
}

// NewEmbeddedSource serves the fixtures compiled into the binary.
func NewEmbeddedSource() Source {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return &fsSource{fsys: sub, name: "builtin"}
}

// NewFileSource reads <dir>/<kind>.<ext>, trying YAML, then JSON, then HTML.
func NewFileSource(dir string) Source {
	return &fsSource{fsys: os.DirFS(dir), name: dir}
}

func (s *fsSource) LoadCatalog(ctx context.Context, kind domain.CatalogKind) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, format := range Formats {
		for _, ext := range format.Extensions() {
			path := kind.String() + ext

			data, err := fs.ReadFile(s.fsys, path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read fixture %s: %w", filepath.Join(s.name, path), err)
			}

			items, err := Decode(format, data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filepath.Join(s.name, path), err)
			}

			log.Debugf("Loaded %d %s items from %s", len(items), kind, filepath.Join(s.name, path))
			return items, nil
		}
	}

	return nil, fmt.Errorf("no fixture for %s in %s", kind, s.name)
}
