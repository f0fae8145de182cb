package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jorge-barreto/syllabus/internal/links"
	"github.com/jorge-barreto/syllabus/internal/manifest"
	"github.com/jorge-barreto/syllabus/internal/registry"
	"github.com/jorge-barreto/syllabus/internal/resources"
)

// Options selects what Open reads.
type Options struct {
	Root     string // directory holding docs and examples; defaults to "."
	Manifest string // explicit manifest path, relative to the working directory
}

// Catalog is a registry together with the resources it is checked against.
// It is immutable once returned by Open.
type Catalog struct {
	Root      string
	Manifest  *manifest.Manifest
	Registry  *registry.Registry
	Resources *resources.Set
}

// Open scans root, loads its manifest (or discovers topics from the docs
// tree), and builds the registry. The catalog is returned only once every
// part is built.
func Open(ctx context.Context, opts Options) (*Catalog, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	set, err := resources.Scan(root)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "scanned resources", "root", root, "paths", set.Len())

	m, err := loadManifest(root, opts.Manifest)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "loaded manifest", "source", m.Source, "topics", len(m.Topics))

	return &Catalog{
		Root:      root,
		Manifest:  m,
		Registry:  registry.New(m.Entries()),
		Resources: set,
	}, nil
}

func loadManifest(root, explicit string) (*manifest.Manifest, error) {
	path := explicit
	if path == "" {
		found, err := manifest.Find(root)
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		m, err := manifest.Discover(root)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	return m, nil
}

// Check validates the registry against the scanned resources. With
// withLinks set, relative links inside each doc page are checked too.
func (c *Catalog) Check(withLinks bool) []registry.Violation {
	vs := c.Registry.Validate(c.Resources)
	if withLinks {
		vs = append(vs, links.Check(c.Root, c.Registry.List(), c.Resources)...)
	}
	return vs
}
