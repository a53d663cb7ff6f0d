// Package generate turns a catalog into the static playlist tree: the global
// and SFW indexes, channels.json, the grouped indexes and one playlist per
// category, country and language.
package generate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sonnes/tvindex/core"
	"github.com/sonnes/tvindex/query"
	"github.com/sonnes/tvindex/storage"
)

// Artifact is one output file: a header written when the file is created,
// followed by records appended in order. Path is relative to the output root.
type Artifact struct {
	Path    string
	Header  string
	Records []string
}

// Summary reports catalog sizes after a successful run.
type Summary struct {
	Countries  int
	Languages  int
	Categories int
	Channels   int
}

// Generator writes the playlist tree for a catalog under Root.
type Generator struct {
	Root   string
	Store  storage.Storage
	Logger *log.Logger
}

// New creates a Generator writing under root through store.
func New(root string, store storage.Storage) *Generator {
	return &Generator{Root: root, Store: store, Logger: log.Default()}
}

// Run executes every step in order and stops at the first failure. Files
// written by earlier steps are left in place.
func (g *Generator) Run(cat *core.Catalog) (Summary, error) {
	if cat == nil {
		return Summary{}, errors.New("nil catalog")
	}

	g.Logger.Info("Creating output folder", "dir", g.Root)
	if err := g.Store.CreateDir(g.Root); err != nil {
		return Summary{}, fmt.Errorf("create output folder: %w", err)
	}

	v := newViews(cat)
	for _, s := range steps {
		g.Logger.Info(s.message)

		if s.dir != "" {
			if err := g.Store.CreateDir(filepath.Join(g.Root, s.dir)); err != nil {
				return Summary{}, fmt.Errorf("%s: %w", s.name, err)
			}
		}

		artifacts, err := s.build(v)
		if err != nil {
			return Summary{}, fmt.Errorf("%s: %w", s.name, err)
		}
		for _, a := range artifacts {
			if err := g.write(a); err != nil {
				return Summary{}, fmt.Errorf("%s: %w", s.name, err)
			}
		}
	}

	sum := Summary{
		Countries:  query.Countries(cat.Countries).Count(),
		Languages:  query.Languages(cat.Languages).Count(),
		Categories: query.Categories(cat.Categories).Count(),
		Channels:   v.channels.Count(),
	}
	g.Logger.Info("Done.",
		"countries", sum.Countries,
		"languages", sum.Languages,
		"categories", sum.Categories,
		"channels", sum.Channels,
	)
	return sum, nil
}

// write creates the artifact's file with its header and appends each record.
func (g *Generator) write(a Artifact) error {
	path := filepath.Join(g.Root, a.Path)
	if err := g.Store.CreateFile(path, a.Header); err != nil {
		return err
	}
	for _, r := range a.Records {
		if err := g.Store.AppendFile(path, r); err != nil {
			return err
		}
	}
	return nil
}
