// Package reader defines the interface for loading a channel catalog from a
// source document into the core model.
package reader

import "github.com/sonnes/tvindex/core"

// Reader loads a catalog. Implementations guarantee that every channel
// reference points at an entity present in the returned catalog.
type Reader interface {
	// ReadFile parses the catalog document at path.
	ReadFile(path string) (*core.Catalog, error)
}
