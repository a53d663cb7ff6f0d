// Package jsoncat reads catalogs stored as a single JSON document:
//
//	{
//	  "categories": [{"id": "news", "name": "News"}],
//	  "countries":  [{"code": "US", "name": "United States"}],
//	  "languages":  [{"code": "eng", "name": "English"}],
//	  "channels":   [{"name": "CNN", "url": "http://...", "category": "news",
//	                  "country": "US", "language": "eng", "sfw": true}]
//	}
//
// A channel's category, country and language hold the id or code of an entity
// declared in the same document. Omitted or empty means unclassified.
package jsoncat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sonnes/tvindex/core"
)

// Reader reads JSON catalog files.
type Reader struct{}

// Raw JSON deserialization types. These mirror the document on disk.

type rawCatalog struct {
	Categories []core.Category `json:"categories"`
	Countries  []core.Country  `json:"countries"`
	Languages  []core.Language `json:"languages"`
	Channels   []rawChannel    `json:"channels"`
}

type rawChannel struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Country  string `json:"country"`
	Language string `json:"language"`
	SFW      bool   `json:"sfw"`
}

// ReadFile parses the catalog at path.
func (r *Reader) ReadFile(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a catalog document from rd and resolves channel references.
func Decode(rd io.Reader) (*core.Catalog, error) {
	var raw rawCatalog
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return build(&raw)
}

func build(raw *rawCatalog) (*core.Catalog, error) {
	cat := &core.Catalog{
		Categories: make([]*core.Category, len(raw.Categories)),
		Countries:  make([]*core.Country, len(raw.Countries)),
		Languages:  make([]*core.Language, len(raw.Languages)),
		Channels:   make([]*core.Channel, len(raw.Channels)),
	}

	categories := make(map[string]*core.Category, len(raw.Categories))
	for i := range raw.Categories {
		c := &raw.Categories[i]
		if err := register(categories, "category", c.ID, "other", c); err != nil {
			return nil, err
		}
		cat.Categories[i] = c
	}

	countries := make(map[string]*core.Country, len(raw.Countries))
	for i := range raw.Countries {
		c := &raw.Countries[i]
		if err := register(countries, "country", c.Code, "undefined", c); err != nil {
			return nil, err
		}
		cat.Countries[i] = c
	}

	languages := make(map[string]*core.Language, len(raw.Languages))
	for i := range raw.Languages {
		l := &raw.Languages[i]
		if err := register(languages, "language", l.Code, "undefined", l); err != nil {
			return nil, err
		}
		cat.Languages[i] = l
	}

	for i, rc := range raw.Channels {
		ch := &core.Channel{Name: rc.Name, URL: rc.URL, SFW: rc.SFW}

		var err error
		if ch.Category, err = resolve(categories, "category", rc.Category); err != nil {
			return nil, fmt.Errorf("channel %q: %w", rc.Name, err)
		}
		if ch.Country, err = resolve(countries, "country", rc.Country); err != nil {
			return nil, fmt.Errorf("channel %q: %w", rc.Name, err)
		}
		if ch.Language, err = resolve(languages, "language", rc.Language); err != nil {
			return nil, fmt.Errorf("channel %q: %w", rc.Name, err)
		}
		cat.Channels[i] = ch
	}

	return cat, nil
}

// register indexes v under key. Keys name playlist files, so they must be a
// single path element and must not collide with the catch-all playlist
// (reserved) written next to them.
func register[T any](index map[string]*T, kind, key, reserved string, v *T) error {
	if key == "" {
		return fmt.Errorf("%s with empty key", kind)
	}
	if key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%s %q is not a valid file name", kind, key)
	}
	if key == reserved {
		return fmt.Errorf("%s %q is reserved", kind, key)
	}
	if _, dup := index[key]; dup {
		return fmt.Errorf("duplicate %s %q", kind, key)
	}
	index[key] = v
	return nil
}

// resolve looks up key; an empty key resolves to nil (unclassified).
func resolve[T any](index map[string]*T, kind, key string) (*T, error) {
	if key == "" {
		return nil, nil
	}
	v, ok := index[key]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, key)
	}
	return v, nil
}
