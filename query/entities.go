package query

import (
	"slices"
	"strings"

	"github.com/sonnes/tvindex/core"
)

// Entities is an ordered view over one of the catalog's dimension
// collections (categories, countries or languages).
type Entities[T any] struct {
	items []T
	name  func(T) string
}

// Categories wraps the catalog's categories in catalog order.
func Categories(items []*core.Category) *Entities[*core.Category] {
	return &Entities[*core.Category]{items: items, name: func(c *core.Category) string { return c.Name }}
}

// Countries wraps the catalog's countries in catalog order.
func Countries(items []*core.Country) *Entities[*core.Country] {
	return &Entities[*core.Country]{items: items, name: func(c *core.Country) string { return c.Name }}
}

// Languages wraps the catalog's languages in catalog order.
func Languages(items []*core.Language) *Entities[*core.Language] {
	return &Entities[*core.Language]{items: items, name: func(l *core.Language) string { return l.Name }}
}

// SortByName returns a new view ordered by display name. Equal names keep
// their current relative order.
func (e *Entities[T]) SortByName() *Entities[T] {
	sorted := slices.Clone(e.items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return strings.Compare(e.name(a), e.name(b))
	})
	return &Entities[T]{items: sorted, name: e.name}
}

// All returns every entity in view order.
func (e *Entities[T]) All() []T {
	return slices.Clone(e.items)
}

// Count returns the number of entities.
func (e *Entities[T]) Count() int {
	return len(e.items)
}
