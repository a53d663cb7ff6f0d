// Package query provides ordered, filtered views over catalog collections.
// Views are immutable: every operation returns a new slice or view and never
// touches the underlying entities.
package query

import (
	"slices"
	"strings"

	"github.com/sonnes/tvindex/core"
)

// Field names a channel attribute usable as a sort key.
type Field string

const (
	FieldName     Field = "name"
	FieldURL      Field = "url"
	FieldCategory Field = "category" // category display name
	FieldCountry  Field = "country"  // country display name
	FieldLanguage Field = "language" // language display name
)

// Channels is an ordered view over a channel collection.
type Channels struct {
	items []*core.Channel
}

// NewChannels wraps items in catalog order. The slice is not copied until an
// operation needs to reorder or filter it.
func NewChannels(items []*core.Channel) *Channels {
	return &Channels{items: items}
}

// SortBy returns a new view ordered by fields, compared ascending with
// byte-wise string comparison. Ties fall through to (name, url) and finally
// to the order of the current view, so the result is fully deterministic.
//
// A missing category, country or language sorts after every present value.
func (q *Channels) SortBy(fields ...Field) *Channels {
	keys := make([]Field, 0, len(fields)+2)
	keys = append(keys, fields...)
	keys = append(keys, FieldName, FieldURL)

	sorted := slices.Clone(q.items)
	slices.SortStableFunc(sorted, func(a, b *core.Channel) int {
		for _, f := range keys {
			if c := compareField(f, a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return &Channels{items: sorted}
}

// All returns every channel in view order.
func (q *Channels) All() []*core.Channel {
	return slices.Clone(q.items)
}

// Count returns the number of channels in the view.
func (q *Channels) Count() int {
	return len(q.items)
}

// SFW returns the channels flagged safe for work, in view order.
func (q *Channels) SFW() []*core.Channel {
	return q.filter(func(ch *core.Channel) bool { return ch.SFW })
}

// ForCountry returns the channels assigned to country, matched by code. A nil
// country selects the channels with no country assigned.
func (q *Channels) ForCountry(country *core.Country) []*core.Channel {
	return q.filter(func(ch *core.Channel) bool {
		if country == nil {
			return ch.Country == nil
		}
		return ch.Country != nil && ch.Country.Code == country.Code
	})
}

// ForLanguage returns the channels assigned to language, matched by code. A
// nil language selects the channels with no language assigned.
func (q *Channels) ForLanguage(language *core.Language) []*core.Channel {
	return q.filter(func(ch *core.Channel) bool {
		if language == nil {
			return ch.Language == nil
		}
		return ch.Language != nil && ch.Language.Code == language.Code
	})
}

// ForCategory returns the channels assigned to category, matched by id. A nil
// category selects the uncategorized channels.
func (q *Channels) ForCategory(category *core.Category) []*core.Channel {
	return q.filter(func(ch *core.Channel) bool {
		if category == nil {
			return ch.Category == nil
		}
		return ch.Category != nil && ch.Category.ID == category.ID
	})
}

func (q *Channels) filter(keep func(*core.Channel) bool) []*core.Channel {
	out := make([]*core.Channel, 0, len(q.items))
	for _, ch := range q.items {
		if keep(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func compareField(f Field, a, b *core.Channel) int {
	switch f {
	case FieldName:
		return strings.Compare(a.Name, b.Name)
	case FieldURL:
		return strings.Compare(a.URL, b.URL)
	case FieldCategory:
		return compareOptional(a.Category == nil, b.Category == nil, a.CategoryName(), b.CategoryName())
	case FieldCountry:
		return compareOptional(a.Country == nil, b.Country == nil, a.CountryName(), b.CountryName())
	case FieldLanguage:
		return compareOptional(a.Language == nil, b.Language == nil, a.LanguageName(), b.LanguageName())
	default:
		return 0
	}
}

// compareOptional orders present values before missing ones.
func compareOptional(aMissing, bMissing bool, a, b string) int {
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return 1
	case bMissing:
		return -1
	default:
		return strings.Compare(a, b)
	}
}
