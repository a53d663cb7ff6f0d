package query

import (
	"testing"

	"github.com/sonnes/tvindex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	catNews   = &core.Category{ID: "news", Name: "News"}
	catSports = &core.Category{ID: "sports", Name: "Sports"}
	countryUS = &core.Country{Code: "US", Name: "United States"}
	countryFR = &core.Country{Code: "FR", Name: "France"}
	langEng   = &core.Language{Code: "eng", Name: "English"}
	langFra   = &core.Language{Code: "fra", Name: "French"}
)

func testChannels() []*core.Channel {
	return []*core.Channel{
		{Name: "Zed", URL: "u1"},
		{Name: "Ant", URL: "u2", Category: catNews, Country: countryUS, Language: langEng, SFW: true},
		{Name: "Bee", URL: "u4", Category: catSports, Country: countryFR, Language: langFra, SFW: true},
		{Name: "Bee", URL: "u3", Category: catNews, Country: countryUS},
		{Name: "ant", URL: "u5", Language: langEng, SFW: true},
	}
}

func names(chs []*core.Channel) []string {
	out := make([]string, len(chs))
	for i, ch := range chs {
		out[i] = ch.Name + "|" + ch.URL
	}
	return out
}

func TestSortByNameURL(t *testing.T) {
	got := NewChannels(testChannels()).SortBy(FieldName, FieldURL).All()

	assert.Equal(t, []string{"Ant|u2", "Bee|u3", "Bee|u4", "Zed|u1", "ant|u5"}, names(got),
		"byte-wise, case-sensitive order with url as tie-break")

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		require.True(t, prev.Name < cur.Name || (prev.Name == cur.Name && prev.URL <= cur.URL))
	}
}

func TestSortByIsDeterministic(t *testing.T) {
	q := NewChannels(testChannels())
	first := names(q.SortBy(FieldName, FieldURL).All())
	for range 5 {
		assert.Equal(t, first, names(q.SortBy(FieldName, FieldURL).All()))
	}
}

func TestSortByFallsBackToNameURL(t *testing.T) {
	got := NewChannels(testChannels()).SortBy().All()
	assert.Equal(t, []string{"Ant|u2", "Bee|u3", "Bee|u4", "Zed|u1", "ant|u5"}, names(got))
}

func TestSortByStableOnFullTie(t *testing.T) {
	a := &core.Channel{Name: "Same", URL: "u"}
	b := &core.Channel{Name: "Same", URL: "u"}
	got := NewChannels([]*core.Channel{a, b}).SortBy(FieldName, FieldURL).All()
	require.Len(t, got, 2)
	assert.Same(t, a, got[0], "insertion order is the final tie-break")
	assert.Same(t, b, got[1])
}

func TestSortByCategory(t *testing.T) {
	got := NewChannels(testChannels()).SortBy(FieldCategory, FieldName, FieldURL).All()
	assert.Equal(t, []string{"Ant|u2", "Bee|u3", "Bee|u4", "Zed|u1", "ant|u5"}, names(got))
	assert.Equal(t, "News", got[0].CategoryName())
	assert.Equal(t, "News", got[1].CategoryName())
	assert.Equal(t, "Sports", got[2].CategoryName())
	assert.Nil(t, got[3].Category, "uncategorized channels sort last")
	assert.Nil(t, got[4].Category)
}

func TestSortByDoesNotReorderSource(t *testing.T) {
	src := testChannels()
	before := names(src)
	NewChannels(src).SortBy(FieldName)
	assert.Equal(t, before, names(src))
}

func TestSFW(t *testing.T) {
	q := NewChannels(testChannels()).SortBy(FieldName, FieldURL)
	got := q.SFW()

	assert.Equal(t, []string{"Ant|u2", "Bee|u4", "ant|u5"}, names(got))
	assert.LessOrEqual(t, len(got), q.Count())
	for _, ch := range got {
		assert.True(t, ch.SFW)
	}
}

func TestForCountry(t *testing.T) {
	q := NewChannels(testChannels()).SortBy(FieldName, FieldURL)

	assert.Equal(t, []string{"Ant|u2", "Bee|u3"}, names(q.ForCountry(countryUS)))
	assert.Equal(t, []string{"Bee|u4"}, names(q.ForCountry(countryFR)))
	assert.Equal(t, []string{"Zed|u1", "ant|u5"}, names(q.ForCountry(nil)))

	// Matching is by code, not pointer identity.
	assert.Equal(t, []string{"Ant|u2", "Bee|u3"}, names(q.ForCountry(&core.Country{Code: "US"})))
	assert.Empty(t, q.ForCountry(&core.Country{Code: "DE", Name: "Germany"}))
}

func TestForLanguage(t *testing.T) {
	q := NewChannels(testChannels()).SortBy(FieldName, FieldURL)

	assert.Equal(t, []string{"Ant|u2", "ant|u5"}, names(q.ForLanguage(langEng)))
	assert.Equal(t, []string{"Bee|u4"}, names(q.ForLanguage(langFra)))
	assert.Equal(t, []string{"Bee|u3", "Zed|u1"}, names(q.ForLanguage(nil)))
}

func TestForCategory(t *testing.T) {
	q := NewChannels(testChannels()).SortBy(FieldName, FieldURL)

	assert.Equal(t, []string{"Ant|u2", "Bee|u3"}, names(q.ForCategory(catNews)))
	assert.Equal(t, []string{"Bee|u4"}, names(q.ForCategory(catSports)))
	assert.Equal(t, []string{"Zed|u1", "ant|u5"}, names(q.ForCategory(nil)))
}

func TestFiltersPartitionChannels(t *testing.T) {
	chs := testChannels()
	q := NewChannels(chs).SortBy(FieldName, FieldURL)

	partitions := map[string][][]*core.Channel{
		"country":  {q.ForCountry(nil), q.ForCountry(countryUS), q.ForCountry(countryFR)},
		"language": {q.ForLanguage(nil), q.ForLanguage(langEng), q.ForLanguage(langFra)},
		"category": {q.ForCategory(nil), q.ForCategory(catNews), q.ForCategory(catSports)},
	}

	for dim, parts := range partitions {
		t.Run(dim, func(t *testing.T) {
			seen := make(map[*core.Channel]int)
			for _, part := range parts {
				for _, ch := range part {
					seen[ch]++
				}
			}
			assert.Len(t, seen, len(chs), "no channel omitted")
			for ch, n := range seen {
				assert.Equal(t, 1, n, "channel %s in more than one bucket", ch.Name)
			}
		})
	}
}

func TestFiltersDoNotMutate(t *testing.T) {
	chs := testChannels()
	q := NewChannels(chs)
	q.ForCountry(countryUS)
	q.ForLanguage(nil)
	q.ForCategory(catNews)
	q.SFW()

	assert.Equal(t, "News", chs[1].CategoryName())
	assert.Equal(t, 5, q.Count())
}

func TestSortByDimension(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  []string
	}{
		{
			name:  "country",
			field: FieldCountry,
			want:  []string{"Bee|u4", "Ant|u2", "Bee|u3", "Zed|u1", "ant|u5"},
		},
		{
			name:  "language",
			field: FieldLanguage,
			want:  []string{"Ant|u2", "ant|u5", "Bee|u4", "Bee|u3", "Zed|u1"},
		},
		{
			name:  "unknown field falls back to name and url",
			field: Field("logo"),
			want:  []string{"Ant|u2", "Bee|u3", "Bee|u4", "Zed|u1", "ant|u5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewChannels(testChannels()).SortBy(tt.field).All()
			assert.Equal(t, tt.want, names(got))
		})
	}
}
