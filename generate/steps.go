package generate

import (
	"path"

	"github.com/sonnes/tvindex/core"
	"github.com/sonnes/tvindex/query"
	"github.com/sonnes/tvindex/render"
	jsonrender "github.com/sonnes/tvindex/render/json"
	"github.com/sonnes/tvindex/render/m3u"
)

// step produces the artifacts for one phase of a run. When dir is set it is
// created under the output root before any artifact is written.
type step struct {
	name    string
	message string
	dir     string
	build   func(v *views) ([]Artifact, error)
}

var steps = []step{
	{name: "nojekyll", message: "Creating .nojekyll file", build: noJekyll},
	{name: "index", message: "Generating index.m3u", build: globalIndex},
	{name: "sfw index", message: "Generating index.sfw.m3u", build: sfwIndex},
	{name: "channels json", message: "Generating channels.json", build: channelsJSON},
	{name: "country index", message: "Generating index.country.m3u", build: countryIndex},
	{name: "language index", message: "Generating index.language.m3u", build: languageIndex},
	{name: "category index", message: "Generating index.category.m3u", build: categoryIndex},
	{name: "countries", message: "Generating a playlist for each country", dir: "countries", build: countryPlaylists},
	{name: "languages", message: "Generating a playlist for each language", dir: "languages", build: languagePlaylists},
	{name: "categories", message: "Generating a playlist for each category", dir: "categories", build: categoryPlaylists},
}

// views holds the catalog queries shared by every step.
type views struct {
	cat      *core.Catalog
	channels *query.Channels // sorted by (name, url)
}

func newViews(cat *core.Catalog) *views {
	return &views{
		cat:      cat,
		channels: query.NewChannels(cat.Channels).SortBy(query.FieldName, query.FieldURL),
	}
}

func playlist(p string, chs []*core.Channel, fn render.RecordFunc) Artifact {
	return Artifact{Path: p, Header: m3u.Header, Records: render.Records(chs, fn)}
}

func noJekyll(*views) ([]Artifact, error) {
	return []Artifact{{Path: ".nojekyll"}}, nil
}

func globalIndex(v *views) ([]Artifact, error) {
	return []Artifact{playlist("index.m3u", v.channels.All(), m3u.Record)}, nil
}

func sfwIndex(v *views) ([]Artifact, error) {
	return []Artifact{playlist("index.sfw.m3u", v.channels.SFW(), m3u.Record)}, nil
}

func channelsJSON(v *views) ([]Artifact, error) {
	data, err := jsonrender.Marshal(v.channels.All())
	if err != nil {
		return nil, err
	}
	return []Artifact{{Path: "channels.json", Header: string(data)}}, nil
}

func countryIndex(v *views) ([]Artifact, error) {
	countries := query.Countries(v.cat.Countries).SortByName().All()
	a := groupedIndex("index.country.m3u", v.channels.ForCountry(nil), countries,
		func(c *core.Country) string { return c.Name },
		v.channels.ForCountry,
	)
	return []Artifact{a}, nil
}

func languageIndex(v *views) ([]Artifact, error) {
	languages := query.Languages(v.cat.Languages).SortByName().All()
	a := groupedIndex("index.language.m3u", v.channels.ForLanguage(nil), languages,
		func(l *core.Language) string { return l.Name },
		v.channels.ForLanguage,
	)
	return []Artifact{a}, nil
}

func categoryIndex(v *views) ([]Artifact, error) {
	chs := query.NewChannels(v.cat.Channels).SortBy(query.FieldCategory, query.FieldName, query.FieldURL).All()
	return []Artifact{playlist("index.category.m3u", chs, m3u.Record)}, nil
}

func countryPlaylists(v *views) ([]Artifact, error) {
	return perEntity("countries", v.cat.Countries,
		func(c *core.Country) string { return c.Code },
		v.channels.ForCountry,
		"undefined", v.channels.ForCountry(nil),
	), nil
}

func languagePlaylists(v *views) ([]Artifact, error) {
	return perEntity("languages", v.cat.Languages,
		func(l *core.Language) string { return l.Code },
		v.channels.ForLanguage,
		"undefined", v.channels.ForLanguage(nil),
	), nil
}

func categoryPlaylists(v *views) ([]Artifact, error) {
	return perEntity("categories", v.cat.Categories,
		func(c *core.Category) string { return c.ID },
		v.channels.ForCategory,
		"other", v.channels.ForCategory(nil),
	), nil
}

// groupedIndex builds a single playlist where the group-title of every entry
// carries the grouping value: blank for channels without one, then each
// group's display name in the order given.
func groupedIndex[T any](p string, undefined []*core.Channel, groups []T, label func(T) string, members func(T) []*core.Channel) Artifact {
	a := playlist(p, undefined, m3u.GroupAs(""))
	for _, g := range groups {
		a.Records = append(a.Records, render.Records(members(g), m3u.GroupAs(label(g)))...)
	}
	return a
}

// perEntity builds one playlist per entity, named by its key, plus a
// catch-all playlist for channels with no value on that axis.
func perEntity[T any](dir string, entities []T, key func(T) string, members func(T) []*core.Channel, other string, unclassified []*core.Channel) []Artifact {
	out := make([]Artifact, 0, len(entities)+1)
	for _, e := range entities {
		out = append(out, playlist(path.Join(dir, key(e)+".m3u"), members(e), m3u.Record))
	}
	return append(out, playlist(path.Join(dir, other+".m3u"), unclassified, m3u.Record))
}
