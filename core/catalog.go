// Package core defines the channel catalog: the entities every loader
// produces and every view generator consumes.
package core

// Channel is a single playable stream. Category, Country and Language are
// optional; a nil reference means the channel is unclassified on that axis.
type Channel struct {
	Name     string
	URL      string
	Category *Category
	Country  *Country
	Language *Language
	SFW      bool // safe for work
}

// Category groups channels by content type. ID is a stable slug.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Country is keyed by its code (e.g. "US").
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Language is keyed by its code (e.g. "eng").
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog owns the four collections for one generation run. It is built once
// by a loader and treated as read-only afterwards.
type Catalog struct {
	Channels   []*Channel
	Categories []*Category
	Countries  []*Country
	Languages  []*Language
}

// CategoryName returns the display name of the channel's category, or "" when
// it has none.
func (c *Channel) CategoryName() string {
	if c.Category == nil {
		return ""
	}
	return c.Category.Name
}

// CountryName returns the display name of the channel's country, or "".
func (c *Channel) CountryName() string {
	if c.Country == nil {
		return ""
	}
	return c.Country.Name
}

// LanguageName returns the display name of the channel's language, or "".
func (c *Channel) LanguageName() string {
	if c.Language == nil {
		return ""
	}
	return c.Language.Name
}
