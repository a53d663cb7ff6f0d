// Package json renders channel sequences as the channels.json index.
package json

import (
	"bytes"
	encjson "encoding/json"

	"github.com/sonnes/tvindex/core"
)

// Entry is the published shape of one channel. Field order is part of the
// output format and must not change.
type Entry struct {
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Category *core.Category `json:"category"`
	Country  *core.Country  `json:"country"`
	Language *core.Language `json:"language"`
	SFW      bool           `json:"sfw"`
}

// NewEntry copies the public fields of ch. Referenced entities are copied too,
// so entries never alias catalog state.
func NewEntry(ch *core.Channel) Entry {
	e := Entry{Name: ch.Name, URL: ch.URL, SFW: ch.SFW}
	if ch.Category != nil {
		c := *ch.Category
		e.Category = &c
	}
	if ch.Country != nil {
		c := *ch.Country
		e.Country = &c
	}
	if ch.Language != nil {
		l := *ch.Language
		e.Language = &l
	}
	return e
}

// Marshal renders chs as a single JSON array in input order.
func Marshal(chs []*core.Channel) ([]byte, error) {
	entries := make([]Entry, len(chs))
	for i, ch := range chs {
		entries[i] = NewEntry(ch)
	}
	return MarshalEntries(entries)
}

// MarshalEntries renders entries as a compact JSON array with no trailing
// newline. HTML characters are written as-is.
func MarshalEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := encjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal parses a channels.json document.
func Unmarshal(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := encjson.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
