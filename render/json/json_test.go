package json

import (
	"testing"

	"github.com/sonnes/tvindex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChannels() []*core.Channel {
	return []*core.Channel{
		{
			Name:     "Ant & Co <HD>",
			URL:      "http://a/1.m3u8?x=1&y=2",
			Category: &core.Category{ID: "news", Name: "News"},
			Country:  &core.Country{Code: "US", Name: "United States"},
			Language: &core.Language{Code: "eng", Name: "English"},
			SFW:      true,
		},
		{Name: "Zed", URL: "u1"},
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(testChannels())
	require.NoError(t, err)

	want := `[{"name":"Ant & Co <HD>","url":"http://a/1.m3u8?x=1&y=2",` +
		`"category":{"id":"news","name":"News"},` +
		`"country":{"code":"US","name":"United States"},` +
		`"language":{"code":"eng","name":"English"},"sfw":true},` +
		`{"name":"Zed","url":"u1","category":null,"country":null,"language":null,"sfw":false}]`
	assert.Equal(t, want, string(data))
}

func TestMarshalKeepsInputOrder(t *testing.T) {
	chs := testChannels()
	chs[0], chs[1] = chs[1], chs[0]

	data, err := Marshal(chs)
	require.NoError(t, err)

	entries, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Zed", entries[0].Name)
	assert.Equal(t, "Ant & Co <HD>", entries[1].Name)
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRoundTrip(t *testing.T) {
	data, err := Marshal(testChannels())
	require.NoError(t, err)

	entries, err := Unmarshal(data)
	require.NoError(t, err)

	again, err := MarshalEntries(entries)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestNewEntryDoesNotAlias(t *testing.T) {
	ch := testChannels()[0]
	e := NewEntry(ch)
	e.Category.Name = "Changed"
	assert.Equal(t, "News", ch.Category.Name)
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"name":"not an array"}`))
	assert.Error(t, err)
}
