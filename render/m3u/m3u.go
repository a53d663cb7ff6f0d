// Package m3u renders channels in the extended M3U playlist format read by
// IPTV players.
package m3u

import (
	"strings"

	"github.com/sonnes/tvindex/core"
	"github.com/sonnes/tvindex/render"
)

// Header is the first line of every playlist file.
const Header = "#EXTM3U\n"

// Record renders ch as a two-line playlist entry tagged with its category
// name (blank when uncategorized):
//
//	#EXTINF:-1 group-title="News",Channel Name
//	http://example.com/stream.m3u8
func Record(ch *core.Channel) string {
	return RecordWithGroup(ch, ch.CategoryName())
}

// RecordWithGroup renders ch like Record but with group as the group-title
// label. Grouped indexes use it to label entries by country or language
// without touching the channel.
func RecordWithGroup(ch *core.Channel, group string) string {
	var b strings.Builder
	b.Grow(len(`#EXTINF:-1 group-title="",`) + len(group) + len(ch.Name) + len(ch.URL) + 2)
	b.WriteString(`#EXTINF:-1 group-title="`)
	b.WriteString(group)
	b.WriteString(`",`)
	b.WriteString(ch.Name)
	b.WriteByte('\n')
	b.WriteString(ch.URL)
	b.WriteByte('\n')
	return b.String()
}

// GroupAs returns a RecordFunc that labels every entry with group.
func GroupAs(group string) render.RecordFunc {
	return func(ch *core.Channel) string {
		return RecordWithGroup(ch, group)
	}
}
