// Package terminal renders the end-of-run summary for the console.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sonnes/tvindex/generate"
)

const defaultWidth = 100

// Renderer prints run summaries as a styled table.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderSummary writes the output location and catalog counts of a finished
// run to w.
func (r *Renderer) RenderSummary(w io.Writer, root string, s generate.Summary) error {
	if _, err := fmt.Fprintln(w, styleOK.Render("✓")+" "+styleTitle.Render("Playlists generated")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, styleMeta.Render(root)); err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetAllowedRowLength(r.termWidth())
	tw.AppendHeader(table.Row{"Collection", "Count"})
	tw.AppendRows([]table.Row{
		{"Countries", formatNumber(s.Countries)},
		{"Languages", formatNumber(s.Languages)},
		{"Categories", formatNumber(s.Categories)},
		{"Channels", formatNumber(s.Channels)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// formatNumber adds thousands separators: 1234567 → "1,234,567".
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
