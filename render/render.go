// Package render defines how catalog channels are turned into the records
// that make up an output file.
package render

import "github.com/sonnes/tvindex/core"

// RecordFunc renders one channel as one output record. Implementations must
// be pure: the same channel always yields the same record.
type RecordFunc func(ch *core.Channel) string

// Records renders chs in order.
func Records(chs []*core.Channel, fn RecordFunc) []string {
	out := make([]string, len(chs))
	for i, ch := range chs {
		out[i] = fn(ch)
	}
	return out
}
