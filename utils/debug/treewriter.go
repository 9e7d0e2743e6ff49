// Package debug renders indented summary trees for debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indentStep = "  "

type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

// Line writes a single formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.b.WriteString(strings.Repeat(indentStep, depth))
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// Text writes a labeled value, quoted so control characters survive the dump.
// Empty values stay empty to keep absent fields readable.
func (tw *TreeWriter) Text(depth int, label, value string) {
	tw.b.WriteString(strings.Repeat(indentStep, depth))
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	if value != "" {
		tw.b.WriteString(strconv.Quote(value))
	}
	tw.b.WriteByte('\n')
}

// List writes items one per line at the given depth.
func (tw *TreeWriter) List(depth int, items []string) {
	for _, item := range items {
		tw.Line(depth, "%s", item)
	}
}
