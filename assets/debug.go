package assets

import (
	"slices"
	"sort"

	"github.com/maruel/natural"

	"github.com/mrleemurray/codicon-inspector/utils/debug"
)

// String renders a resolution summary tree for debug reports and logs.
func (r *Resolution) String() string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "Resolution: %s", r.ID)
	tw.Line(1, "Source: %s", r.Source)
	if r.Name != "" {
		tw.Text(1, "Name", r.Name)
	}
	if r.StylePath != "" {
		tw.Text(1, "Stylesheet", r.StylePath)
	}
	tw.Line(1, "Raw bytes: %d", len(r.Raw))
	tw.Line(1, "Rewritten bytes: %d", len(r.Stylesheet))

	tw.Line(1, "Icons: %d", len(r.Icons))
	names := slices.Clone(r.Icons)
	sort.Sort(natural.StringSlice(names))
	tw.List(2, names)

	return tw.String()
}
