package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// EscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func EscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "\ea1b", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword or unquoted string if applicable
}

// PseudoElement represents which pseudo-element a rule applies to.
type PseudoElement int

const (
	PseudoNone   PseudoElement = iota // No pseudo-element
	PseudoBefore                      // ::before
	PseudoAfter                       // ::after
)

// String returns the CSS representation of the pseudo-element.
func (p PseudoElement) String() string {
	switch p {
	case PseudoBefore:
		return "::before"
	case PseudoAfter:
		return "::after"
	default:
		return ""
	}
}

// Selector represents a parsed CSS selector with its components. Selectors the
// parser does not understand (attribute selectors, pseudo-classes,
// combinators) keep only Raw so their rules stay addressable in the AST.
type Selector struct {
	Raw      string        // Original selector string
	Element  string        // Element name (e.g., "p", "h1") or empty for class-only
	Class    string        // Class name without dot (e.g., "codicon-add") or empty
	Pseudo   PseudoElement // Pseudo-element if present
	Ancestor *Selector     // Ancestor selector for descendant selectors (e.g., ".monaco .codicon" -> Ancestor is ".monaco")
}

// IsSimple returns true if this is a simple selector (element, class, or element.class).
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// IsDescendant returns true if this is a descendant selector.
func (s Selector) IsDescendant() bool {
	return s.Ancestor != nil
}

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   Selector         // Parsed selector
	Properties map[string]Value // Property name -> value, custom properties included
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// CustomProperties returns names of all custom properties (--name) declared by
// the rule, sorted.
func (r Rule) CustomProperties() []string {
	var names []string
	for name := range r.Properties {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FontFace represents an @font-face declaration.
type FontFace struct {
	Family string // font-family value
	Src    string // src value (URL or local reference)
	Style  string // font-style: normal, italic
	Weight string // font-weight: normal, bold, 400, 700
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, FontFace or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + properties)
	MediaBlock *MediaBlock // A @media block containing nested rules
	FontFace   *FontFace   // A @font-face declaration
	Import     *string     // An @import URL
}

// MediaBlock represents a @media block with its raw query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for unsupported features
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// FontFaces returns all @font-face declarations with a non-empty family from
// the stylesheet in source order.
func (s *Stylesheet) FontFaces() []FontFace {
	var faces []FontFace
	for _, item := range s.Items {
		if item.FontFace != nil && item.FontFace.Family != "" {
			faces = append(faces, *item.FontFace)
		}
	}
	return faces
}

// Rules returns all rules in the stylesheet, top-level first, then rules
// nested in @media blocks, in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.Raw == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", EscapeDoubleQuoted(*item.Import))
		case item.FontFace != nil:
			n, err = WriteFontFace(w, item.FontFace)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector.Raw)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]Value) (int, error) {
	// Sort property names for deterministic output
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		val := props[name]
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, val.Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFontFace writes an @font-face block to w with properties in a stable
// order.
func WriteFontFace(w io.Writer, ff *FontFace) (int, error) {
	var total int
	n, err := fmt.Fprint(w, "@font-face {\n")
	total += n
	if err != nil {
		return total, err
	}

	if ff.Family != "" {
		n, err = fmt.Fprintf(w, "  font-family: \"%s\";\n", EscapeDoubleQuoted(ff.Family))
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Src != "" {
		n, err = fmt.Fprintf(w, "  src: %s;\n", ff.Src)
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Style != "" {
		n, err = fmt.Fprintf(w, "  font-style: %s;\n", ff.Style)
		total += n
		if err != nil {
			return total, err
		}
	}
	if ff.Weight != "" {
		n, err = fmt.Fprintf(w, "  font-weight: %s;\n", ff.Weight)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i, rule := range mb.Rules {
		// Indent each rule line within the media block
		n, err = fmt.Fprintf(w, "  %s {\n", rule.Selector.Raw)
		total += n
		if err != nil {
			return total, err
		}

		// Write properties with double indent
		names := make([]string, 0, len(rule.Properties))
		for name := range rule.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			val := rule.Properties[name]
			n, err = fmt.Fprintf(w, "    %s: %s;\n", name, val.Raw)
			total += n
			if err != nil {
				return total, err
			}
		}

		n, err = fmt.Fprint(w, "  }\n")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
