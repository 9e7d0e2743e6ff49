// Package codicon recovers icon names from stylesheet text.
//
// Stylesheets declare icons in several unrelated shapes - pseudo-element
// selectors, attribute selectors, custom properties - so each shape gets its
// own matcher and the union of every capture, filtered for validity, becomes
// the catalog. When nothing valid can be recovered the package falls back to
// a fixed reference list so callers always receive a usable catalog.
package codicon

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mrleemurray/codicon-inspector/css"
)

// Prefix is the class-name stem shared by every icon selector.
const Prefix = "codicon"

// Utility names share the icon prefix but do not denote glyphs.
var denylist = []string{"modifier", "animation", "spin", "pulse", "loading", "rotate", "flip"}

var (
	beforeSelectorPattern = regexp.MustCompile(`\.codicon-([a-zA-Z0-9_-]+)::?before`)
	dataAttributePattern  = regexp.MustCompile(`\[data-codicon=["']([a-zA-Z0-9_-]+)["']\]`)
)

// matcher recovers candidate names from one declaration shape. Captures are
// raw - validity filtering happens in ExtractNames.
type matcher func(text string, sheet *css.Stylesheet) []string

var matchers = []matcher{
	matchBeforeSelectors,
	matchContentRules,
	matchDataAttributes,
	matchCustomProperties,
}

// ExtractNames recovers the icon-name catalog from stylesheet text. The result
// is sorted ascending and deduplicated. When no valid name can be recovered,
// from garbage text or from styles that simply do not declare icons, the fixed
// fallback catalog is returned instead.
func ExtractNames(text string, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}

	sheet := css.NewParser(log).Parse([]byte(text))

	seen := make(map[string]struct{})
	for _, m := range matchers {
		for _, name := range m(text, sheet) {
			if validName(name) {
				seen[name] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		log.Debug("No icon names recovered, using fallback catalog", zap.Int("names", len(fallbackNames)))
		return Fallback()
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Debug("Recovered icon names", zap.Int("names", len(names)))
	return names
}

// Fallback returns a copy of the built-in reference catalog.
func Fallback() []string {
	return slices.Clone(fallbackNames)
}

// Selector form: ".codicon-<name>:before" with one or two colons.
func matchBeforeSelectors(text string, _ *css.Stylesheet) []string {
	var names []string
	for _, m := range beforeSelectorPattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

// Selector-with-content form: the same selector shape carrying a non-empty
// content declaration, read from the parsed rules. Confirms the rule is
// icon-bearing; the glyph value itself never names anything.
func matchContentRules(_ string, sheet *css.Stylesheet) []string {
	var names []string
	for _, rule := range sheet.Rules() {
		if rule.Selector.Pseudo != css.PseudoBefore {
			continue
		}
		name, found := strings.CutPrefix(rule.Selector.Class, Prefix+"-")
		if !found {
			continue
		}
		if content, ok := rule.GetProperty("content"); !ok || content.Keyword == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Attribute form: [data-codicon="<name>"].
func matchDataAttributes(text string, _ *css.Stylesheet) []string {
	var names []string
	for _, m := range dataAttributePattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

// Custom-property form: "--codicon-<name>:" declarations in any parsed rule.
func matchCustomProperties(_ string, sheet *css.Stylesheet) []string {
	var names []string
	for _, rule := range sheet.Rules() {
		for _, prop := range rule.CustomProperties() {
			if name, found := strings.CutPrefix(prop, "--"+Prefix+"-"); found {
				names = append(names, name)
			}
		}
	}
	return names
}

// validName reports whether a capture denotes a real glyph name. The bare
// prefix and anything starting with a denylisted term is rejected.
func validName(name string) bool {
	if name == "" || name == Prefix {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	for _, term := range denylist {
		if strings.HasPrefix(name, term) {
			return false
		}
	}
	return true
}
