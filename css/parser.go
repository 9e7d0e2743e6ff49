package css

import (
	"bytes"
	"maps"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
//
// Rules with selectors the parser cannot decompose (attribute selectors,
// pseudo-classes, combinators) are kept with a raw-only Selector so their
// declarations remain reachable.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	// Log parsing start with source identifier if provided
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var pending []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			switch atRule {
			case "@media":
				// Parse @media query and preserve the block in the AST
				query := rawFromTokens(parser.Values())
				rules := p.parseMediaBlockRules(parser, sheet)
				p.log.Debug("Parsed @media block", zap.String("query", query), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: query, Rules: rules},
				})
			case "@font-face":
				ff := p.parseFontFace(parser)
				sheet.Items = append(sheet.Items, StylesheetItem{FontFace: &ff})
			default:
				// Skip other @-rules with blocks
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import)
			atRule := string(data)
			if atRule == "@import" {
				url := extractImportURL(parser.Values())
				if url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			} else {
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.QualifiedRuleGrammar:
			// Comma-separated selector in a grouped selector list. The
			// ruleset itself begins with the last selector of the group.
			pending = append(pending, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			pending = append(pending, p.parseSelectors(data, parser.Values())...)
			props := p.parseDeclarations(parser)

			// Create a rule per selector, sharing a copy of the properties
			for _, selStr := range pending {
				propsCopy := make(map[string]Value, len(props))
				maps.Copy(propsCopy, props)
				rule := Rule{
					Selector:   p.parseSelector(selStr, sheet),
					Properties: propsCopy,
				}
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
			}
			pending = nil
		}
	}
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			// url(something) - the token data is the full url(...) string
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// parseSelectors extracts selector strings from token data.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	// Build full selector string from data and values
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	selectorStr := sb.String()

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(selectorStr, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
// Custom properties (--name) are stored alongside regular properties under
// their full name.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			propName := string(data)
			values := parser.Values()
			if len(values) > 0 {
				props[propName] = p.parsePropertyValue(values)
			}

		case css.CustomPropertyGrammar:
			propName := string(data)
			if raw := rawFromTokens(parser.Values()); raw != "" {
				props[propName] = Value{Raw: raw, Keyword: unquote(raw)}
			}
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	val := Value{Raw: rawFromTokens(tokens)}

	// Handle single token cases
	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			// Remove quotes
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			// Color value
			val.Keyword = string(t.Data)
		}
		return val
	}

	// Function tokens (rgb(), url(), ...) and multi-value properties keep the raw value
	val.Keyword = val.Raw
	return val
}

// rawFromTokens joins token data into a single string, collapsing whitespace
// runs to single spaces.
func rawFromTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// parseSelector parses a single selector string into a Selector. Selectors it
// cannot decompose are returned raw-only, with a warning recorded on the
// stylesheet.
func (p *Parser) parseSelector(selStr string, sheet *Stylesheet) Selector {
	selStr = strings.TrimSpace(selStr)
	sel := Selector{Raw: selStr}

	if strings.ContainsAny(selStr, "+~>") {
		// Sibling/child combinators
		sheet.Warnings = append(sheet.Warnings, "combinator selector kept raw: "+selStr)
		p.log.Debug("Keeping combinator selector raw", zap.String("selector", selStr))
		return sel
	}
	if strings.Contains(selStr, "[") {
		// Attribute selector
		sheet.Warnings = append(sheet.Warnings, "attribute selector kept raw: "+selStr)
		p.log.Debug("Keeping attribute selector raw", zap.String("selector", selStr))
		return sel
	}

	// Check for descendant selector (contains whitespace)
	if strings.ContainsAny(selStr, " \t\n") {
		return p.parseDescendantSelector(selStr, sheet)
	}

	// Parse simple selector
	return p.parseSimpleSelector(selStr, sheet)
}

// parseDescendantSelector parses a descendant selector like ".monaco-workbench .codicon-close::before".
func (p *Parser) parseDescendantSelector(selStr string, sheet *Stylesheet) Selector {
	sel := Selector{Raw: selStr}

	// Split by whitespace
	parts := strings.Fields(selStr)
	if len(parts) < 2 {
		return sel
	}

	// Parse the rightmost part as the main selector
	mainPart := parts[len(parts)-1]
	mainSel := p.parseSimpleSelector(mainPart, sheet)
	if !mainSel.IsSimple() {
		// Failed to parse the main part
		return sel
	}

	// Copy main selector properties
	sel.Element = mainSel.Element
	sel.Class = mainSel.Class
	sel.Pseudo = mainSel.Pseudo

	// Parse ancestor parts (all parts except the last one)
	// For simplicity, we combine all ancestor parts into a single ancestor selector
	// e.g., ".monaco-workbench .codicon-close" -> ancestor is ".monaco-workbench"
	ancestorParts := parts[:len(parts)-1]
	if len(ancestorParts) == 1 {
		// Single ancestor
		ancestorSel := p.parseSimpleSelector(ancestorParts[0], sheet)
		if ancestorSel.IsSimple() {
			sel.Ancestor = &ancestorSel
		}
	} else {
		// Multiple ancestors - recursively parse as descendant selector
		ancestorStr := strings.Join(ancestorParts, " ")
		ancestorSel := p.parseDescendantSelector(ancestorStr, sheet)
		if ancestorSel.IsSimple() || ancestorSel.IsDescendant() {
			sel.Ancestor = &ancestorSel
		}
	}

	return sel
}

// parseSimpleSelector parses a simple selector (element, class, or element.class with optional pseudo).
func (p *Parser) parseSimpleSelector(selStr string, sheet *Stylesheet) Selector {
	selStr = strings.TrimSpace(selStr)
	sel := Selector{Raw: selStr}

	// Parse pseudo-element (::before, ::after)
	remaining := selStr
	if before, pseudo, found := strings.Cut(selStr, "::"); found {
		remaining = before
		switch strings.ToLower(pseudo) {
		case "before":
			sel.Pseudo = PseudoBefore
		case "after":
			sel.Pseudo = PseudoAfter
		default:
			sheet.Warnings = append(sheet.Warnings, "unsupported pseudo-element: "+selStr)
			p.log.Debug("Keeping unsupported pseudo-element raw", zap.String("selector", selStr))
			return sel
		}
	} else if before, pseudo, found := strings.Cut(remaining, ":"); found {
		// Single colon - could be pseudo-class or old-style pseudo-element
		switch strings.ToLower(pseudo) {
		case "before":
			sel.Pseudo = PseudoBefore
			remaining = before
		case "after":
			sel.Pseudo = PseudoAfter
			remaining = before
		default:
			// Pseudo-class (e.g., :root, :hover) - keep raw
			sheet.Warnings = append(sheet.Warnings, "pseudo-class selector kept raw: "+selStr)
			p.log.Debug("Keeping pseudo-class selector raw", zap.String("selector", selStr))
			return sel
		}
	}

	// Parse element and class from remaining
	if remaining == "" {
		// Just a pseudo-element on universal selector - not meaningful
		return sel
	}

	// Split by dot for class
	if element, class, found := strings.Cut(remaining, "."); found {
		if element != "" {
			sel.Element = element
		}
		sel.Class = class
	} else {
		sel.Element = remaining
	}

	return sel
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseFontFace parses an @font-face block.
func (p *Parser) parseFontFace(parser *css.Parser) FontFace {
	ff := FontFace{}

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return ff

		case css.DeclarationGrammar:
			propName := string(data)
			values := parser.Values()
			if len(values) == 0 {
				continue
			}

			valStr := rawFromTokens(values)

			switch propName {
			case "font-family":
				ff.Family = unquote(valStr)
			case "src":
				ff.Src = valStr
			case "font-style":
				ff.Style = valStr
			case "font-weight":
				ff.Weight = valStr
			}
		}
	}
}

// parseMediaBlockRules parses rules inside an @media block and returns them
// for the caller to wrap in a MediaBlock.
func (p *Parser) parseMediaBlockRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var rules []Rule
	var pending []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.QualifiedRuleGrammar:
			pending = append(pending, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			pending = append(pending, p.parseSelectors(data, parser.Values())...)
			props := p.parseDeclarations(parser)

			for _, selStr := range pending {
				propsCopy := make(map[string]Value, len(props))
				maps.Copy(propsCopy, props)
				rules = append(rules, Rule{
					Selector:   p.parseSelector(selStr, sheet),
					Properties: propsCopy,
				})
			}
			pending = nil
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
