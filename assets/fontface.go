package assets

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mrleemurray/codicon-inspector/css"
)

// fontFacePattern matches complete @font-face blocks. Icon stylesheets never
// nest braces inside these blocks.
var fontFacePattern = regexp.MustCompile(`@font-face\s*\{[^}]*\}`)

// RewriteFontFormat replaces every @font-face block in text with a canonical
// block referencing a font of the target format discovered in fontDir. The
// font whose file name contains the declared font-family (case-insensitive)
// wins, the first discovered font otherwise. Blocks without a font-family and
// text without discoverable fonts pass through unchanged.
//
// The replacement drops every other declaration of the original block,
// including alternate-format src entries.
func RewriteFontFormat(text string, fontDir string, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}

	fonts := ListFonts(fontDir, log)
	if len(fonts) == 0 {
		log.Debug("No fonts discovered, keeping font-face blocks", zap.String("dir", fontDir))
		return text
	}

	return fontFacePattern.ReplaceAllStringFunc(text, func(block string) string {
		family := fontFamily(block)
		if family == "" {
			log.Debug("Keeping @font-face block without font-family")
			return block
		}

		chosen := chooseFont(fonts, family)
		log.Debug("Rewriting @font-face block",
			zap.String("family", family),
			zap.String("font", chosen.Name))

		ff := css.FontFace{
			Family: family,
			Src: fmt.Sprintf(`url("./%s") format("%s")`,
				css.EscapeDoubleQuoted(chosen.Name), targetFormat.Hint()),
			Style:  "normal",
			Weight: "normal",
		}

		var sb strings.Builder
		css.WriteFontFace(&sb, &ff) //nolint:errcheck
		return strings.TrimSuffix(sb.String(), "\n")
	})
}

// fontFamily extracts the declared font-family from a single @font-face
// block, empty when the block does not declare one.
func fontFamily(block string) string {
	sheet := css.NewParser(nil).Parse([]byte(block))
	faces := sheet.FontFaces()
	if len(faces) == 0 {
		return ""
	}
	return faces[0].Family
}

// chooseFont picks the font whose name contains family as a case-insensitive
// substring, defaulting to the first discovered font.
func chooseFont(fonts []FontAsset, family string) FontAsset {
	needle := strings.ToLower(family)
	for _, f := range fonts {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			return f
		}
	}
	return fonts[0]
}
