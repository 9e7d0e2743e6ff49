// Enums shared between the configuration surface and the asset resolution
// pipeline. Library packages need them without pulling in the whole config
// package, so they live separately.
package common

//go:generate go tool go-enum --marshal --names --mustparse --nocase

// Origin of the stylesheet a resolution pass ended up using.
// ENUM(bundled, local)
type AssetSource int

// Recognized icon font container formats.
// ENUM(ttf, otf, woff, woff2)
type FontFormat int

func (f FontFormat) Ext() string {
	return "." + f.String()
}

func (f FontFormat) MIME() string {
	switch f {
	case FontFormatTtf:
		return "font/ttf"
	case FontFormatOtf:
		return "font/otf"
	case FontFormatWoff:
		return "font/woff"
	case FontFormatWoff2:
		return "font/woff2"
	default:
		// this should never happen
		panic("unsupported font format requested")
	}
}

// Hint returns the format() token a src declaration uses for f.
func (f FontFormat) Hint() string {
	switch f {
	case FontFormatTtf:
		return "truetype"
	case FontFormatOtf:
		return "opentype"
	default:
		return f.String()
	}
}
