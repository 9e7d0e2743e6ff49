// Package assets resolves an icon font asset (a CSS stylesheet plus its
// companion font files) into a normalized icon-name catalog and a
// self-contained stylesheet safe to hand to a sandboxed rendering surface.
//
// Assets come from one of two sources: a local directory or stylesheet file
// supplied by the user, or the bundled stylesheet shipped with the tool.
// Every failure along the local chain silently falls back to the bundled
// source; resolution itself never fails.
package assets

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/mrleemurray/codicon-inspector/codicon"
	"github.com/mrleemurray/codicon-inspector/common"
)

//go:embed codicon.css
var bundledCSS []byte

// minimalCSS keeps a rendering surface alive when even the bundled stylesheet
// is unusable.
const minimalCSS = `@font-face {
  font-family: "codicon";
  src: local("codicon");
}

.codicon {
  display: inline-block;
  font-family: "codicon";
  font-size: 16px;
  line-height: 1;
}
`

// Options configure a single resolution pass. The zero value resolves the
// bundled stylesheet.
type Options struct {
	LocalPath    string            // user-supplied directory or stylesheet file, empty means bundled
	BundledStyle []byte            // bundled stylesheet override, nil means the embedded one
	Encoding     encoding.Encoding // forced stylesheet encoding, nil means detect
}

// Resolution is the complete result of one resolution pass.
type Resolution struct {
	ID         string             // pass correlation ID
	Source     common.AssetSource // where the stylesheet came from
	Name       string             // display base name of the local path, empty for bundled
	StylePath  string             // resolved stylesheet path for the local source
	Stylesheet string             // final stylesheet text with embeddable references
	Icons      []string           // sorted, deduplicated icon names
	Raw        string             // stylesheet text before rewriting, as read
}

// Resolve runs one resolution pass. It never returns an error: any failure
// along the local chain falls back to the bundled stylesheet, and an unusable
// bundled stylesheet falls back to a minimal built-in rule block. A refresh
// is simply another call.
func Resolve(opts Options, log *zap.Logger) *Resolution {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("assets")

	id := newPassID()

	if opts.LocalPath != "" {
		if res, ok := resolveLocal(opts, id, log); ok {
			return res
		}
		log.Info("Falling back to bundled assets", zap.String("path", opts.LocalPath))
	}

	bundled := opts.BundledStyle
	if bundled == nil {
		bundled = bundledCSS
	}
	text := string(bundled)
	if strings.TrimSpace(text) == "" {
		log.Warn("Bundled stylesheet is empty, substituting minimal style")
		text = minimalCSS
	}

	// The bundled stylesheet is already embeddable - no rewriting
	res := &Resolution{
		ID:         id,
		Source:     common.AssetSourceBundled,
		Stylesheet: text,
		Icons:      codicon.ExtractNames(text, log),
		Raw:        text,
	}
	log.Info("Resolved bundled assets", zap.String("id", id), zap.Int("icons", len(res.Icons)))
	return res
}

// resolveLocal attempts the full local chain: probe, read, extract, rewrite.
// ok reports whether the chain completed.
func resolveLocal(opts Options, id string, log *zap.Logger) (*Resolution, bool) {
	stylePath, err := ResolveStylesheetPath(opts.LocalPath, log)
	if err != nil {
		log.Debug("Local stylesheet not found", zap.String("path", opts.LocalPath), zap.Error(err))
		return nil, false
	}

	raw, err := readStylesheet(stylePath, opts.Encoding, log)
	if err != nil {
		log.Warn("Unable to read local stylesheet", zap.String("path", stylePath), zap.Error(err))
		return nil, false
	}
	if strings.TrimSpace(raw) == "" {
		log.Warn("Local stylesheet is empty", zap.String("path", stylePath))
		return nil, false
	}

	// Names come from the text as read - rewriting never changes the catalog
	icons := codicon.ExtractNames(raw, log)

	styleDir := filepath.Dir(stylePath)
	text := RewriteFontFormat(raw, styleDir, log)
	text = RewriteResourceURLs(text, stylePath, log)

	res := &Resolution{
		ID:         id,
		Source:     common.AssetSourceLocal,
		Name:       filepath.Base(filepath.Clean(opts.LocalPath)),
		StylePath:  stylePath,
		Stylesheet: text,
		Icons:      icons,
		Raw:        raw,
	}
	log.Info("Resolved local assets",
		zap.String("id", id),
		zap.String("style", stylePath),
		zap.Int("icons", len(icons)))
	return res, true
}

// newPassID returns a time-ordered correlation ID for a resolution pass.
func newPassID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
