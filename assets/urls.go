package assets

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mrleemurray/codicon-inspector/css"
)

// urlRefPattern extracts URLs from stylesheet text. It matches url("path"),
// url('path'), and url(path); group 1 is the quoted form, group 2 the bare
// form.
var urlRefPattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"]*))\s*\)`)

// commonFontNames are tried as a last resort when a referenced file cannot be
// found under any candidate directory.
var commonFontNames = []string{"codicon.ttf", "icons.ttf", "iconfont.ttf"}

// RewriteResourceURLs rewrites every resolvable url() reference in text into a
// file URI, resolving relative references against the directory containing
// stylePath. References that cannot be mapped to an existing file stay
// unchanged, as do data URIs and absolute http(s) URLs. Each reference is
// resolved independently.
func RewriteResourceURLs(text string, stylePath string, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	styleDir := filepath.Dir(stylePath)

	return urlRefPattern.ReplaceAllStringFunc(text, func(ref string) string {
		m := urlRefPattern.FindStringSubmatch(ref)
		// Group 1 is quoted URL, group 2 is unquoted
		target := m[1]
		if target == "" {
			target = m[2]
		}
		target = strings.TrimSpace(target)

		if target == "" {
			return ref
		}
		if strings.HasPrefix(target, "data:") {
			log.Debug("Skipping data URL", zap.String("url", target[:min(50, len(target))]))
			return ref
		}
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			log.Debug("Skipping absolute URL", zap.String("url", target))
			return ref
		}

		resolved := findResource(styleDir, target)
		if resolved == "" {
			log.Debug("Keeping unresolved stylesheet reference",
				zap.String("url", target),
				zap.String("dir", styleDir))
			return ref
		}

		uri := fileURI(resolved)
		log.Debug("Rewrote stylesheet reference",
			zap.String("url", target),
			zap.String("uri", uri))
		return `url("` + css.EscapeDoubleQuoted(uri) + `")`
	})
}

// findResource maps a stylesheet-relative reference to an existing file.
// When the literal path is missing it walks conventional font locations,
// trying the exact name, the name with the target extension substituted, and
// finally well-known font names. The first hit wins.
func findResource(styleDir, target string) string {
	// The common case: the reference is valid as written
	literal := filepath.Join(styleDir, filepath.FromSlash(target))
	if fileExists(literal) {
		return literal
	}

	base := filepath.Base(filepath.FromSlash(target))

	dirs := []string{
		styleDir,
		filepath.Join(styleDir, "fonts"),
		filepath.Join(filepath.Dir(styleDir), "fonts"),
		filepath.Join(styleDir, "assets"),
	}

	names := []string{base}
	if !strings.EqualFold(filepath.Ext(base), targetFormat.Ext()) {
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base))+targetFormat.Ext())
	}
	names = append(names, commonFontNames...)

	for _, dir := range dirs {
		for _, name := range names {
			if candidate := filepath.Join(dir, name); fileExists(candidate) {
				return candidate
			}
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// fileURI converts a filesystem path into a file:// URI a sandboxed rendering
// surface accepts.
func fileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths need a leading slash in the URI
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
