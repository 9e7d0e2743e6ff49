package assets

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestRewriteResourceURLs(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("literal relative path", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "codicon.ttf", ttfHeader)
		stylePath := filepath.Join(tmpDir, "codicon.css")

		got := RewriteResourceURLs(`src: url("./codicon.ttf") format("truetype");`, stylePath, log)
		want := `src: url("` + fileURI(fontPath) + `") format("truetype");`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unquoted reference", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url(codicon.ttf);`, filepath.Join(tmpDir, "a.css"), log)
		want := `src: url("` + fileURI(fontPath) + `");`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("single-quoted reference", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url('codicon.ttf');`, filepath.Join(tmpDir, "a.css"), log)
		want := `src: url("` + fileURI(fontPath) + `");`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("nested relative path", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontsDir := mkdir(t, tmpDir, "fonts")
		fontPath := writeFile(t, fontsDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("fonts/codicon.ttf");`, filepath.Join(tmpDir, "a.css"), log)
		want := `src: url("` + fileURI(fontPath) + `");`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("data URI untouched", func(t *testing.T) {
		css := `src: url("data:font/woff2;base64,d09GMgABAAAAA") format("woff2");`
		if got := RewriteResourceURLs(css, "/nowhere/a.css", log); got != css {
			t.Errorf("data URI modified: %q", got)
		}
	})

	t.Run("http and https untouched", func(t *testing.T) {
		css := `a { background: url(http://example.com/x.png); }
b { background: url("https://example.com/y.png"); }`
		if got := RewriteResourceURLs(css, "/nowhere/a.css", log); got != css {
			t.Errorf("absolute URL modified: %q", got)
		}
	})

	t.Run("unresolved reference stays", func(t *testing.T) {
		css := `src: url("ghost.woff");`
		if got := RewriteResourceURLs(css, filepath.Join(t.TempDir(), "a.css"), log); got != css {
			t.Errorf("missing reference modified: %q", got)
		}
	})

	t.Run("empty reference stays", func(t *testing.T) {
		css := `background: url();`
		if got := RewriteResourceURLs(css, filepath.Join(t.TempDir(), "a.css"), log); got != css {
			t.Errorf("empty reference modified: %q", got)
		}
	})
}

func TestRewriteResourceURLs_Search(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("fonts subdirectory", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontsDir := mkdir(t, tmpDir, "fonts")
		fontPath := writeFile(t, fontsDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("codicon.ttf");`, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("expected %q, got %q", fileURI(fontPath), got)
		}
	})

	t.Run("fonts directory one level up", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontsDir := mkdir(t, tmpDir, "fonts")
		styleDir := mkdir(t, tmpDir, "styles")
		fontPath := writeFile(t, fontsDir, "icons.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("icons.ttf");`, filepath.Join(styleDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("expected %q, got %q", fileURI(fontPath), got)
		}
	})

	t.Run("assets subdirectory", func(t *testing.T) {
		tmpDir := t.TempDir()
		assetsDir := mkdir(t, tmpDir, "assets")
		fontPath := writeFile(t, assetsDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("codicon.ttf");`, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("expected %q, got %q", fileURI(fontPath), got)
		}
	})

	t.Run("target extension substituted", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("codicon.woff2");`, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("expected %q, got %q", fileURI(fontPath), got)
		}
	})

	t.Run("well-known font names as last resort", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "iconfont.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("mystery.woff");`, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("expected %q, got %q", fileURI(fontPath), got)
		}
	})

	t.Run("first hit wins", func(t *testing.T) {
		tmpDir := t.TempDir()
		fontsDir := mkdir(t, tmpDir, "fonts")
		writeFile(t, fontsDir, "codicon.ttf", ttfHeader)
		direct := writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteResourceURLs(`src: url("codicon.ttf");`, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(direct)) {
			t.Errorf("literal path should win, got %q", got)
		}
	})

	t.Run("each reference resolved independently", func(t *testing.T) {
		// The font name must stay off the well-known list so the
		// unresolvable reference is not rescued by the name fallback.
		tmpDir := t.TempDir()
		fontPath := writeFile(t, tmpDir, "myfont.ttf", ttfHeader)

		css := `@font-face { src: url("myfont.ttf"); }
.a { background: url("ghost.png"); }
.b { background: url("data:image/png;base64,AAAA"); }`

		got := RewriteResourceURLs(css, filepath.Join(tmpDir, "a.css"), log)
		if !strings.Contains(got, fileURI(fontPath)) {
			t.Errorf("resolvable reference not rewritten: %q", got)
		}
		if !strings.Contains(got, `url("ghost.png")`) {
			t.Errorf("unresolvable reference modified: %q", got)
		}
		if !strings.Contains(got, `url("data:image/png;base64,AAAA")`) {
			t.Errorf("data URI modified: %q", got)
		}
	})
}

func TestFileURI(t *testing.T) {
	got := fileURI(filepath.Join(string(filepath.Separator), "tmp", "with space.ttf"))
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("missing file scheme: %q", got)
	}
	if !strings.Contains(got, "with%20space.ttf") {
		t.Errorf("path not escaped: %q", got)
	}
}
