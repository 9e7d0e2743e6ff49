package assets

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestRewriteFontFormat(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("replaces block with canonical declaration", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		css := `@font-face {
	font-family: "codicon";
	font-display: block;
	src: url("./codicon.woff2") format("woff2"), url("./codicon.woff") format("woff");
}

.codicon-add:before { content: "\ea60"; }`

		got := RewriteFontFormat(css, tmpDir, log)

		if !strings.Contains(got, `src: url("./codicon.ttf") format("truetype");`) {
			t.Errorf("rewritten src missing:\n%s", got)
		}
		if strings.Count(got, "src:") != 1 {
			t.Errorf("want exactly one src entry:\n%s", got)
		}
		if !strings.Contains(got, `font-family: "codicon";`) {
			t.Errorf("family not preserved:\n%s", got)
		}
		if !strings.Contains(got, "font-style: normal;") || !strings.Contains(got, "font-weight: normal;") {
			t.Errorf("fixed style and weight missing:\n%s", got)
		}
		if strings.Contains(got, "woff") {
			t.Errorf("alternate-format sources survived:\n%s", got)
		}
		if !strings.Contains(got, `.codicon-add:before { content: "\ea60"; }`) {
			t.Errorf("icon rules must pass through untouched:\n%s", got)
		}
	})

	t.Run("exact canonical block", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteFontFormat(`@font-face { font-family: "codicon"; src: url(x.woff); }`, tmpDir, log)
		want := "@font-face {\n" +
			"  font-family: \"codicon\";\n" +
			"  src: url(\"./codicon.ttf\") format(\"truetype\");\n" +
			"  font-style: normal;\n" +
			"  font-weight: normal;\n" +
			"}"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("no fonts keeps text unchanged", func(t *testing.T) {
		css := `@font-face { font-family: "codicon"; src: url("./codicon.woff"); }`
		if got := RewriteFontFormat(css, t.TempDir(), log); got != css {
			t.Errorf("text changed without fonts:\n%s", got)
		}
	})

	t.Run("block without family unchanged", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		css := `@font-face { src: url("./mystery.woff"); }`
		if got := RewriteFontFormat(css, tmpDir, log); got != css {
			t.Errorf("block without font-family must stay:\n%s", got)
		}
	})

	t.Run("family substring picks the matching font", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "alpha.ttf", ttfHeader)
		writeFile(t, tmpDir, "codicon.ttf", ttfHeader)

		got := RewriteFontFormat(`@font-face { font-family: "codicon"; src: url(x.woff); }`, tmpDir, log)
		if !strings.Contains(got, `url("./codicon.ttf")`) {
			t.Errorf("expected codicon.ttf:\n%s", got)
		}
	})

	t.Run("family match is case-insensitive", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "alpha.ttf", ttfHeader)
		writeFile(t, tmpDir, "CodIcon.ttf", ttfHeader)

		got := RewriteFontFormat(`@font-face { font-family: "codicon"; src: url(x.woff); }`, tmpDir, log)
		if !strings.Contains(got, `url("./CodIcon.ttf")`) {
			t.Errorf("expected CodIcon.ttf:\n%s", got)
		}
	})

	t.Run("unmatched family defaults to first font", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "zeta.ttf", ttfHeader)
		writeFile(t, tmpDir, "alpha.ttf", ttfHeader)

		got := RewriteFontFormat(`@font-face { font-family: "seti"; src: url(x.woff); }`, tmpDir, log)
		if !strings.Contains(got, `url("./alpha.ttf")`) {
			t.Errorf("expected first discovered font:\n%s", got)
		}
	})

	t.Run("multiple blocks rewritten independently", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "codicon.ttf", ttfHeader)
		writeFile(t, tmpDir, "octicons.ttf", ttfHeader)

		css := `@font-face { font-family: "codicon"; src: url(a.woff); }
@font-face { font-family: "octicons"; src: url(b.woff); }`

		got := RewriteFontFormat(css, tmpDir, log)
		if !strings.Contains(got, `url("./codicon.ttf")`) || !strings.Contains(got, `url("./octicons.ttf")`) {
			t.Errorf("each block should pick its own font:\n%s", got)
		}
	})
}
