package assets

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeStylesheet(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("utf8 passes through", func(t *testing.T) {
		got, err := decodeStylesheet([]byte(`.codicon-add:before { content: "\ea60"; }`), nil, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `.codicon-add:before { content: "\ea60"; }` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("utf8 BOM stripped", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("body {}")...)
		got, err := decodeStylesheet(data, nil, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "body {}" {
			t.Errorf("got %q, want %q", got, "body {}")
		}
	})

	t.Run("utf16 detected by BOM", func(t *testing.T) {
		data := []byte{0xFF, 0xFE, 'b', 0, 'o', 0, 'd', 0, 'y', 0}
		got, err := decodeStylesheet(data, nil, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "body" {
			t.Errorf("got %q, want %q", got, "body")
		}
	})

	t.Run("forced encoding wins", func(t *testing.T) {
		// Windows-1251 bytes for "При"
		data := []byte{0xCF, 0xF0, 0xE8}
		got, err := decodeStylesheet(data, charmap.Windows1251, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "При" {
			t.Errorf("got %q, want %q", got, "При")
		}
	})

	t.Run("non-utf8 without markers decodes with the detector default", func(t *testing.T) {
		data := []byte{'c', 0xE9}
		got, err := decodeStylesheet(data, nil, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "cé" {
			t.Errorf("got %q, want %q", got, "cé")
		}
	})
}

func TestReadStylesheet(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("reads file content", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeFile(t, tmpDir, "codicon.css", []byte(".codicon {}"))

		got, err := readStylesheet(path, nil, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != ".codicon {}" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("missing file reported", func(t *testing.T) {
		if _, err := readStylesheet(filepath.Join(t.TempDir(), "nope.css"), nil, log); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
