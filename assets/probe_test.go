package assets

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestResolveStylesheetPath_File(t *testing.T) {
	log := zaptest.NewLogger(t)
	tmpDir := t.TempDir()

	t.Run("stylesheet file accepted", func(t *testing.T) {
		path := writeFile(t, tmpDir, "theme.css", []byte("body {}"))
		got, err := ResolveStylesheetPath(path, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != path {
			t.Errorf("got %q, want %q", got, path)
		}
	})

	t.Run("extension compared case-insensitively", func(t *testing.T) {
		path := writeFile(t, tmpDir, "THEME.CSS", []byte("body {}"))
		got, err := ResolveStylesheetPath(path, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != path {
			t.Errorf("got %q, want %q", got, path)
		}
	})

	t.Run("non-stylesheet file rejected", func(t *testing.T) {
		path := writeFile(t, tmpDir, "font.ttf", ttfHeader)
		if _, err := ResolveStylesheetPath(path, log); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("missing path rejected", func(t *testing.T) {
		if _, err := ResolveStylesheetPath(filepath.Join(tmpDir, "nope.css"), log); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestResolveStylesheetPath_Directory(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("conventional name wins", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "aaa.css", []byte("a {}"))
		want := writeFile(t, tmpDir, "codicon.css", []byte("b {}"))

		got, err := ResolveStylesheetPath(tmpDir, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("conventional names tried in priority order", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "icons.css", []byte("a {}"))
		want := writeFile(t, tmpDir, "codicons.css", []byte("b {}"))

		got, err := ResolveStylesheetPath(tmpDir, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("falls back to first stylesheet in natural order", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "theme10.css", []byte("a {}"))
		want := writeFile(t, tmpDir, "theme2.css", []byte("b {}"))
		writeFile(t, tmpDir, "readme.txt", []byte("not css"))

		got, err := ResolveStylesheetPath(tmpDir, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("directories are not candidates", func(t *testing.T) {
		tmpDir := t.TempDir()
		mkdir(t, tmpDir, "codicon.css")
		want := writeFile(t, tmpDir, "zeta.css", []byte("z {}"))

		got, err := ResolveStylesheetPath(tmpDir, log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("directory without stylesheets rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "font.ttf", ttfHeader)
		mkdir(t, tmpDir, "nested")

		if _, err := ResolveStylesheetPath(tmpDir, log); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		if _, err := ResolveStylesheetPath(t.TempDir(), log); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestResolveStylesheetPath_NilLogger(t *testing.T) {
	tmpDir := t.TempDir()
	want := writeFile(t, tmpDir, "codicon.css", []byte("a {}"))

	got, err := ResolveStylesheetPath(tmpDir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
