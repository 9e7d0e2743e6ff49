package assets

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"github.com/mrleemurray/codicon-inspector/common"
)

// targetFormat is the font format rewritten stylesheets must reference.
var targetFormat = common.FontFormatTtf

// fontSniffLen is the number of leading bytes magic-byte detection needs.
const fontSniffLen = 262

// FontAsset is a discovered font file.
type FontAsset struct {
	Name string // file name within its directory
	Path string // full path
}

// ListFonts returns font files of the target format found directly in dir,
// in natural name order. Read errors produce an empty list, never an error.
func ListFonts(dir string, log *zap.Logger) []FontAsset {
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("Unable to list font directory", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), targetFormat.Ext()) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))

	fonts := make([]FontAsset, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		sniffFont(path, log)
		fonts = append(fonts, FontAsset{Name: name, Path: path})
	}
	return fonts
}

// sniffFont warns when a font's leading bytes do not look like the format its
// extension claims. Extension governs selection; the sniff is diagnostic only.
func sniffFont(path string, log *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		log.Debug("Unable to open font", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	head := make([]byte, fontSniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		log.Debug("Unable to read font header", zap.String("path", path), zap.Error(err))
		return
	}

	if !filetype.Is(head[:n], targetFormat.String()) {
		log.Warn("Font content does not match its extension",
			zap.String("path", path),
			zap.String("expected", targetFormat.String()))
	}
}
