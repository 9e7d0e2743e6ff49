package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// styleExt is the stylesheet extension probing accepts, compared
// case-insensitively.
const styleExt = ".css"

// preferredStyleNames are tried first when probing a directory, in priority
// order.
var preferredStyleNames = []string{"codicon.css", "codicons.css", "icons.css"}

// ErrNotFound reports that no usable stylesheet exists under a probed path.
var ErrNotFound = errors.New("stylesheet not found")

// ResolveStylesheetPath locates the stylesheet file under inputPath, which may
// be a stylesheet file itself or a directory containing one. Directories are
// probed for conventional names first, then for the first stylesheet in
// natural name order. Filesystem errors are absorbed and reported as
// ErrNotFound.
func ResolveStylesheetPath(inputPath string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		log.Debug("Unable to stat asset path", zap.String("path", inputPath), zap.Error(err))
		return "", ErrNotFound
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(inputPath), styleExt) {
			return inputPath, nil
		}
		log.Debug("Asset path is not a stylesheet", zap.String("path", inputPath))
		return "", ErrNotFound
	}

	// Conventional names win over anything else in the directory
	for _, name := range preferredStyleNames {
		candidate := filepath.Join(inputPath, name)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			log.Debug("Found conventional stylesheet", zap.String("path", candidate))
			return candidate, nil
		}
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		log.Debug("Unable to list asset directory", zap.String("path", inputPath), zap.Error(err))
		return "", ErrNotFound
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), styleExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		log.Debug("No stylesheet in asset directory", zap.String("path", inputPath))
		return "", ErrNotFound
	}
	sort.Sort(natural.StringSlice(names))

	candidate := filepath.Join(inputPath, names[0])
	log.Debug("Found stylesheet by extension", zap.String("path", candidate))
	return candidate, nil
}
