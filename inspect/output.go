package inspect

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/mrleemurray/codicon-inspector/assets"
	"github.com/mrleemurray/codicon-inspector/config"
	"github.com/mrleemurray/codicon-inspector/state"
)

// buildOutputPath returns constructed output file path/name for a resolution
// artifact with the requested extension. It uses either default naming scheme
// or user-defined template. It cleans up path and if requested transliterates
// it
func buildOutputPath(res *assets.Resolution, dst, ext string, env *state.LocalEnv) string {
	defaultFile := buildDefaultFileName(res, ext, env)

	if env.Cfg.Assets.OutputNameTemplate == "" {
		return filepath.Join(dst, defaultFile)
	}

	expandedName := expandOutputNameTemplate(res, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dst, defaultFile)
	}

	return assemblePathWithSubdirs(dst, expandedName, ext, env)
}

func buildDefaultFileName(res *assets.Resolution, ext string, env *state.LocalEnv) string {
	baseName := "codicon-" + res.Source.String()
	if env.Cfg.Assets.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + ext
}

func expandOutputNameTemplate(res *assets.Resolution, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(res, config.OutputNameTemplateFieldName, env.Cfg.Assets.OutputNameTemplate)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName, ext string, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + ext
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Assets.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
