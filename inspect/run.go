package inspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/mrleemurray/codicon-inspector/assets"
	"github.com/mrleemurray/codicon-inspector/state"
)

// Run implements the resolve command: a single resolution pass writing the
// rewritten stylesheet and the icon list to the destination directory.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts, err := prepareAssets(cmd, env, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Resolution starting", zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Resolution completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res := assets.Resolve(opts, env.Log)
	storeDebugArtifacts(res, env)

	if cmd.Bool("stdout") {
		_, err := os.Stdout.WriteString(res.Stylesheet)
		return err
	}
	return writeResolution(res, dst, env, log)
}

// RunIcons implements the icons command: names only, one per line, to STDOUT
// or to the file requested with --output.
func RunIcons(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, arguments are not expected", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	opts, err := prepareAssets(cmd, env, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	res := assets.Resolve(opts, env.Log)
	storeDebugArtifacts(res, env)

	data := []byte(iconList(res.Icons))

	fname := cmd.String("output")
	if len(fname) == 0 {
		log.Info("Listing icon names", zap.Stringer("source", res.Source), zap.Int("icons", len(res.Icons)))
		_, err := os.Stdout.Write(data)
		return err
	}

	if fname, err = filepath.Abs(fname); err != nil {
		return err
	}
	log.Info("Writing icon names", zap.String("file", fname), zap.Stringer("source", res.Source), zap.Int("icons", len(res.Icons)))
	return writeOutputFile(fname, data, env, log)
}

// prepareAssets assembles options for a resolution pass from command line and
// configuration. Command line wins.
func prepareAssets(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) (assets.Options, error) {
	if env.Cfg.Assets.BundledPath != "" {
		data, err := os.ReadFile(env.Cfg.Assets.BundledPath)
		if err != nil {
			return assets.Options{}, fmt.Errorf("unable to read bundled stylesheet from %q: %w", env.Cfg.Assets.BundledPath, err)
		}
		env.BundledStyle = data
	}

	// Stylesheets in the wild are not always UTF-8
	cp := cmd.String("encoding")
	if len(cp) == 0 {
		cp = env.Cfg.Document.DefaultEncoding
	}
	if len(cp) > 0 {
		enc, err := ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		} else {
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Forcefully decoding local stylesheet", zap.String("charset", n))
			env.CodePage = enc
		}
	}

	opts := assets.Options{
		LocalPath:    env.Cfg.Assets.LocalPath,
		BundledStyle: env.BundledStyle,
		Encoding:     env.CodePage,
	}
	if path := cmd.String("path"); len(path) > 0 {
		opts.LocalPath = path
	}
	return opts, nil
}

// writeResolution writes the final stylesheet and the icon list under dst.
func writeResolution(res *assets.Resolution, dst string, env *state.LocalEnv, log *zap.Logger) error {
	styleName := buildOutputPath(res, dst, ".css", env)
	listName := buildOutputPath(res, dst, ".txt", env)

	if err := writeOutputFile(styleName, []byte(res.Stylesheet), env, log); err != nil {
		return err
	}
	if err := writeOutputFile(listName, []byte(iconList(res.Icons)), env, log); err != nil {
		return err
	}

	log.Info("Resolution written",
		zap.String("stylesheet", styleName),
		zap.String("icons", listName),
		zap.String("ref_id", res.ID))

	// Store results for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", res.ID, filepath.Ext(styleName)), styleName)
		env.Rpt.Store(fmt.Sprintf("result-%s%s", res.ID, filepath.Ext(listName)), listName)
	}
	return nil
}

// writeOutputFile creates a single output file honoring the overwrite gate.
func writeOutputFile(name string, data []byte, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		if err = os.Remove(name); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.WriteFile(name, data, 0644)
}

// storeDebugArtifacts saves resolution internals for the debug report.
func storeDebugArtifacts(res *assets.Resolution, env *state.LocalEnv) {
	if env.Rpt == nil {
		return
	}
	env.Rpt.StoreData(fmt.Sprintf("assets/%s-raw.css", res.ID), []byte(res.Raw))
	env.Rpt.StoreData(fmt.Sprintf("assets/%s-final.css", res.ID), []byte(res.Stylesheet))
	env.Rpt.StoreData(fmt.Sprintf("assets/%s-icons.txt", res.ID), []byte(iconList(res.Icons)))
	env.Rpt.StoreData(fmt.Sprintf("assets/%s-dump.txt", res.ID), []byte(res.String()))
	if res.StylePath != "" {
		env.Rpt.Store(fmt.Sprintf("assets/%s-source.css", res.ID), res.StylePath)
	}
}

// iconList renders names one per line.
func iconList(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, "\n") + "\n"
}
