package logos

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benoitkugler/eventlogos/svgdoc"
	"github.com/benoitkugler/eventlogos/svgraster"
)

// Generator renders the logos found in Layout.SourceDir().
type Generator struct {
	Layout Layout
	Logger *slog.Logger // optional, defaults to slog.Default()
}

func (g Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// Run renders every source logo, stopping at the first error.
// Nothing is written if the source directory can't be read.
func (g Generator) Run() error {
	dir := g.Layout.SourceDir()
	sources, err := ListEntries(dir)
	if err != nil {
		return fmt.Errorf("reading event logo directory: %w", err)
	}
	for _, src := range sources {
		if err := g.RenderLogo(src); err != nil {
			return err
		}
	}
	return nil
}

// RenderLogo writes the SVG and PNG variants of `src`, one per preset.
// Directories and entries without base name are skipped.
// Logos sharing a base name overwrite each other.
func (g Generator) RenderLogo(src string) error {
	log := g.logger()
	name := BaseName(src)
	if name == "" {
		log.Debug("skipping entry without base name", "source", src)
		return nil
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		log.Debug("skipping directory", "source", src)
		return nil
	}

	doc, err := svgdoc.ReadFile(src)
	if err != nil {
		return fmt.Errorf("loading logo: %w", err)
	}
	for _, preset := range Presets {
		svgFile, pngFile := g.Layout.SVGPath(preset, name), g.Layout.PNGPath(preset, name)
		svgdoc.SetFill(doc, preset.Color)
		if err = svgdoc.WriteFile(doc, svgFile); err != nil {
			return fmt.Errorf("saving %s logo: %w", preset.Name, err)
		}
		// the bitmap is rendered from the file, not from doc
		if err = svgraster.RasterizeFile(svgFile, pngFile, LogoSize, LogoSize); err != nil {
			return fmt.Errorf("rendering %s logo: %w", preset.Name, err)
		}
		log.Debug("logo variant written", "svg", svgFile, "png", pngFile)
	}
	log.Info("logo rendered", "source", src, "name", name)
	return nil
}
