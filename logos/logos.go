// Package logos generates the award variants of event logos.
//
// Every SVG found in the source directory is recolored once per preset,
// written under svg/<preset>/ and rendered to a 128x128 PNG under png/<preset>/.
package logos

import (
	"path/filepath"
	"strings"
)

// LogoSize is the width and height, in pixels, of the rendered bitmaps.
const LogoSize = 128

// DefaultBase is the root of the source and output trees,
// relative to the working directory.
const DefaultBase = "event-logos"

// Preset is an award tier : its name is used in output paths,
// its color is written as the fill of the logo.
type Preset struct {
	Name  string
	Color string
}

// Presets are rendered in this order.
var Presets = [...]Preset{
	{Name: "gold", Color: "#c9b037"},
	{Name: "silver", Color: "#d7d7d7"},
	{Name: "bronze", Color: "#ad8a56"},
}

// Layout maps logos to their location on disk, under Base.
type Layout struct {
	Base string
}

// SourceDir is the directory holding the original logos.
func (l Layout) SourceDir() string { return filepath.Join(l.Base, "source") }

// SVGPath returns <base>/svg/<preset>/<name>.svg
func (l Layout) SVGPath(p Preset, name string) string {
	return filepath.Join(l.Base, "svg", p.Name, name+".svg")
}

// PNGPath returns <base>/png/<preset>/<name>.png
func (l Layout) PNGPath(p Preset, name string) string {
	return filepath.Join(l.Base, "png", p.Name, name+".png")
}

// BaseName returns the file name of `path` without its extension.
// It is empty for paths with no file name and for dot files such as ".hidden".
func BaseName(path string) string {
	if path == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return ""
	}
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
