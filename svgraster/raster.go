// Implements a raster backend to render SVG images,
// by wrapping oksvg and rasterx, and saving the result as PNG.
package svgraster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterSVGIconToImage parses the icon and renders it at its original scale
// into a width x height image, using a ScannerGV instance.
// The original size is given by the width and height attributes of the root,
// defaulting to the viewBox size. Parts of the icon outside the image are
// cropped, and unsupported SVG elements are ignored.
func RasterSVGIconToImage(icon io.Reader, width, height int) (*image.RGBA, error) {
	content, err := io.ReadAll(icon)
	if err != nil {
		return nil, err
	}
	docW, docH, err := documentSize(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	parsedIcon, err := oksvg.ReadIconStream(bytes.NewReader(content), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	if vb := parsedIcon.ViewBox; vb.W > 0 && vb.H > 0 {
		parsedIcon.Transform = viewBoxTransform(vb.X, vb.Y, vb.W, vb.H, docW, docH)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	parsedIcon.Draw(dasher, 1.0)
	return img, nil
}

// viewBoxTransform maps the viewBox onto the document rectangle [0, w] x [0, h],
// preserving the aspect ratio and centering (xMidYMid meet).
// A zero document size falls back to the viewBox size.
func viewBoxTransform(vbX, vbY, vbW, vbH, w, h float64) rasterx.Matrix2D {
	if w <= 0 {
		w = vbW
	}
	if h <= 0 {
		h = vbH
	}
	scale := math.Min(w/vbW, h/vbH)
	tx, ty := (w-vbW*scale)/2, (h-vbH*scale)/2
	return rasterx.Identity.Translate(tx, ty).Scale(scale, scale).Translate(-vbX, -vbY)
}

// SavePNG encodes the image to `file`, creating
// its parent directories if needed.
func SavePNG(img image.Image, file string) error {
	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", file, err)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", file, err)
	}
	return f.Close()
}

// RasterizeFile reads the SVG file from disk, renders it into
// a width x height image and saves it as PNG to `pngFile`.
func RasterizeFile(svgFile, pngFile string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	f, err := os.Open(svgFile)
	if err != nil {
		return err
	}
	img, err := RasterSVGIconToImage(f, width, height)
	f.Close()
	if err != nil {
		return fmt.Errorf("rendering %s: %w", svgFile, err)
	}
	return SavePNG(img, pngFile)
}
