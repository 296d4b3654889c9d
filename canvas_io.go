package rt

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/rt/internal/ppm"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format identifies an image encoding supported by Canvas.Encode.
type Format int

// Supported formats.
const (
	FormatPPM Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WritePPM writes the canvas as a plain-text P3 image: the header lines
// "P3", "<width> <height>" and "255", then one "<r> <g> <b>" line per
// pixel in storage order.
func (c *Canvas) WritePPM(w io.Writer) error {
	enc := ppm.NewEncoder(w)
	if err := enc.WriteHeader(c.width, c.height); err != nil {
		return err
	}
	for _, col := range c.pixels {
		if err := enc.WriteLine(col.PPM()); err != nil {
			return err
		}
	}
	return enc.Close()
}

// PrintPPM writes the canvas as a P3 image to standard output.
func (c *Canvas) PrintPPM() error {
	return c.WritePPM(os.Stdout)
}

// ReadPPM decodes a P3 image into a new canvas.
// Samples are divided by the image's max value, so 255 of 255 becomes 1.0.
func ReadPPM(r io.Reader) (*Canvas, error) {
	img, err := ppm.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rt: read ppm: %w", err)
	}
	c := NewCanvas(img.Width, img.Height)
	maxv := float64(img.MaxValue)
	for i := range c.pixels {
		s := img.Samples[i*3 : i*3+3]
		c.pixels[i] = NewColor(float64(s[0])/maxv, float64(s[1])/maxv, float64(s[2])/maxv)
	}
	return c, nil
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format, opts ...SaveOption) error {
	o := applySaveOptions(opts)

	if f == FormatPPM {
		if o.scale == 1 {
			return c.WritePPM(w)
		}
		return writeScaledPPM(w, c.raster(o.scale))
	}

	img := c.raster(o.scale)
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save writes the canvas to path, choosing the format from the extension
// (.ppm, .png, .bmp, .tif or .tiff).
func (c *Canvas) Save(path string, opts ...SaveOption) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rt: create file: %w", err)
	}

	if err := c.Encode(file, f, opts...); err != nil {
		_ = file.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			Logger().Warn("partial canvas file not removed", "path", path, "error", rmErr)
		}
		return fmt.Errorf("rt: encode %v: %w", f, err)
	}
	if err := file.Close(); err != nil {
		Logger().Warn("canvas file close failed", "path", path, "error", err)
		return fmt.Errorf("rt: close file: %w", err)
	}

	Logger().Debug("canvas saved", "path", path, "format", f.String(),
		"width", c.width, "height", c.height)
	return nil
}

// raster returns the canvas as an 8-bit image enlarged by scale.
func (c *Canvas) raster(scale int) *image.NRGBA {
	src := c.toNRGBA()
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.width*scale, c.height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func writeScaledPPM(w io.Writer, img *image.NRGBA) error {
	b := img.Bounds()
	enc := ppm.NewEncoder(w)
	if err := enc.WriteHeader(b.Dx(), b.Dy()); err != nil {
		return err
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if err := enc.WriteLine(ppmTriple(img.Pix[i], img.Pix[i+1], img.Pix[i+2])); err != nil {
			return err
		}
	}
	return enc.Close()
}
