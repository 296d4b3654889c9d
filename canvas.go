package rt

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Canvas is a rectangular buffer of colors.
//
// Pixels are stored row-major: (x, y) lives at offset y*width + x, with
// y = 0 the top row. A Canvas is not safe for concurrent mutation.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// colorSize is the in-memory size of a Color (three float64 channels).
const colorSize = 24

// maxCanvasPixels bounds width*height so the pixel buffer size fits in an int.
const maxCanvasPixels = math.MaxInt / colorSize

// NewCanvas creates a black canvas with the given dimensions.
// It panics if width or height is negative or the pixel buffer would not fit in memory.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 || (width != 0 && height > maxCanvasPixels/width) {
		panic(fmt.Sprintf("rt: invalid canvas size %dx%d", width, height))
	}
	Logger().Debug("canvas allocated", "width", width, "height", height)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixel returns the color at (x, y).
// Coordinates outside the canvas return a *BoundsError.
func (c *Canvas) Pixel(x, y int) (Color, error) {
	i, err := c.offset(x, y)
	if err != nil {
		return Color{}, err
	}
	return c.pixels[i], nil
}

// SetPixel replaces the color at (x, y).
// Coordinates outside the canvas return a *BoundsError and leave the canvas unchanged.
func (c *Canvas) SetPixel(x, y int, col Color) error {
	i, err := c.offset(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

func (c *Canvas) offset(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, &BoundsError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	return y*c.width + x, nil
}

// At implements the image.Image interface.
// Out of range coordinates return transparent black, as image.RGBA does.
func (c *Canvas) At(x, y int) color.Color {
	col, err := c.Pixel(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return col.NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// toNRGBA converts the canvas to an 8-bit image using the same channel
// conversion as PPM output.
func (c *Canvas) toNRGBA() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for i, col := range c.pixels {
		r, g, b := col.Bytes()
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = r, g, b, 0xff
	}
	return img
}
