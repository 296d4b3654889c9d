package rt

import (
	"image/color"
	"math"
	"strconv"
)

// Color is an RGB intensity triple.
//
// Channels are nominally in [0, 1] but are not clamped: values outside that
// range are kept through arithmetic and only clamped when converted to bytes.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from its three channels.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
	Red   = NewColor(1, 0, 0)
	Green = NewColor(0, 1, 0)
	Blue  = NewColor(0, 0, 1)
)

// Add returns the channelwise sum.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the channelwise difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Hadamard returns the channelwise product, used to blend a light color
// with a surface color.
func (c Color) Hadamard(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Equal reports whether every channel of c and o is within DefaultEpsilon.
func (c Color) Equal(o Color) bool {
	return c.EqualWithin(o, DefaultTolerance)
}

// EqualWithin reports whether every channel of c and o is within tol.
func (c Color) EqualWithin(o Color, tol Tolerance) bool {
	return tol.Equal(c.R, o.R) && tol.Equal(c.G, o.G) && tol.Equal(c.B, o.B)
}

// Bytes converts each channel to the [0, 255] range.
// A channel is scaled by 255, rounded up, then clamped.
func (c Color) Bytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// PPM formats the color as a P3 pixel line: "<r> <g> <b>".
func (c Color) PPM() string {
	return ppmTriple(c.Bytes())
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Bytes()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// NRGBA converts the color to a standard 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// channelByte scales v to [0, 255] the way PPM output expects.
// Values beyond the int32 range are pinned before the integer clamp.
func channelByte(v float64) uint8 {
	s := math.Ceil(v * 255)
	switch {
	case math.IsNaN(s):
		return 0
	case s > math.MaxInt32:
		s = math.MaxInt32
	case s < math.MinInt32:
		s = math.MinInt32
	}
	return uint8(clamp(0, int(s), 255))
}

// ppmTriple joins three samples with single spaces.
func ppmTriple(r, g, b uint8) string {
	buf := make([]byte, 0, len("255 255 255"))
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return string(buf)
}
