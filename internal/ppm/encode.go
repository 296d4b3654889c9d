package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Magic is the P3 format identifier that opens every stream.
const Magic = "P3"

// MaxValue is the maximum sample value written by the encoder.
const MaxValue = 255

// Encoding and decoding errors.
var (
	// ErrInvalidHeader is returned for a malformed or missing header.
	ErrInvalidHeader = errors.New("ppm: invalid header")

	// ErrShortData is returned when the stream ends before all samples are read.
	ErrShortData = errors.New("ppm: not enough pixel data")

	// ErrPixelCount is returned when the number of pixels differs from width*height.
	ErrPixelCount = errors.New("ppm: pixel count does not match header")

	// ErrSampleRange is returned when a sample is not in [0, max value].
	ErrSampleRange = errors.New("ppm: sample out of range")
)

// Encoder writes a P3 stream, one pixel per line.
//
// Call WriteHeader once, WriteLine once per pixel, then Close.
type Encoder struct {
	w      *bufio.Writer
	want   int
	n      int
	header bool
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic, the dimensions and MaxValue.
func (e *Encoder) WriteHeader(width, height int) error {
	if e.header {
		return fmt.Errorf("%w: header already written", ErrInvalidHeader)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidHeader, width, height)
	}
	e.header = true
	e.want = width * height

	buf := make([]byte, 0, 32)
	buf = append(buf, Magic...)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, int64(width), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(height), 10)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, MaxValue, 10)
	buf = append(buf, '\n')
	_, err := e.w.Write(buf)
	return err
}

// WriteLine writes one preformatted pixel line such as "255 0 0".
func (e *Encoder) WriteLine(line string) error {
	if !e.header {
		return fmt.Errorf("%w: pixel written before header", ErrInvalidHeader)
	}
	if e.n >= e.want {
		return fmt.Errorf("%w: more than %d pixels", ErrPixelCount, e.want)
	}
	e.n++
	if _, err := e.w.WriteString(line); err != nil {
		return err
	}
	return e.w.WriteByte('\n')
}

// Close flushes buffered output. It does not close the underlying writer.
// It reports ErrPixelCount if fewer pixels than width*height were written.
func (e *Encoder) Close() error {
	if err := e.w.Flush(); err != nil {
		return err
	}
	if e.n != e.want {
		return fmt.Errorf("%w: wrote %d of %d pixels", ErrPixelCount, e.n, e.want)
	}
	return nil
}
