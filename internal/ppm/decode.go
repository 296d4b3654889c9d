package ppm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// initialSamples caps the sample buffer preallocated from the header.
const initialSamples = 1 << 16

// Image is a decoded P3 raster.
type Image struct {
	Width, Height int
	MaxValue      int

	// Samples holds three values (r, g, b) per pixel in row-major order.
	Samples []int
}

// RGB returns the samples of the pixel at (x, y).
func (img *Image) RGB(x, y int) (r, g, b int) {
	i := (y*img.Width + x) * 3
	return img.Samples[i], img.Samples[i+1], img.Samples[i+2]
}

// Decode reads a complete P3 stream from r.
func Decode(r io.Reader) (*Image, error) {
	s := newScanner(r)

	magic, err := s.token()
	if err != nil {
		return nil, fmt.Errorf("%w: missing magic: %w", ErrInvalidHeader, err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidHeader, magic)
	}

	var hdr [3]int
	for i, name := range []string{"width", "height", "max value"} {
		v, err := s.number()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidHeader, name, err)
		}
		hdr[i] = v
	}
	img := &Image{Width: hdr[0], Height: hdr[1], MaxValue: hdr[2]}
	if img.Width < 0 || img.Height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidHeader, img.Width, img.Height)
	}
	if img.MaxValue < 1 || img.MaxValue > 65535 {
		return nil, fmt.Errorf("%w: max value %d", ErrInvalidHeader, img.MaxValue)
	}

	if img.Width != 0 && img.Height > math.MaxInt/3/img.Width {
		return nil, fmt.Errorf("%w: size %dx%d overflows", ErrInvalidHeader, img.Width, img.Height)
	}

	// Samples grow as tokens arrive so a large header alone cannot force a
	// large allocation.
	n := img.Width * img.Height * 3
	img.Samples = make([]int, 0, min(n, initialSamples))
	for i := 0; i < n; i++ {
		v, err := s.number()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: got %d of %d samples", ErrShortData, i, n)
		}
		if err != nil {
			return nil, err
		}
		if v < 0 || v > img.MaxValue {
			return nil, fmt.Errorf("%w: sample %d is %d, max %d", ErrSampleRange, i, v, img.MaxValue)
		}
		img.Samples = append(img.Samples, v)
	}

	if _, err := s.token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trailing data after %d pixels", ErrPixelCount, img.Width*img.Height)
	}
	return img, nil
}

// scanner splits a P3 stream into whitespace separated tokens,
// dropping everything from '#' to the end of the line.
type scanner struct {
	sc *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(splitTokens)
	return &scanner{sc: sc}
}

func (s *scanner) token() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scanner) number() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: bad number %q", tok)
	}
	return v, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// splitTokens is a bufio.SplitFunc like bufio.ScanWords that also skips comments.
func splitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := 0
	for i < len(data) {
		switch {
		case isSpace(data[i]):
			i++
		case data[i] == '#':
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				return i, nil, nil
			}
			i += nl + 1
		default:
			for j := i; j < len(data); j++ {
				if isSpace(data[j]) || data[j] == '#' {
					return j, data[i:j], nil
				}
			}
			if atEOF {
				return len(data), data[i:], nil
			}
			return i, nil, nil
		}
	}
	return i, nil, nil
}
