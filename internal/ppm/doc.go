// Package ppm reads and writes the plain-text "P3" variant of the portable
// pixmap format.
//
// A P3 stream is the magic "P3", the width and height, the maximum sample
// value, and then three decimal samples per pixel in row-major order. The
// encoder writes one line per pixel; the decoder accepts any whitespace
// layout and skips "#" comments.
package ppm
