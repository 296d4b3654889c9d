package rt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rt/internal/ppm"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestWritePPM_FreshCanvas(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCanvas(2, 2).WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}
	want := "P3\n2 2\n255\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WritePPM() mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePPM_PixelOrder(t *testing.T) {
	c := NewCanvas(5, 3)
	_ = c.SetPixel(0, 0, NewColor(1.5, 0, 0))
	_ = c.SetPixel(2, 1, NewColor(0, 0.5, 0))
	_ = c.SetPixel(4, 2, NewColor(-0.5, 0, 1))

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	if diff := cmp.Diff([]string{"P3", "5 3", "255"}, lines[:3]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if len(lines) != 3+15 {
		t.Fatalf("got %d lines, want %d", len(lines), 18)
	}
	pixels := lines[3:]
	want := map[int]string{0: "255 0 0", 1*5 + 2: "0 128 0", 2*5 + 4: "0 0 255"}
	for i, line := range pixels {
		w, ok := want[i]
		if !ok {
			w = "0 0 0"
		}
		if line != w {
			t.Errorf("pixel line %d = %q, want %q", i, line, w)
		}
	}
}

func TestPrintPPM(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	c := NewCanvas(1, 1)
	_ = c.SetPixel(0, 0, White)
	printErr := c.PrintPPM()
	_ = w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if printErr != nil {
		t.Fatalf("PrintPPM() error = %v", printErr)
	}
	if got, want := string(out), "P3\n1 1\n255\n255 255 255\n"; got != want {
		t.Errorf("PrintPPM() wrote %q, want %q", got, want)
	}
}

func TestReadPPM(t *testing.T) {
	c := NewCanvas(3, 2)
	_ = c.SetPixel(0, 0, White)
	_ = c.SetPixel(2, 1, NewColor(1, 0, 1))

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}
	got, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM() error = %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", got.Width(), got.Height())
	}
	if diff := cmp.Diff(c.pixels, got.pixels); diff != "" {
		t.Errorf("ReadPPM() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPPM_MaxValue(t *testing.T) {
	c, err := ReadPPM(strings.NewReader("P3\n1 1\n4\n4 2 0\n"))
	if err != nil {
		t.Fatalf("ReadPPM() error = %v", err)
	}
	p, _ := c.Pixel(0, 0)
	if !p.Equal(NewColor(1, 0.5, 0)) {
		t.Errorf("Pixel(0, 0) = %+v, want (1, 0.5, 0)", p)
	}
}

func TestReadPPM_Invalid(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P6\n1 1\n255\n"))
	if !errors.Is(err, ppm.ErrInvalidHeader) {
		t.Errorf("ReadPPM() error = %v, want ppm.ErrInvalidHeader", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.ppm", FormatPPM},
		{"dir/OUT.PNG", FormatPNG},
		{"a.bmp", FormatBMP},
		{"a.tif", FormatTIFF},
		{"a.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
	for _, path := range []string{"a.jpg", "noext", "a.ppm.gz"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatTIFF.String(); got != "tiff" {
		t.Errorf("FormatTIFF.String() = %q", got)
	}
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("Format(42).String() = %q", got)
	}
}

func testCanvas() *Canvas {
	c := NewCanvas(3, 2)
	_ = c.SetPixel(0, 0, Red)
	_ = c.SetPixel(1, 0, Green)
	_ = c.SetPixel(2, 0, Blue)
	_ = c.SetPixel(1, 1, NewColor(0.5, 1.2, -1))
	return c
}

func decodeFile(t *testing.T, path string, decode func(io.Reader) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

// samePixels compares an 8-bit opaque decode against the canvas bytes.
func samePixels(t *testing.T, c *Canvas, img image.Image, scale int) {
	t.Helper()
	b := img.Bounds()
	if b.Dx() != c.Width()*scale || b.Dy() != c.Height()*scale {
		t.Fatalf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), c.Width()*scale, c.Height()*scale)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			want := c.At(x/scale, y/scale)
			got := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y))
			if got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSave(t *testing.T) {
	c := testCanvas()
	dir := t.TempDir()

	tests := []struct {
		name   string
		decode func(io.Reader) (image.Image, error)
	}{
		{"out.png", png.Decode},
		{"out.bmp", bmp.Decode},
		{"out.tiff", tiff.Decode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := c.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			samePixels(t, c, decodeFile(t, path, tt.decode), 1)
		})
	}
}

func TestSave_PPM(t *testing.T) {
	c := testCanvas()
	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	_ = c.WritePPM(&want)
	if diff := cmp.Diff(want.String(), string(data)); diff != "" {
		t.Errorf("saved PPM mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_WithScale(t *testing.T) {
	c := testCanvas()
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "big.png")
	if err := c.Save(pngPath, WithScale(4)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	samePixels(t, c, decodeFile(t, pngPath, png.Decode), 4)

	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatPPM, WithScale(2)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := ppm.Decode(&buf)
	if err != nil {
		t.Fatalf("ppm.Decode() error = %v", err)
	}
	if img.Width != 6 || img.Height != 4 {
		t.Fatalf("scaled PPM size = %dx%d, want 6x4", img.Width, img.Height)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.RGB(x, y)
			src, _ := c.Pixel(x/2, y/2)
			wr, wg, wb := src.Bytes()
			if r != int(wr) || g != int(wg) || b != int(wb) {
				t.Errorf("scaled pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)", x, y, r, g, b, wr, wg, wb)
			}
		}
	}
}

func TestWithScaleBelowOne(t *testing.T) {
	for _, n := range []int{0, -3} {
		if o := applySaveOptions([]SaveOption{WithScale(n)}); o.scale != 1 {
			t.Errorf("WithScale(%d) scale = %d, want 1", n, o.scale)
		}
	}
}

func TestSave_Errors(t *testing.T) {
	c := testCanvas()
	dir := t.TempDir()

	if err := c.Save(filepath.Join(dir, "out.gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := c.Save(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("Save() into a missing directory should fail")
	}
	// PNG cannot encode an empty image; the partial file must not remain.
	emptyPath := filepath.Join(dir, "empty.png")
	if err := NewCanvas(0, 0).Save(emptyPath); err == nil {
		t.Error("Save() of an empty canvas as PNG should fail")
	}
	if _, err := os.Stat(emptyPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed Save() left %s behind (stat error = %v)", emptyPath, err)
	}
	if err := c.Encode(io.Discard, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(99)) error = %v, want ErrUnsupportedFormat", err)
	}
}

func BenchmarkWritePPM(b *testing.B) {
	c := NewCanvas(320, 240)
	c.Fill(NewColor(0.25, 0.5, 0.75))
	b.ReportAllocs()
	for b.Loop() {
		_ = c.WritePPM(io.Discard)
	}
}
