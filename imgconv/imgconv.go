// Package imgconv bridges pixcore buffers and the standard library image
// types. It is the producer/consumer edge of the core: decoders hand over
// image values, encoders take them back, and everything in between works on
// pixbuf buffers. No codec or file I/O lives here.
//
// Conversions move whole rows of raw bytes; image.At never appears on the
// hot path.
package imgconv

import (
	"image"
	"image/color"

	"github.com/AnyUserName/pixcore/pixbuf"
	"github.com/AnyUserName/pixcore/pixel"
)

// FromNRGBA copies a non-premultiplied RGBA image into a tightly packed
// RGBA8 buffer.
func FromNRGBA(img *image.NRGBA) *pixbuf.Buffer[pixel.RGBA[uint8]] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := pixbuf.New[pixel.RGBA[uint8]](w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.RowBytes(y), img.Pix[off:off+w*4])
	}
	return buf
}

// ToNRGBA copies an RGBA8 buffer into a new non-premultiplied RGBA image.
func ToNRGBA(buf *pixbuf.Buffer[pixel.RGBA[uint8]]) *image.NRGBA {
	w, h := buf.Width(), buf.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], buf.RowBytes(y))
	}
	return img
}

// FromGray copies a grayscale image into a tightly packed Gray8 buffer.
func FromGray(img *image.Gray) *pixbuf.Buffer[pixel.Gray[uint8]] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := pixbuf.New[pixel.Gray[uint8]](w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.RowBytes(y), img.Pix[off:off+w])
	}
	return buf
}

// ToGray copies a Gray8 buffer into a new grayscale image.
func ToGray(buf *pixbuf.Buffer[pixel.Gray[uint8]]) *image.Gray {
	w, h := buf.Width(), buf.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], buf.RowBytes(y))
	}
	return img
}

// Image wraps an RGBA8 buffer as a read-only image.Image without copying.
// Writes to the buffer are visible through the returned image.
func Image(buf *pixbuf.Buffer[pixel.RGBA[uint8]]) image.Image {
	return rgbaImage{buf}
}

type rgbaImage struct {
	buf *pixbuf.Buffer[pixel.RGBA[uint8]]
}

func (m rgbaImage) ColorModel() color.Model { return color.NRGBAModel }

func (m rgbaImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.buf.Width(), m.buf.Height())
}

func (m rgbaImage) At(x, y int) color.Color {
	// image.Image allows out-of-bounds At; answer with transparent.
	p, err := m.buf.AtChecked(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}
