// Package pixbuf provides a row-major, statically typed 2D pixel buffer
// with explicit width, height, and row stride.
//
// The stride is counted in pixels and may exceed the width: the tail of
// each row is padding, carried for buffers that come from external sources
// (aligned decoders, mapped memory) and never touched by algorithms that
// honor the width. Buffers allocated by this package are always tightly
// packed (stride == width).
package pixbuf

import (
	"errors"
	"fmt"
	"unsafe"
)

// Sentinel errors for the checked accessors and view construction.
var (
	ErrOutOfRange  = errors.New("pixbuf: coordinates out of range")
	ErrBadGeometry = errors.New("pixbuf: inconsistent buffer geometry")
)

// Buffer is a 2D pixel container. The zero value is an empty buffer, ready
// for MaybeAllocate or for use as a transform destination.
//
// A Buffer either owns its backing allocation or is a non-owning view over
// caller-provided memory. Views read and write through to that memory and
// never free it; MaybeAllocate with a different shape detaches a view by
// allocating fresh storage.
type Buffer[P any] struct {
	pix    []P
	w, h   int
	stride int // in pixels, >= w
	view   bool
}

// New allocates a tightly packed w by h buffer. Non-positive dimensions
// yield an empty buffer.
func New[P any](w, h int) *Buffer[P] {
	b := &Buffer[P]{}
	b.MaybeAllocate(w, h)
	return b
}

// View wraps caller-provided memory without copying. The stride is counted
// in pixels and must be at least w; pix must cover (h-1)*stride+w pixels.
// The returned buffer never frees or reallocates the provided memory in
// place, but writes through to it.
func View[P any](pix []P, w, h, stride int) (*Buffer[P], error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, w, h)
	}
	if w == 0 || h == 0 {
		return &Buffer[P]{}, nil
	}
	if stride < w {
		return nil, fmt.Errorf("%w: stride %d < width %d", ErrBadGeometry, stride, w)
	}
	if need := (h-1)*stride + w; len(pix) < need {
		return nil, fmt.Errorf("%w: %d pixels provided, %d required for %dx%d stride %d",
			ErrBadGeometry, len(pix), need, w, h, stride)
	}
	return &Buffer[P]{pix: pix, w: w, h: h, stride: stride, view: true}, nil
}

// Width returns the number of pixels per row.
func (b *Buffer[P]) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer[P]) Height() int { return b.h }

// Stride returns the distance between row starts, in pixels.
func (b *Buffer[P]) Stride() int { return b.stride }

// StrideBytes returns the distance between row starts, in bytes.
func (b *Buffer[P]) StrideBytes() int {
	var zero P
	return b.stride * int(unsafe.Sizeof(zero))
}

// PixelCount returns width*height, the number of addressable pixels.
func (b *Buffer[P]) PixelCount() int { return b.w * b.h }

// Empty reports whether the buffer holds no pixels.
func (b *Buffer[P]) Empty() bool { return b.w == 0 || b.h == 0 }

// IsView reports whether the buffer wraps caller-provided memory.
func (b *Buffer[P]) IsView() bool { return b.view }

// Row returns row y as a slice of exactly Width pixels, independent of the
// stride. Row algorithms (copy, reverse) never need to know about padding.
// y is not validated against the height.
func (b *Buffer[P]) Row(y int) []P {
	off := y * b.stride
	return b.pix[off : off+b.w : off+b.w]
}

// At returns the pixel at (x, y). Coordinates are not validated: this is
// the hot-path accessor and staying within [0,w) x [0,h) is the caller's
// contract. Out-of-range coordinates may panic or address row padding.
func (b *Buffer[P]) At(x, y int) P {
	return b.pix[y*b.stride+x]
}

// Set writes the pixel at (x, y). Same contract as At.
func (b *Buffer[P]) Set(x, y int, p P) {
	b.pix[y*b.stride+x] = p
}

// AtChecked returns the pixel at (x, y), validating the coordinates.
func (b *Buffer[P]) AtChecked(x, y int) (P, error) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		var zero P
		return zero, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, b.w, b.h)
	}
	return b.pix[y*b.stride+x], nil
}

// SetChecked writes the pixel at (x, y), validating the coordinates.
func (b *Buffer[P]) SetChecked(x, y int, p P) error {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, b.w, b.h)
	}
	b.pix[y*b.stride+x] = p
	return nil
}

// RowBytes returns the raw bytes of row y, excluding padding. External
// codecs use this to move pixel data without knowing the pixel type.
func (b *Buffer[P]) RowBytes(y int) []byte {
	row := b.Row(y)
	if len(row) == 0 {
		return nil
	}
	n := len(row) * int(unsafe.Sizeof(row[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), n)
}

// MaybeAllocate ensures the buffer has shape (w, h). When the shape already
// matches it does nothing: the backing store, its stride, and all content
// (including padding) are preserved, so repeated transform calls into the
// same destination reuse one allocation. Otherwise the old backing is
// dropped and exactly w*h pixels are allocated with stride == w.
//
// MaybeAllocate is the sole mutator of the allocation's lifetime.
func (b *Buffer[P]) MaybeAllocate(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	if b.w == w && b.h == h {
		return
	}
	if w == 0 {
		*b = Buffer[P]{}
		return
	}
	logger().Debug("pixbuf: allocate", "width", w, "height", h)
	b.pix = make([]P, w*h)
	b.w, b.h = w, h
	b.stride = w
	b.view = false
}

// Clone returns a tightly packed copy of the buffer's visible pixels.
// Padding is not carried over.
func (b *Buffer[P]) Clone() *Buffer[P] {
	c := &Buffer[P]{}
	Copy(c, b)
	return c
}

// Copy reshapes dst via MaybeAllocate and copies src's visible pixels into
// it row by row. dst and src must not share backing memory unless they are
// the same buffer, in which case Copy is a no-op.
func Copy[P any](dst, src *Buffer[P]) {
	if dst == src {
		return
	}
	dst.MaybeAllocate(src.w, src.h)
	for y := 0; y < src.h; y++ {
		copy(dst.Row(y), src.Row(y))
	}
}

// Equal reports whether a and b have the same shape and identical visible
// pixel content. Stride and padding do not participate.
func Equal[P comparable](a, b *Buffer[P]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for y := 0; y < a.h; y++ {
		ra, rb := a.Row(y), b.Row(y)
		for x := range ra {
			if ra[x] != rb[x] {
				return false
			}
		}
	}
	return true
}

// SharesBacking reports whether the two buffers' backing stores overlap in
// memory. Two-buffer transforms require this to be false; the debug build
// tag asserts it.
func SharesBacking[P any](a, b *Buffer[P]) bool {
	if a == nil || b == nil || len(a.pix) == 0 || len(b.pix) == 0 {
		return false
	}
	size := unsafe.Sizeof(a.pix[0])
	a0 := uintptr(unsafe.Pointer(&a.pix[0]))
	a1 := a0 + uintptr(len(a.pix))*size
	b0 := uintptr(unsafe.Pointer(&b.pix[0]))
	b1 := b0 + uintptr(len(b.pix))*size
	return a0 < b1 && b0 < a1
}
