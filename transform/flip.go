// Package transform implements geometry-preserving operations over pixel
// buffers: flips, transposition, and rotation in 90-degree increments.
//
// Every operation is a pure function (or an explicit in-place mutation)
// over pixbuf buffers; nothing here blocks, retries, or shares state, so
// the package can be driven from any concurrency model the host chooses.
// All algorithms work row-by-row through Buffer.Row and therefore never
// touch row padding.
//
// Two-buffer operations require src and dst not to share backing memory.
// Violating that is a contract error: builds with the pixcoredebug tag
// panic on it, release builds pay no check.
package transform

import "github.com/AnyUserName/pixcore/pixbuf"

// FlipDirection selects the mirror axis for Flip.
type FlipDirection int

const (
	// FlipHorizontal reverses each row, keeping row order.
	FlipHorizontal FlipDirection = iota
	// FlipVertical reverses row order, keeping each row's pixel order.
	FlipVertical
	// FlipBoth reverses both axes; equivalent to a 180 degree rotation.
	FlipBoth
)

func (d FlipDirection) String() string {
	switch d {
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	case FlipBoth:
		return "both"
	}
	return "invalid"
}

// Flip mirrors src into dst according to dir. dst is reshaped via
// MaybeAllocate to src's extents; src and dst must not share backing
// memory. O(W*H), no scratch buffer. A direction outside the three named
// values panics before dst is touched.
func Flip[P any](dir FlipDirection, src, dst *pixbuf.Buffer[P]) {
	if dir < FlipHorizontal || dir > FlipBoth {
		panic("transform: invalid flip direction")
	}
	assertDistinct(src, dst)
	dst.MaybeAllocate(src.Width(), src.Height())

	h := src.Height()
	switch dir {
	case FlipHorizontal:
		for y := 0; y < h; y++ {
			reverseCopy(dst.Row(y), src.Row(y))
		}
	case FlipVertical:
		for y := 0; y < h; y++ {
			copy(dst.Row(h-1-y), src.Row(y))
		}
	case FlipBoth:
		for y := 0; y < h; y++ {
			reverseCopy(dst.Row(h-1-y), src.Row(y))
		}
	}
}

// Flipped returns a freshly allocated flipped copy of src.
func Flipped[P any](dir FlipDirection, src *pixbuf.Buffer[P]) *pixbuf.Buffer[P] {
	var dst pixbuf.Buffer[P]
	Flip(dir, src, &dst)
	return &dst
}

// FlipHorizontallyInPlace reverses each row of buf in place.
// W/2 swaps per row, no extra space.
func FlipHorizontallyInPlace[P any](buf *pixbuf.Buffer[P]) {
	w := buf.Width()
	half := w / 2
	for y := 0; y < buf.Height(); y++ {
		row := buf.Row(y)
		for x := 0; x < half; x++ {
			row[x], row[w-1-x] = row[w-1-x], row[x]
		}
	}
}

// FlipVerticallyInPlace reverses the row order of buf in place, swapping
// elements across each mirrored row pair in a single linear pass.
func FlipVerticallyInPlace[P any](buf *pixbuf.Buffer[P]) {
	h := buf.Height()
	for y := 0; y < h/2; y++ {
		top, bottom := buf.Row(y), buf.Row(h-1-y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// flipVerticallyByRowCopy is the row-buffer variant of the vertical
// in-place flip: three row copies through a temporary instead of
// elementwise swaps. Results are identical to FlipVerticallyInPlace;
// whether the extra W-pixel buffer ever wins on cache locality is
// unmeasured, so the swap-based pass stays the default.
func flipVerticallyByRowCopy[P any](buf *pixbuf.Buffer[P]) {
	h := buf.Height()
	if h < 2 {
		return
	}
	tmp := make([]P, buf.Width())
	for y := 0; y < h/2; y++ {
		top, bottom := buf.Row(y), buf.Row(h-1-y)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// reverseCopy writes src into dst back to front. len(dst) >= len(src).
func reverseCopy[P any](dst, src []P) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}
