package transform

import "github.com/AnyUserName/pixcore/pixbuf"

// Transpose swaps the row and column roles of src into dst, so dst's width
// is src's height and vice versa. The two flags additionally mirror the
// result: flipH flips the output horizontally, flipV vertically. Combined
// with a transpose these realize the two diagonal 90-degree rotations, so
// Rotate needs no second algorithm.
//
// For every destination coordinate (dx, dy):
//
//	srcX = flipV ? src.Width()-1-dy  : dy
//	srcY = flipH ? src.Height()-1-dx : dx
//	dst(dx, dy) = src(srcX, srcY)
//
// The flags are resolved once, outside the loops: each flag combination
// gets its own specialized loop body, keeping the per-pixel address
// computation branch-free.
//
// dst is reshaped via MaybeAllocate; src and dst must not share backing
// memory.
func Transpose[P any](flipH, flipV bool, src, dst *pixbuf.Buffer[P]) {
	assertDistinct(src, dst)
	dst.MaybeAllocate(src.Height(), src.Width())

	switch {
	case !flipH && !flipV:
		transposePlain(src, dst)
	case flipH && !flipV:
		transposeFlipH(src, dst)
	case !flipH && flipV:
		transposeFlipV(src, dst)
	default:
		transposeFlipBoth(src, dst)
	}
}

// Transposed returns a freshly allocated transposed copy of src.
func Transposed[P any](flipH, flipV bool, src *pixbuf.Buffer[P]) *pixbuf.Buffer[P] {
	var dst pixbuf.Buffer[P]
	Transpose(flipH, flipV, src, &dst)
	return &dst
}

func transposePlain[P any](src, dst *pixbuf.Buffer[P]) {
	for dy := 0; dy < dst.Height(); dy++ {
		row := dst.Row(dy)
		for dx := range row {
			row[dx] = src.At(dy, dx)
		}
	}
}

func transposeFlipH[P any](src, dst *pixbuf.Buffer[P]) {
	sh := src.Height()
	for dy := 0; dy < dst.Height(); dy++ {
		row := dst.Row(dy)
		for dx := range row {
			row[dx] = src.At(dy, sh-1-dx)
		}
	}
}

func transposeFlipV[P any](src, dst *pixbuf.Buffer[P]) {
	sw := src.Width()
	for dy := 0; dy < dst.Height(); dy++ {
		row := dst.Row(dy)
		for dx := range row {
			row[dx] = src.At(sw-1-dy, dx)
		}
	}
}

func transposeFlipBoth[P any](src, dst *pixbuf.Buffer[P]) {
	sw, sh := src.Width(), src.Height()
	for dy := 0; dy < dst.Height(); dy++ {
		row := dst.Row(dy)
		for dx := range row {
			row[dx] = src.At(sw-1-dy, sh-1-dx)
		}
	}
}
