package transform

import "github.com/AnyUserName/pixcore/pixbuf"

// RotationDirection names a rotation by a multiple of 90 degrees in either
// sense. The eight values collapse to four distinct transformations under
// the symmetry CW(k) == CCW(360-k); Rotate performs that collapse.
type RotationDirection int

const (
	Clockwise0 RotationDirection = iota
	Clockwise90
	Clockwise180
	Clockwise270
	Counterclockwise0
	Counterclockwise90
	Counterclockwise180
	Counterclockwise270
)

var rotationNames = map[RotationDirection]string{
	Clockwise0:          "cw0",
	Clockwise90:         "cw90",
	Clockwise180:        "cw180",
	Clockwise270:        "cw270",
	Counterclockwise0:   "ccw0",
	Counterclockwise90:  "ccw90",
	Counterclockwise180: "ccw180",
	Counterclockwise270: "ccw270",
}

func (d RotationDirection) String() string {
	if name, ok := rotationNames[d]; ok {
		return name
	}
	return "invalid"
}

// Rotate rotates src into dst by the given amount and direction. Each
// direction pair maps to one primitive and produces output byte-identical
// to calling that primitive directly:
//
//	CW0,   CCW0   -> copy
//	CW90,  CCW270 -> Transpose(flipH=true)
//	CW180, CCW180 -> Flip(FlipBoth)
//	CW270, CCW90  -> Transpose(flipV=true)
//
// dst is reshaped via MaybeAllocate; src and dst must not share backing
// memory. A value outside the eight named directions panics.
func Rotate[P any](dir RotationDirection, src, dst *pixbuf.Buffer[P]) {
	assertDistinct(src, dst)

	switch dir {
	case Clockwise0, Counterclockwise0:
		pixbuf.Copy(dst, src)
	case Clockwise90, Counterclockwise270:
		Transpose(true, false, src, dst)
	case Clockwise180, Counterclockwise180:
		Flip(FlipBoth, src, dst)
	case Clockwise270, Counterclockwise90:
		Transpose(false, true, src, dst)
	default:
		panic("transform: invalid rotation direction")
	}
}

// Rotated returns a freshly allocated rotated copy of src.
func Rotated[P any](dir RotationDirection, src *pixbuf.Buffer[P]) *pixbuf.Buffer[P] {
	var dst pixbuf.Buffer[P]
	Rotate(dir, src, &dst)
	return &dst
}
