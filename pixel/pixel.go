// Package pixel defines statically typed pixel values: fixed-size tuples of
// channel elements tagged with a semantic format.
//
// Each shape (Gray, GrayA, RGB, BGR, RGBA, BGRA) is a named fixed array, so
// the channel count and the format tag are part of the type. Arithmetic
// between incompatible formats does not compile, and every shape is tightly
// packed: a []RGB[uint8] is byte-for-byte a packed RGB8 buffer, safe to
// reinterpret against raw memory.
//
// Untagged pixels (the "unknown format" escape hatch) are the raw array
// types [N]T; any shape converts to and from its underlying array with an
// ordinary Go conversion.
package pixel

import "unsafe"

// Signed is a constraint for signed integer channel types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer channel types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for all integer channel types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating-point channel types.
type Float interface {
	~float32 | ~float64
}

// Channel is a constraint for all valid pixel channel types.
type Channel interface {
	Integer | Float
}

// Pixel shapes. The zero value is the zero pixel; after a buffer
// reallocation callers must not rely on any particular pixel content.
type (
	// Gray is a single-channel (luminance) pixel.
	Gray[T Channel] [1]T
	// GrayA is a luminance pixel with an alpha channel.
	GrayA[T Channel] [2]T
	// RGB is a three-channel pixel in R, G, B channel order.
	RGB[T Channel] [3]T
	// BGR is a three-channel pixel in B, G, R channel order.
	BGR[T Channel] [3]T
	// RGBA is a four-channel pixel in R, G, B, A channel order.
	RGBA[T Channel] [4]T
	// BGRA is a four-channel pixel in B, G, R, A channel order.
	BGRA[T Channel] [4]T
)

// Tight packing is part of the type contract: downstream code may
// reinterpret raw byte buffers as pixel sequences. The assignments compile
// only when the sizes match exactly.
var (
	_ [unsafe.Sizeof(Gray[uint8]{})]byte    = [1]byte{}
	_ [unsafe.Sizeof(GrayA[uint8]{})]byte   = [2]byte{}
	_ [unsafe.Sizeof(RGB[uint8]{})]byte     = [3]byte{}
	_ [unsafe.Sizeof(BGR[uint8]{})]byte     = [3]byte{}
	_ [unsafe.Sizeof(RGBA[uint8]{})]byte    = [4]byte{}
	_ [unsafe.Sizeof(BGRA[uint8]{})]byte    = [4]byte{}
	_ [unsafe.Sizeof(RGB[uint16]{})]byte    = [6]byte{}
	_ [unsafe.Sizeof(RGBA[float32]{})]byte  = [16]byte{}
	_ [unsafe.Sizeof(GrayA[float64]{})]byte = [16]byte{}
)

// Value returns the bare scalar of a single-channel pixel.
func (p Gray[T]) Value() T { return p[0] }

// ─── Gray ────────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (Gray[T]) Format() Format { return FormatGray }

// Channels returns the number of channels.
func (Gray[T]) Channels() int { return 1 }

// Add returns the elementwise sum of p and q.
func (p Gray[T]) Add(q Gray[T]) Gray[T] { return Gray[T]{p[0] + q[0]} }

// Sub returns the elementwise difference of p and q.
func (p Gray[T]) Sub(q Gray[T]) Gray[T] { return Gray[T]{p[0] - q[0]} }

// Mul returns the elementwise product of p and q.
func (p Gray[T]) Mul(q Gray[T]) Gray[T] { return Gray[T]{p[0] * q[0]} }

// Div returns the elementwise quotient of p and q. Division by a zero
// element follows the channel type's own semantics (integer panic,
// floating-point Inf/NaN).
func (p Gray[T]) Div(q Gray[T]) Gray[T] { return Gray[T]{p[0] / q[0]} }

// AddScalar adds s to every channel.
func (p Gray[T]) AddScalar(s T) Gray[T] { return Gray[T]{p[0] + s} }

// SubScalar subtracts s from every channel.
func (p Gray[T]) SubScalar(s T) Gray[T] { return Gray[T]{p[0] - s} }

// MulScalar multiplies every channel by s.
func (p Gray[T]) MulScalar(s T) Gray[T] { return Gray[T]{p[0] * s} }

// DivScalar divides every channel by s.
func (p Gray[T]) DivScalar(s T) Gray[T] { return Gray[T]{p[0] / s} }

// Neg negates every channel. Unsigned channel types wrap.
func (p Gray[T]) Neg() Gray[T] { return Gray[T]{-p[0]} }

// ─── GrayA ───────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (GrayA[T]) Format() Format { return FormatGrayA }

// Channels returns the number of channels.
func (GrayA[T]) Channels() int { return 2 }

// Add returns the elementwise sum of p and q.
func (p GrayA[T]) Add(q GrayA[T]) GrayA[T] { return GrayA[T]{p[0] + q[0], p[1] + q[1]} }

// Sub returns the elementwise difference of p and q.
func (p GrayA[T]) Sub(q GrayA[T]) GrayA[T] { return GrayA[T]{p[0] - q[0], p[1] - q[1]} }

// Mul returns the elementwise product of p and q.
func (p GrayA[T]) Mul(q GrayA[T]) GrayA[T] { return GrayA[T]{p[0] * q[0], p[1] * q[1]} }

// Div returns the elementwise quotient of p and q.
func (p GrayA[T]) Div(q GrayA[T]) GrayA[T] { return GrayA[T]{p[0] / q[0], p[1] / q[1]} }

// AddScalar adds s to every channel.
func (p GrayA[T]) AddScalar(s T) GrayA[T] { return GrayA[T]{p[0] + s, p[1] + s} }

// SubScalar subtracts s from every channel.
func (p GrayA[T]) SubScalar(s T) GrayA[T] { return GrayA[T]{p[0] - s, p[1] - s} }

// MulScalar multiplies every channel by s.
func (p GrayA[T]) MulScalar(s T) GrayA[T] { return GrayA[T]{p[0] * s, p[1] * s} }

// DivScalar divides every channel by s.
func (p GrayA[T]) DivScalar(s T) GrayA[T] { return GrayA[T]{p[0] / s, p[1] / s} }

// Neg negates every channel.
func (p GrayA[T]) Neg() GrayA[T] { return GrayA[T]{-p[0], -p[1]} }

// ─── RGB ─────────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (RGB[T]) Format() Format { return FormatRGB }

// Channels returns the number of channels.
func (RGB[T]) Channels() int { return 3 }

// Add returns the elementwise sum of p and q.
func (p RGB[T]) Add(q RGB[T]) RGB[T] { return RGB[T]{p[0] + q[0], p[1] + q[1], p[2] + q[2]} }

// Sub returns the elementwise difference of p and q.
func (p RGB[T]) Sub(q RGB[T]) RGB[T] { return RGB[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2]} }

// Mul returns the elementwise product of p and q.
func (p RGB[T]) Mul(q RGB[T]) RGB[T] { return RGB[T]{p[0] * q[0], p[1] * q[1], p[2] * q[2]} }

// Div returns the elementwise quotient of p and q.
func (p RGB[T]) Div(q RGB[T]) RGB[T] { return RGB[T]{p[0] / q[0], p[1] / q[1], p[2] / q[2]} }

// AddScalar adds s to every channel.
func (p RGB[T]) AddScalar(s T) RGB[T] { return RGB[T]{p[0] + s, p[1] + s, p[2] + s} }

// SubScalar subtracts s from every channel.
func (p RGB[T]) SubScalar(s T) RGB[T] { return RGB[T]{p[0] - s, p[1] - s, p[2] - s} }

// MulScalar multiplies every channel by s.
func (p RGB[T]) MulScalar(s T) RGB[T] { return RGB[T]{p[0] * s, p[1] * s, p[2] * s} }

// DivScalar divides every channel by s.
func (p RGB[T]) DivScalar(s T) RGB[T] { return RGB[T]{p[0] / s, p[1] / s, p[2] / s} }

// Neg negates every channel.
func (p RGB[T]) Neg() RGB[T] { return RGB[T]{-p[0], -p[1], -p[2]} }

// ─── BGR ─────────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (BGR[T]) Format() Format { return FormatBGR }

// Channels returns the number of channels.
func (BGR[T]) Channels() int { return 3 }

// Add returns the elementwise sum of p and q.
func (p BGR[T]) Add(q BGR[T]) BGR[T] { return BGR[T]{p[0] + q[0], p[1] + q[1], p[2] + q[2]} }

// Sub returns the elementwise difference of p and q.
func (p BGR[T]) Sub(q BGR[T]) BGR[T] { return BGR[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2]} }

// Mul returns the elementwise product of p and q.
func (p BGR[T]) Mul(q BGR[T]) BGR[T] { return BGR[T]{p[0] * q[0], p[1] * q[1], p[2] * q[2]} }

// Div returns the elementwise quotient of p and q.
func (p BGR[T]) Div(q BGR[T]) BGR[T] { return BGR[T]{p[0] / q[0], p[1] / q[1], p[2] / q[2]} }

// AddScalar adds s to every channel.
func (p BGR[T]) AddScalar(s T) BGR[T] { return BGR[T]{p[0] + s, p[1] + s, p[2] + s} }

// SubScalar subtracts s from every channel.
func (p BGR[T]) SubScalar(s T) BGR[T] { return BGR[T]{p[0] - s, p[1] - s, p[2] - s} }

// MulScalar multiplies every channel by s.
func (p BGR[T]) MulScalar(s T) BGR[T] { return BGR[T]{p[0] * s, p[1] * s, p[2] * s} }

// DivScalar divides every channel by s.
func (p BGR[T]) DivScalar(s T) BGR[T] { return BGR[T]{p[0] / s, p[1] / s, p[2] / s} }

// Neg negates every channel.
func (p BGR[T]) Neg() BGR[T] { return BGR[T]{-p[0], -p[1], -p[2]} }

// ─── RGBA ────────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (RGBA[T]) Format() Format { return FormatRGBA }

// Channels returns the number of channels.
func (RGBA[T]) Channels() int { return 4 }

// Add returns the elementwise sum of p and q.
func (p RGBA[T]) Add(q RGBA[T]) RGBA[T] {
	return RGBA[T]{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
}

// Sub returns the elementwise difference of p and q.
func (p RGBA[T]) Sub(q RGBA[T]) RGBA[T] {
	return RGBA[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2], p[3] - q[3]}
}

// Mul returns the elementwise product of p and q.
func (p RGBA[T]) Mul(q RGBA[T]) RGBA[T] {
	return RGBA[T]{p[0] * q[0], p[1] * q[1], p[2] * q[2], p[3] * q[3]}
}

// Div returns the elementwise quotient of p and q.
func (p RGBA[T]) Div(q RGBA[T]) RGBA[T] {
	return RGBA[T]{p[0] / q[0], p[1] / q[1], p[2] / q[2], p[3] / q[3]}
}

// AddScalar adds s to every channel.
func (p RGBA[T]) AddScalar(s T) RGBA[T] { return RGBA[T]{p[0] + s, p[1] + s, p[2] + s, p[3] + s} }

// SubScalar subtracts s from every channel.
func (p RGBA[T]) SubScalar(s T) RGBA[T] { return RGBA[T]{p[0] - s, p[1] - s, p[2] - s, p[3] - s} }

// MulScalar multiplies every channel by s.
func (p RGBA[T]) MulScalar(s T) RGBA[T] { return RGBA[T]{p[0] * s, p[1] * s, p[2] * s, p[3] * s} }

// DivScalar divides every channel by s.
func (p RGBA[T]) DivScalar(s T) RGBA[T] { return RGBA[T]{p[0] / s, p[1] / s, p[2] / s, p[3] / s} }

// Neg negates every channel.
func (p RGBA[T]) Neg() RGBA[T] { return RGBA[T]{-p[0], -p[1], -p[2], -p[3]} }

// ─── BGRA ────────────────────────────────────────────────────

// Format returns the semantic format tag of the pixel type.
func (BGRA[T]) Format() Format { return FormatBGRA }

// Channels returns the number of channels.
func (BGRA[T]) Channels() int { return 4 }

// Add returns the elementwise sum of p and q.
func (p BGRA[T]) Add(q BGRA[T]) BGRA[T] {
	return BGRA[T]{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
}

// Sub returns the elementwise difference of p and q.
func (p BGRA[T]) Sub(q BGRA[T]) BGRA[T] {
	return BGRA[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2], p[3] - q[3]}
}

// Mul returns the elementwise product of p and q.
func (p BGRA[T]) Mul(q BGRA[T]) BGRA[T] {
	return BGRA[T]{p[0] * q[0], p[1] * q[1], p[2] * q[2], p[3] * q[3]}
}

// Div returns the elementwise quotient of p and q.
func (p BGRA[T]) Div(q BGRA[T]) BGRA[T] {
	return BGRA[T]{p[0] / q[0], p[1] / q[1], p[2] / q[2], p[3] / q[3]}
}

// AddScalar adds s to every channel.
func (p BGRA[T]) AddScalar(s T) BGRA[T] { return BGRA[T]{p[0] + s, p[1] + s, p[2] + s, p[3] + s} }

// SubScalar subtracts s from every channel.
func (p BGRA[T]) SubScalar(s T) BGRA[T] { return BGRA[T]{p[0] - s, p[1] - s, p[2] - s, p[3] - s} }

// MulScalar multiplies every channel by s.
func (p BGRA[T]) MulScalar(s T) BGRA[T] { return BGRA[T]{p[0] * s, p[1] * s, p[2] * s, p[3] * s} }

// DivScalar divides every channel by s.
func (p BGRA[T]) DivScalar(s T) BGRA[T] { return BGRA[T]{p[0] / s, p[1] / s, p[2] / s, p[3] / s} }

// Neg negates every channel.
func (p BGRA[T]) Neg() BGRA[T] { return BGRA[T]{-p[0], -p[1], -p[2], -p[3]} }
