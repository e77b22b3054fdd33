package pixel

// Cross-element-type conversion, one function per shape. The target element
// type is given explicitly; narrowing (uint16 -> uint8, float -> int) is the
// caller's responsibility, matching Go's static conversion semantics.
//
// Usage:
//
//	wide := pixel.ConvertRGB[uint16](narrow)

// ConvertGray converts a Gray pixel to element type U, elementwise.
func ConvertGray[U, T Channel](p Gray[T]) Gray[U] {
	return Gray[U]{U(p[0])}
}

// ConvertGrayA converts a GrayA pixel to element type U, elementwise.
func ConvertGrayA[U, T Channel](p GrayA[T]) GrayA[U] {
	return GrayA[U]{U(p[0]), U(p[1])}
}

// ConvertRGB converts an RGB pixel to element type U, elementwise.
func ConvertRGB[U, T Channel](p RGB[T]) RGB[U] {
	return RGB[U]{U(p[0]), U(p[1]), U(p[2])}
}

// ConvertBGR converts a BGR pixel to element type U, elementwise.
func ConvertBGR[U, T Channel](p BGR[T]) BGR[U] {
	return BGR[U]{U(p[0]), U(p[1]), U(p[2])}
}

// ConvertRGBA converts an RGBA pixel to element type U, elementwise.
func ConvertRGBA[U, T Channel](p RGBA[T]) RGBA[U] {
	return RGBA[U]{U(p[0]), U(p[1]), U(p[2]), U(p[3])}
}

// ConvertBGRA converts a BGRA pixel to element type U, elementwise.
func ConvertBGRA[U, T Channel](p BGRA[T]) BGRA[U] {
	return BGRA[U]{U(p[0]), U(p[1]), U(p[2]), U(p[3])}
}
