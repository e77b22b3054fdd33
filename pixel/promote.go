package pixel

// Accumulator promotion. Algorithms that sum many pixel values need a
// channel type wide enough not to overflow; Go generics cannot express
// "the next wider type", so promotion targets a fixed accumulator per
// domain: every integer channel type widens to int64, every float channel
// type widens to float64. For 64-bit channels (int64, uint64, and the
// platform-sized types on 64-bit targets) the promotion is width-neutral;
// accumulations over such channels carry the usual wraparound risk and a
// uint64 value above 1<<63-1 reinterprets as negative.

// PromoteGray widens an integer Gray pixel to an int64 accumulator pixel.
func PromoteGray[T Integer](p Gray[T]) Gray[int64] {
	return Gray[int64]{int64(p[0])}
}

// PromoteGrayFloat widens a float Gray pixel to a float64 accumulator pixel.
func PromoteGrayFloat[T Float](p Gray[T]) Gray[float64] {
	return Gray[float64]{float64(p[0])}
}

// PromoteGrayA widens an integer GrayA pixel to an int64 accumulator pixel.
func PromoteGrayA[T Integer](p GrayA[T]) GrayA[int64] {
	return GrayA[int64]{int64(p[0]), int64(p[1])}
}

// PromoteGrayAFloat widens a float GrayA pixel to a float64 accumulator pixel.
func PromoteGrayAFloat[T Float](p GrayA[T]) GrayA[float64] {
	return GrayA[float64]{float64(p[0]), float64(p[1])}
}

// PromoteRGB widens an integer RGB pixel to an int64 accumulator pixel.
func PromoteRGB[T Integer](p RGB[T]) RGB[int64] {
	return RGB[int64]{int64(p[0]), int64(p[1]), int64(p[2])}
}

// PromoteRGBFloat widens a float RGB pixel to a float64 accumulator pixel.
func PromoteRGBFloat[T Float](p RGB[T]) RGB[float64] {
	return RGB[float64]{float64(p[0]), float64(p[1]), float64(p[2])}
}

// PromoteBGR widens an integer BGR pixel to an int64 accumulator pixel.
func PromoteBGR[T Integer](p BGR[T]) BGR[int64] {
	return BGR[int64]{int64(p[0]), int64(p[1]), int64(p[2])}
}

// PromoteBGRFloat widens a float BGR pixel to a float64 accumulator pixel.
func PromoteBGRFloat[T Float](p BGR[T]) BGR[float64] {
	return BGR[float64]{float64(p[0]), float64(p[1]), float64(p[2])}
}

// PromoteRGBA widens an integer RGBA pixel to an int64 accumulator pixel.
func PromoteRGBA[T Integer](p RGBA[T]) RGBA[int64] {
	return RGBA[int64]{int64(p[0]), int64(p[1]), int64(p[2]), int64(p[3])}
}

// PromoteRGBAFloat widens a float RGBA pixel to a float64 accumulator pixel.
func PromoteRGBAFloat[T Float](p RGBA[T]) RGBA[float64] {
	return RGBA[float64]{float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])}
}

// PromoteBGRA widens an integer BGRA pixel to an int64 accumulator pixel.
func PromoteBGRA[T Integer](p BGRA[T]) BGRA[int64] {
	return BGRA[int64]{int64(p[0]), int64(p[1]), int64(p[2]), int64(p[3])}
}

// PromoteBGRAFloat widens a float BGRA pixel to a float64 accumulator pixel.
func PromoteBGRAFloat[T Float](p BGRA[T]) BGRA[float64] {
	return BGRA[float64]{float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])}
}
