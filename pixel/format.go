package pixel

// Format identifies the semantic meaning of a pixel's channels at runtime.
// The compile-time format contract lives in the shape types themselves;
// Format is the metadata external components (decoders, encoders) consume
// when they describe buffer contents dynamically.
type Format int

// Recognized pixel formats.
const (
	FormatUnknown Format = iota
	FormatGray
	FormatGrayA
	FormatRGB
	FormatBGR
	FormatRGBA
	FormatBGRA
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatGray:    "gray",
	FormatGrayA:   "gray+alpha",
	FormatRGB:     "rgb",
	FormatBGR:     "bgr",
	FormatRGBA:    "rgba",
	FormatBGRA:    "bgra",
}

var formatChannels = map[Format]int{
	FormatGray:  1,
	FormatGrayA: 2,
	FormatRGB:   3,
	FormatBGR:   3,
	FormatRGBA:  4,
	FormatBGRA:  4,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "invalid"
}

// Channels returns the channel count required by the format.
// FormatUnknown returns 0: it is compatible with any channel count.
func (f Format) Channels() int {
	return formatChannels[f]
}
