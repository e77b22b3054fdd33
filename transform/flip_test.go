package transform

import (
	"testing"

	"github.com/AnyUserName/pixcore/pixbuf"
	"github.com/AnyUserName/pixcore/pixel"
)

// ─── test helpers ────────────────────────────────────────────

// bufFromRows builds a tight buffer from literal rows.
func bufFromRows(t *testing.T, rows [][]uint8) *pixbuf.Buffer[uint8] {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	b := pixbuf.New[uint8](w, h)
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("ragged fixture row %d", y)
		}
		copy(b.Row(y), row)
	}
	return b
}

// rowsOf flattens a buffer back into rows for golden comparison.
func rowsOf(b *pixbuf.Buffer[uint8]) [][]uint8 {
	rows := make([][]uint8, b.Height())
	for y := range rows {
		rows[y] = append([]uint8(nil), b.Row(y)...)
	}
	return rows
}

func rowsEqual(a, b [][]uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// patternBuf fills a w by h buffer with a deterministic pattern that makes
// every pixel distinguishable from its neighbors.
func patternBuf(w, h int) *pixbuf.Buffer[uint8] {
	b := pixbuf.New[uint8](w, h)
	for y := 0; y < h; y++ {
		row := b.Row(y)
		for x := range row {
			row[x] = uint8((x*251 + y*179) % 256)
		}
	}
	return b
}

// the 2x3 single-channel scenario: rows [1,2], [3,4], [5,6].
func scenarioBuf(t *testing.T) *pixbuf.Buffer[uint8] {
	return bufFromRows(t, [][]uint8{{1, 2}, {3, 4}, {5, 6}})
}

// ─── flips ───────────────────────────────────────────────────

func TestFlip_Golden(t *testing.T) {
	tests := []struct {
		name string
		dir  FlipDirection
		want [][]uint8
	}{
		{"horizontal", FlipHorizontal, [][]uint8{{2, 1}, {4, 3}, {6, 5}}},
		{"vertical", FlipVertical, [][]uint8{{5, 6}, {3, 4}, {1, 2}}},
		{"both", FlipBoth, [][]uint8{{6, 5}, {4, 3}, {2, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := scenarioBuf(t)
			var dst pixbuf.Buffer[uint8]
			Flip(tt.dir, src, &dst)
			if got := rowsOf(&dst); !rowsEqual(got, tt.want) {
				t.Errorf("flip %s = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestFlip_ShapeLaw(t *testing.T) {
	src := patternBuf(7, 4)
	for _, dir := range []FlipDirection{FlipHorizontal, FlipVertical, FlipBoth} {
		got := Flipped(dir, src)
		if got.Width() != 7 || got.Height() != 4 {
			t.Errorf("flip %s shape = %dx%d, want 7x4", dir, got.Width(), got.Height())
		}
	}
}

func TestFlip_Involution(t *testing.T) {
	for _, dir := range []FlipDirection{FlipHorizontal, FlipVertical, FlipBoth} {
		t.Run(dir.String(), func(t *testing.T) {
			src := patternBuf(9, 5)
			twice := Flipped(dir, Flipped(dir, src))
			if !pixbuf.Equal(twice, src) {
				t.Errorf("flip %s applied twice is not identity", dir)
			}
		})
	}
}

func TestFlipInPlace_MatchesTwoBuffer(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"even extents", 8, 6},
		{"odd extents", 7, 5},
		{"single column", 1, 5},
		{"single row", 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			horiz := patternBuf(tt.w, tt.h)
			FlipHorizontallyInPlace(horiz)
			if !pixbuf.Equal(horiz, Flipped(FlipHorizontal, patternBuf(tt.w, tt.h))) {
				t.Error("horizontal in-place differs from two-buffer flip")
			}

			vert := patternBuf(tt.w, tt.h)
			FlipVerticallyInPlace(vert)
			if !pixbuf.Equal(vert, Flipped(FlipVertical, patternBuf(tt.w, tt.h))) {
				t.Error("vertical in-place differs from two-buffer flip")
			}
		})
	}
}

func TestFlipVertical_RowCopyVariant(t *testing.T) {
	for _, h := range []int{1, 2, 5, 8} {
		swap := patternBuf(6, h)
		rowCopy := patternBuf(6, h)
		FlipVerticallyInPlace(swap)
		flipVerticallyByRowCopy(rowCopy)
		if !pixbuf.Equal(swap, rowCopy) {
			t.Errorf("h=%d: row-copy variant diverges from swap variant", h)
		}
	}
}

func TestFlipInPlace_PaddedView(t *testing.T) {
	// In-place flips over a padded view must leave the padding alone.
	mem := make([]uint8, 3*6)
	for i := range mem {
		mem[i] = 0xEE
	}
	v, err := pixbuf.View(mem, 4, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		copy(v.Row(y), []uint8{1, 2, 3, 4})
	}

	FlipHorizontallyInPlace(v)
	FlipVerticallyInPlace(v)

	for y := 0; y < 3; y++ {
		for x := 4; x < 6 && y*6+x < len(mem); x++ {
			if mem[y*6+x] != 0xEE {
				t.Fatalf("padding byte at row %d col %d overwritten", y, x)
			}
		}
		if got := v.Row(y); got[0] != 4 || got[3] != 1 {
			t.Errorf("row %d = %v after horizontal flip", y, got)
		}
	}
}

func TestFlip_ReusesDestination(t *testing.T) {
	src := patternBuf(5, 5)
	var dst pixbuf.Buffer[uint8]
	Flip(FlipHorizontal, src, &dst)
	row0 := &dst.Row(0)[0]
	Flip(FlipVertical, src, &dst)
	if row0 != &dst.Row(0)[0] {
		t.Error("same-shape destination was reallocated between calls")
	}
}

func TestFlip_EmptyBuffer(t *testing.T) {
	var src, dst pixbuf.Buffer[uint8]
	Flip(FlipBoth, &src, &dst)
	if !dst.Empty() {
		t.Error("flip of empty buffer produced pixels")
	}
}

func TestFlip_InvalidDirectionPanics(t *testing.T) {
	dst := pixbuf.New[uint8](3, 1)
	copy(dst.Row(0), []uint8{9, 8, 7})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("invalid flip direction did not panic")
			}
		}()
		Flip(FlipDirection(42), patternBuf(2, 2), dst)
	}()

	// The panic fires before dst is reshaped or written.
	if dst.Width() != 3 || dst.Height() != 1 {
		t.Errorf("dst reshaped to %dx%d by invalid direction", dst.Width(), dst.Height())
	}
	if got := dst.Row(0); got[0] != 9 || got[1] != 8 || got[2] != 7 {
		t.Errorf("dst content clobbered by invalid direction: %v", got)
	}
}

func TestFlip_MultiChannel(t *testing.T) {
	src := pixbuf.New[pixel.RGB[uint16]](2, 1)
	src.Set(0, 0, pixel.RGB[uint16]{1, 2, 3})
	src.Set(1, 0, pixel.RGB[uint16]{4, 5, 6})

	got := Flipped(FlipHorizontal, src)
	if got.At(0, 0) != (pixel.RGB[uint16]{4, 5, 6}) || got.At(1, 0) != (pixel.RGB[uint16]{1, 2, 3}) {
		t.Errorf("multi-channel flip: %v, %v", got.At(0, 0), got.At(1, 0))
	}
}
