package pixbuf

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of the buffer's visible pixel bytes, row by
// row. Padding does not participate, so a padded view and a tight buffer
// with the same content produce the same digest. Collision-safe content
// identity for practical buffer counts; not a cryptographic hash.
func (b *Buffer[P]) Digest() uint64 {
	h := xxhash.New()
	for y := 0; y < b.h; y++ {
		_, _ = h.Write(b.RowBytes(y))
	}
	return h.Sum64()
}

// HexDigest returns the digest as a 16-character hex string, the form used
// for content-addressed naming by consumers.
func (b *Buffer[P]) HexDigest() string {
	d := b.Digest()
	var raw [8]byte
	for i := 0; i < 8; i++ {
		raw[i] = byte(d >> (56 - 8*i))
	}
	return hex.EncodeToString(raw[:])
}
