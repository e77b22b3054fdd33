//go:build !pixcoredebug

package transform

import "github.com/AnyUserName/pixcore/pixbuf"

// assertDistinct is a no-op in release builds: aliased src/dst is a
// documented contract violation, not a handled error.
func assertDistinct[P any](src, dst *pixbuf.Buffer[P]) {
	_, _ = src, dst
}
