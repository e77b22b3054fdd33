//go:build pixcoredebug

package transform

import "github.com/AnyUserName/pixcore/pixbuf"

// assertDistinct enforces the no-aliasing precondition of the two-buffer
// transforms. Only debug builds (-tags pixcoredebug) carry the check.
func assertDistinct[P any](src, dst *pixbuf.Buffer[P]) {
	if src == dst || pixbuf.SharesBacking(src, dst) {
		panic("transform: src and dst share backing memory")
	}
}
