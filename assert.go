//go:build !staticvec_noassert

package staticvec

func assert(condition bool, msg string) {
	if !condition {
		panic("staticvec: " + msg)
	}
}
