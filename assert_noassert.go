//go:build staticvec_noassert

package staticvec

func assert(bool, string) {}
