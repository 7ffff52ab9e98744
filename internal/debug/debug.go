//go:build !release
// +build !release

// Package debug holds invariant checks that are compiled out of release
// builds.
package debug

// Assert panics with info if fn reports false. Under the release build tag
// it does nothing and fn is never called.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}
