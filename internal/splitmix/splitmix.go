// Package splitmix expands one 64 bit seed into a stream of well mixed
// words, for filling generator state that must not start out sparse.
package splitmix

const golden = 0x9E3779B97F4A7C15

// Next advances x by the golden ratio increment and returns the mixed
// result.
func Next(x *uint64) uint64 {
	*x += golden
	z := *x
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB
	return z ^ z>>31
}
