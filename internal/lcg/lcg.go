// Package lcg jumps 64 bit linear congruential generators of the form
// x' = x*mul + add by an arbitrary number of steps.
package lcg

// Advance returns the state reached from state after delta steps of
// x' = x*mul + add. It runs in O(log delta) by repeated squaring of the
// step. When mul%4 == 1 and add is odd the period is exactly 2^64, so a
// negative delta converted to uint64 retreats by that many steps.
func Advance(state, delta, mul, add uint64) uint64 {
	accMul, accAdd := uint64(1), uint64(0)
	for delta != 0 {
		if delta&1 != 0 {
			accMul *= mul
			accAdd = accAdd*mul + add
		}
		add *= mul + 1
		mul *= mul
		delta >>= 1
	}
	return accMul*state + accAdd
}
