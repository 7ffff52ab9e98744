package pcg

import (
	"encoding/binary"

	"github.com/zeebo/errs"
)

// Error is the class of state decoding errors.
var Error = errs.Class("pcg")

// EncodedSize is the length of the form MarshalBinary produces: the LCG
// state then the increment, both big endian.
const EncodedSize = 16

// MarshalBinary encodes the state together with the stream, which State
// alone leaves out.
func (t *T) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	binary.BigEndian.PutUint64(buf[0:8], t.state)
	binary.BigEndian.PutUint64(buf[8:16], t.inc)
	return buf, nil
}

// UnmarshalBinary replaces the state and stream with ones produced by
// MarshalBinary.
func (t *T) UnmarshalBinary(buf []byte) error {
	if len(buf) != EncodedSize {
		return Error.New("invalid state length: %d != %d", len(buf), EncodedSize)
	}
	inc := binary.BigEndian.Uint64(buf[8:16])
	if inc&1 == 0 {
		return Error.New("increment must be odd: %#x", inc)
	}
	t.state, t.inc = binary.BigEndian.Uint64(buf[0:8]), inc
	return nil
}
