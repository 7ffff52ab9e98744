package longperiod

import (
	"encoding/binary"

	"github.com/zeebo/errs"
)

// Error is the class of state decoding errors.
var Error = errs.Class("longperiod")

// EncodedSize is the length of the form MarshalBinary produces: the state
// words big endian, followed by one byte holding the rotating index.
const EncodedSize = Words*8 + 1

// MarshalBinary encodes the full state, so a generator can be persisted and
// later resumed with UnmarshalBinary.
func (t *T) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	for i, w := range t.state {
		binary.BigEndian.PutUint64(buf[i*8:], w)
	}
	buf[Words*8] = byte(t.choice)
	return buf, nil
}

// UnmarshalBinary replaces the state with one produced by MarshalBinary. An
// all-zero state is remapped as SetState does.
func (t *T) UnmarshalBinary(buf []byte) error {
	if len(buf) != EncodedSize {
		return Error.New("invalid state length: %d != %d", len(buf), EncodedSize)
	}
	if choice := buf[Words*8]; choice >= Words {
		return Error.New("invalid index: %d", choice)
	}

	var state [Words]uint64
	for i := range state {
		state[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	t.SetState(state, int(buf[Words*8]))
	return nil
}
