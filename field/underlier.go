package field

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Underlier is the set of machine words a packed field can be backed by. It
// restricts constraints.Unsigned to the fixed-width types so that lane counts
// never depend on the platform word size.
type Underlier interface {
	constraints.Unsigned
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// nbBits returns the width of the underlier in bits.
func nbBits[U Underlier]() uint {
	return uint(bits.OnesCount64(uint64(^U(0))))
}

// broadcastWord replicates the value held in the low 2^level bits of v across
// the whole word.
func broadcastWord[U Underlier](v U, level uint) U {
	for w := uint(1) << level; w < nbBits[U](); w <<= 1 {
		v |= v << w
	}
	return v
}
