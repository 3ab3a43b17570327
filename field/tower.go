package field

// TowerField is the constraint satisfied by every scalar binary tower field
// type in this package. The zero value of an implementing type is the field's
// additive identity, so metadata methods like TowerLevel and One are callable
// on a zero value.
//
// FromUint64 is a constructor in method form: it ignores its receiver and
// builds an element from the low NbBits bits of v. This keeps the constraint
// free of pointer receivers.
type TowerField[S any] interface {
	comparable
	// TowerLevel returns L such that the field is GF(2^(2^L)).
	TowerLevel() int
	// NbBits returns the element width 2^L in bits.
	NbBits() int
	One() S
	FromUint64(v uint64) S
	Uint64() uint64
	Add(S) S
	Mul(S) S
	Square() S
	// MulAlpha multiplies by the field's distinguished generator α_L.
	MulAlpha() S
	// InvertOrZero returns the multiplicative inverse, or zero for zero.
	InvertOrZero() S
	IsZero() bool
	// Bytes returns the element in little-endian order, NbBits/8 bytes long
	// and a single byte for the sub-byte fields.
	Bytes() []byte
	String() string
}

// PackedField is the constraint satisfied by the packed tower field types. P
// is the packed type itself and S its scalar lane type. All lane positions
// count from the least significant bit.
type PackedField[P, S any] interface {
	comparable
	// Len returns the number of lanes.
	Len() int
	// TowerLevel returns the tower level of each lane.
	TowerLevel() int
	Zero() P
	One() P
	// Broadcast fills every lane with s.
	Broadcast(s S) P
	Add(P) P
	Mul(P) P
	Square() P
	MulAlpha() P
	InvertOrZero() P
	// Get returns lane i, panicking if i is out of range.
	Get(i int) S
	// Bytes returns the backing word in little-endian order.
	Bytes() []byte
	String() string
}

// Both constraints embed comparable, so they cannot appear in a plain
// var _ Iface = impl conformance assertion. Instantiating these next to each
// concrete type checks it against its constraint at compile time instead.

func assertTowerField[S TowerField[S]]() {}

func assertPackedField[P PackedField[P, S], S TowerField[S]]() {}
