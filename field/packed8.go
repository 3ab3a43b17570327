package field

import (
	"fmt"
	"strings"
)

// uint8-backed packed fields. Each type fixes a lane width at compile time
// and binds the cheapest multiplication strategy for it: single-bit lanes use
// plain bit operations, multi-lane types use the bit-sliced tower engine, and
// the single-lane type falls back to scalar arithmetic since there is nothing
// to slice across.

var (
	_ = assertPackedField[PackedBinaryField8x1b, BinaryField1b]
	_ = assertPackedField[PackedBinaryField4x2b, BinaryField2b]
	_ = assertPackedField[PackedBinaryField2x4b, BinaryField4b]
	_ = assertPackedField[PackedBinaryField1x8b, BinaryField8b]
)

// PackedBinaryField8x1b packs 8 lanes of BinaryField1b into a uint8, lane 0 in
// the least significant bit.
type PackedBinaryField8x1b uint8

func (PackedBinaryField8x1b) Len() int        { return 8 }
func (PackedBinaryField8x1b) TowerLevel() int { return 0 }

func (PackedBinaryField8x1b) Zero() PackedBinaryField8x1b { return 0 }
func (PackedBinaryField8x1b) One() PackedBinaryField8x1b  { return 0xff }

func (PackedBinaryField8x1b) Broadcast(s BinaryField1b) PackedBinaryField8x1b {
	return PackedBinaryField8x1b(broadcastWord(uint8(s), 0))
}

func (a PackedBinaryField8x1b) Add(b PackedBinaryField8x1b) PackedBinaryField8x1b { return a ^ b }

// Mul is a lanewise AND: GF(2) multiplication.
func (a PackedBinaryField8x1b) Mul(b PackedBinaryField8x1b) PackedBinaryField8x1b { return a & b }

// Square, MulAlpha and InvertOrZero are all the identity over GF(2) lanes.
func (a PackedBinaryField8x1b) Square() PackedBinaryField8x1b       { return a }
func (a PackedBinaryField8x1b) MulAlpha() PackedBinaryField8x1b     { return a }
func (a PackedBinaryField8x1b) InvertOrZero() PackedBinaryField8x1b { return a }

func (a PackedBinaryField8x1b) Get(i int) BinaryField1b {
	if i < 0 || i >= 8 {
		panic("lane index out of range")
	}
	return BinaryField1b(a >> (uint(i)) & 1)
}

func (p *PackedBinaryField8x1b) Set(i int, s BinaryField1b) {
	if i < 0 || i >= 8 {
		panic("lane index out of range")
	}
	*p = *p&^(1<<uint(i)) | PackedBinaryField8x1b(s)<<uint(i)
}

// SetScalars fills lanes 0, 1, ... with the given scalars.
func (p *PackedBinaryField8x1b) SetScalars(scalars ...BinaryField1b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

// Bytes returns the backing word in little-endian order.
func (a PackedBinaryField8x1b) Bytes() []byte { return []byte{byte(a)} }

// SetBytes sets the backing word from a little-endian byte slice.
func (p *PackedBinaryField8x1b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = PackedBinaryField8x1b(b[0])
	return nil
}

// DirectExtension reinterprets the word as 4 lanes of BinaryField2b. The bit
// pattern is unchanged.
func (a PackedBinaryField8x1b) DirectExtension() PackedBinaryField4x2b {
	return PackedBinaryField4x2b(a)
}

func (a PackedBinaryField8x1b) String() string {
	lanes := make([]string, 8)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField4x2b packs 4 lanes of BinaryField2b into a uint8.
type PackedBinaryField4x2b uint8

func (PackedBinaryField4x2b) Len() int        { return 4 }
func (PackedBinaryField4x2b) TowerLevel() int { return 1 }

func (PackedBinaryField4x2b) Zero() PackedBinaryField4x2b { return 0 }
func (PackedBinaryField4x2b) One() PackedBinaryField4x2b  { return 0x55 }

func (PackedBinaryField4x2b) Broadcast(s BinaryField2b) PackedBinaryField4x2b {
	return PackedBinaryField4x2b(broadcastWord(uint8(s), 1))
}

func (a PackedBinaryField4x2b) Add(b PackedBinaryField4x2b) PackedBinaryField4x2b { return a ^ b }

func (a PackedBinaryField4x2b) Mul(b PackedBinaryField4x2b) PackedBinaryField4x2b {
	return PackedBinaryField4x2b(packedMul(uint8(a), uint8(b), 1))
}

func (a PackedBinaryField4x2b) Square() PackedBinaryField4x2b {
	return PackedBinaryField4x2b(packedSquare(uint8(a), 1))
}

func (a PackedBinaryField4x2b) MulAlpha() PackedBinaryField4x2b {
	return PackedBinaryField4x2b(packedMulAlpha(uint8(a), 1))
}

func (a PackedBinaryField4x2b) InvertOrZero() PackedBinaryField4x2b {
	return PackedBinaryField4x2b(packedInvertOrZero(uint8(a), 1))
}

func (a PackedBinaryField4x2b) Get(i int) BinaryField2b {
	if i < 0 || i >= 4 {
		panic("lane index out of range")
	}
	return BinaryField2b(a >> (2 * uint(i)) & 3)
}

func (p *PackedBinaryField4x2b) Set(i int, s BinaryField2b) {
	if i < 0 || i >= 4 {
		panic("lane index out of range")
	}
	shift := 2 * uint(i)
	*p = *p&^(3<<shift) | PackedBinaryField4x2b(s)<<shift
}

func (p *PackedBinaryField4x2b) SetScalars(scalars ...BinaryField2b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField4x2b) Bytes() []byte { return []byte{byte(a)} }

func (p *PackedBinaryField4x2b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = PackedBinaryField4x2b(b[0])
	return nil
}

func (a PackedBinaryField4x2b) DirectSubfield() PackedBinaryField8x1b {
	return PackedBinaryField8x1b(a)
}

func (a PackedBinaryField4x2b) DirectExtension() PackedBinaryField2x4b {
	return PackedBinaryField2x4b(a)
}

func (a PackedBinaryField4x2b) String() string {
	lanes := make([]string, 4)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField2x4b packs 2 lanes of BinaryField4b into a uint8.
type PackedBinaryField2x4b uint8

func (PackedBinaryField2x4b) Len() int        { return 2 }
func (PackedBinaryField2x4b) TowerLevel() int { return 2 }

func (PackedBinaryField2x4b) Zero() PackedBinaryField2x4b { return 0 }
func (PackedBinaryField2x4b) One() PackedBinaryField2x4b  { return 0x11 }

func (PackedBinaryField2x4b) Broadcast(s BinaryField4b) PackedBinaryField2x4b {
	return PackedBinaryField2x4b(broadcastWord(uint8(s), 2))
}

func (a PackedBinaryField2x4b) Add(b PackedBinaryField2x4b) PackedBinaryField2x4b { return a ^ b }

func (a PackedBinaryField2x4b) Mul(b PackedBinaryField2x4b) PackedBinaryField2x4b {
	return PackedBinaryField2x4b(packedMul(uint8(a), uint8(b), 2))
}

func (a PackedBinaryField2x4b) Square() PackedBinaryField2x4b {
	return PackedBinaryField2x4b(packedSquare(uint8(a), 2))
}

func (a PackedBinaryField2x4b) MulAlpha() PackedBinaryField2x4b {
	return PackedBinaryField2x4b(packedMulAlpha(uint8(a), 2))
}

func (a PackedBinaryField2x4b) InvertOrZero() PackedBinaryField2x4b {
	return PackedBinaryField2x4b(packedInvertOrZero(uint8(a), 2))
}

func (a PackedBinaryField2x4b) Get(i int) BinaryField4b {
	if i < 0 || i >= 2 {
		panic("lane index out of range")
	}
	return BinaryField4b(a >> (4 * uint(i)) & 0xf)
}

func (p *PackedBinaryField2x4b) Set(i int, s BinaryField4b) {
	if i < 0 || i >= 2 {
		panic("lane index out of range")
	}
	shift := 4 * uint(i)
	*p = *p&^(0xf<<shift) | PackedBinaryField2x4b(s)<<shift
}

func (p *PackedBinaryField2x4b) SetScalars(scalars ...BinaryField4b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField2x4b) Bytes() []byte { return []byte{byte(a)} }

func (p *PackedBinaryField2x4b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = PackedBinaryField2x4b(b[0])
	return nil
}

func (a PackedBinaryField2x4b) DirectSubfield() PackedBinaryField4x2b {
	return PackedBinaryField4x2b(a)
}

func (a PackedBinaryField2x4b) DirectExtension() PackedBinaryField1x8b {
	return PackedBinaryField1x8b(a)
}

func (a PackedBinaryField2x4b) String() string {
	lanes := make([]string, 2)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField1x8b holds a single BinaryField8b lane in a uint8. With one
// lane there is nothing to bit-slice, so operations delegate to the scalar
// engine.
type PackedBinaryField1x8b uint8

func (PackedBinaryField1x8b) Len() int        { return 1 }
func (PackedBinaryField1x8b) TowerLevel() int { return 3 }

func (PackedBinaryField1x8b) Zero() PackedBinaryField1x8b { return 0 }
func (PackedBinaryField1x8b) One() PackedBinaryField1x8b  { return 1 }

func (PackedBinaryField1x8b) Broadcast(s BinaryField8b) PackedBinaryField1x8b {
	return PackedBinaryField1x8b(s)
}

func (a PackedBinaryField1x8b) Add(b PackedBinaryField1x8b) PackedBinaryField1x8b { return a ^ b }

func (a PackedBinaryField1x8b) Mul(b PackedBinaryField1x8b) PackedBinaryField1x8b {
	return PackedBinaryField1x8b(scalarMul(uint64(a), uint64(b), 3))
}

func (a PackedBinaryField1x8b) Square() PackedBinaryField1x8b {
	return PackedBinaryField1x8b(scalarSquare(uint64(a), 3))
}

func (a PackedBinaryField1x8b) MulAlpha() PackedBinaryField1x8b {
	return PackedBinaryField1x8b(scalarMulAlpha(uint64(a), 3))
}

func (a PackedBinaryField1x8b) InvertOrZero() PackedBinaryField1x8b {
	return PackedBinaryField1x8b(scalarInvertOrZero(uint64(a), 3))
}

func (a PackedBinaryField1x8b) Get(i int) BinaryField8b {
	if i != 0 {
		panic("lane index out of range")
	}
	return BinaryField8b(a)
}

func (p *PackedBinaryField1x8b) Set(i int, s BinaryField8b) {
	if i != 0 {
		panic("lane index out of range")
	}
	*p = PackedBinaryField1x8b(s)
}

func (p *PackedBinaryField1x8b) SetScalars(scalars ...BinaryField8b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField1x8b) Bytes() []byte { return []byte{byte(a)} }

func (p *PackedBinaryField1x8b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = PackedBinaryField1x8b(b[0])
	return nil
}

func (a PackedBinaryField1x8b) DirectSubfield() PackedBinaryField2x4b {
	return PackedBinaryField2x4b(a)
}

func (a PackedBinaryField1x8b) String() string {
	return "[" + a.Get(0).String() + "]"
}
