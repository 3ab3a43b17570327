package field

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// uint64-backed packed fields, covering every lane width of the tower from
// GF(2) up to GF(2^64). Strategy binding follows packed8.go: bit operations
// for single-bit lanes, the bit-sliced engine for multi-lane types, scalar
// arithmetic for the single-lane type.

var (
	_ = assertPackedField[PackedBinaryField64x1b, BinaryField1b]
	_ = assertPackedField[PackedBinaryField32x2b, BinaryField2b]
	_ = assertPackedField[PackedBinaryField16x4b, BinaryField4b]
	_ = assertPackedField[PackedBinaryField8x8b, BinaryField8b]
	_ = assertPackedField[PackedBinaryField4x16b, BinaryField16b]
	_ = assertPackedField[PackedBinaryField2x32b, BinaryField32b]
	_ = assertPackedField[PackedBinaryField1x64b, BinaryField64b]
)

// PackedBinaryField64x1b packs 64 lanes of BinaryField1b into a uint64.
type PackedBinaryField64x1b uint64

func (PackedBinaryField64x1b) Len() int        { return 64 }
func (PackedBinaryField64x1b) TowerLevel() int { return 0 }

func (PackedBinaryField64x1b) Zero() PackedBinaryField64x1b { return 0 }
func (PackedBinaryField64x1b) One() PackedBinaryField64x1b  { return 0xffffffffffffffff }

func (PackedBinaryField64x1b) Broadcast(s BinaryField1b) PackedBinaryField64x1b {
	return PackedBinaryField64x1b(broadcastWord(uint64(s), 0))
}

func (a PackedBinaryField64x1b) Add(b PackedBinaryField64x1b) PackedBinaryField64x1b { return a ^ b }
func (a PackedBinaryField64x1b) Mul(b PackedBinaryField64x1b) PackedBinaryField64x1b { return a & b }

func (a PackedBinaryField64x1b) Square() PackedBinaryField64x1b       { return a }
func (a PackedBinaryField64x1b) MulAlpha() PackedBinaryField64x1b     { return a }
func (a PackedBinaryField64x1b) InvertOrZero() PackedBinaryField64x1b { return a }

func (a PackedBinaryField64x1b) Get(i int) BinaryField1b {
	if i < 0 || i >= 64 {
		panic("lane index out of range")
	}
	return BinaryField1b(a >> uint(i) & 1)
}

func (p *PackedBinaryField64x1b) Set(i int, s BinaryField1b) {
	if i < 0 || i >= 64 {
		panic("lane index out of range")
	}
	*p = *p&^(1<<uint(i)) | PackedBinaryField64x1b(s)<<uint(i)
}

func (p *PackedBinaryField64x1b) SetScalars(scalars ...BinaryField1b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField64x1b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField64x1b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField64x1b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField64x1b) DirectExtension() PackedBinaryField32x2b {
	return PackedBinaryField32x2b(a)
}

func (a PackedBinaryField64x1b) String() string {
	lanes := make([]string, 64)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField32x2b packs 32 lanes of BinaryField2b into a uint64.
type PackedBinaryField32x2b uint64

func (PackedBinaryField32x2b) Len() int        { return 32 }
func (PackedBinaryField32x2b) TowerLevel() int { return 1 }

func (PackedBinaryField32x2b) Zero() PackedBinaryField32x2b { return 0 }
func (PackedBinaryField32x2b) One() PackedBinaryField32x2b  { return 0x5555555555555555 }

func (PackedBinaryField32x2b) Broadcast(s BinaryField2b) PackedBinaryField32x2b {
	return PackedBinaryField32x2b(broadcastWord(uint64(s), 1))
}

func (a PackedBinaryField32x2b) Add(b PackedBinaryField32x2b) PackedBinaryField32x2b { return a ^ b }

func (a PackedBinaryField32x2b) Mul(b PackedBinaryField32x2b) PackedBinaryField32x2b {
	return PackedBinaryField32x2b(packedMul(uint64(a), uint64(b), 1))
}

func (a PackedBinaryField32x2b) Square() PackedBinaryField32x2b {
	return PackedBinaryField32x2b(packedSquare(uint64(a), 1))
}

func (a PackedBinaryField32x2b) MulAlpha() PackedBinaryField32x2b {
	return PackedBinaryField32x2b(packedMulAlpha(uint64(a), 1))
}

func (a PackedBinaryField32x2b) InvertOrZero() PackedBinaryField32x2b {
	return PackedBinaryField32x2b(packedInvertOrZero(uint64(a), 1))
}

func (a PackedBinaryField32x2b) Get(i int) BinaryField2b {
	if i < 0 || i >= 32 {
		panic("lane index out of range")
	}
	return BinaryField2b(a >> (2 * uint(i)) & 3)
}

func (p *PackedBinaryField32x2b) Set(i int, s BinaryField2b) {
	if i < 0 || i >= 32 {
		panic("lane index out of range")
	}
	shift := 2 * uint(i)
	*p = *p&^(3<<shift) | PackedBinaryField32x2b(s)<<shift
}

func (p *PackedBinaryField32x2b) SetScalars(scalars ...BinaryField2b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField32x2b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField32x2b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField32x2b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField32x2b) DirectSubfield() PackedBinaryField64x1b {
	return PackedBinaryField64x1b(a)
}

func (a PackedBinaryField32x2b) DirectExtension() PackedBinaryField16x4b {
	return PackedBinaryField16x4b(a)
}

func (a PackedBinaryField32x2b) String() string {
	lanes := make([]string, 32)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField16x4b packs 16 lanes of BinaryField4b into a uint64.
type PackedBinaryField16x4b uint64

func (PackedBinaryField16x4b) Len() int        { return 16 }
func (PackedBinaryField16x4b) TowerLevel() int { return 2 }

func (PackedBinaryField16x4b) Zero() PackedBinaryField16x4b { return 0 }
func (PackedBinaryField16x4b) One() PackedBinaryField16x4b  { return 0x1111111111111111 }

func (PackedBinaryField16x4b) Broadcast(s BinaryField4b) PackedBinaryField16x4b {
	return PackedBinaryField16x4b(broadcastWord(uint64(s), 2))
}

func (a PackedBinaryField16x4b) Add(b PackedBinaryField16x4b) PackedBinaryField16x4b { return a ^ b }

func (a PackedBinaryField16x4b) Mul(b PackedBinaryField16x4b) PackedBinaryField16x4b {
	return PackedBinaryField16x4b(packedMul(uint64(a), uint64(b), 2))
}

func (a PackedBinaryField16x4b) Square() PackedBinaryField16x4b {
	return PackedBinaryField16x4b(packedSquare(uint64(a), 2))
}

func (a PackedBinaryField16x4b) MulAlpha() PackedBinaryField16x4b {
	return PackedBinaryField16x4b(packedMulAlpha(uint64(a), 2))
}

func (a PackedBinaryField16x4b) InvertOrZero() PackedBinaryField16x4b {
	return PackedBinaryField16x4b(packedInvertOrZero(uint64(a), 2))
}

func (a PackedBinaryField16x4b) Get(i int) BinaryField4b {
	if i < 0 || i >= 16 {
		panic("lane index out of range")
	}
	return BinaryField4b(a >> (4 * uint(i)) & 0xf)
}

func (p *PackedBinaryField16x4b) Set(i int, s BinaryField4b) {
	if i < 0 || i >= 16 {
		panic("lane index out of range")
	}
	shift := 4 * uint(i)
	*p = *p&^(0xf<<shift) | PackedBinaryField16x4b(s)<<shift
}

func (p *PackedBinaryField16x4b) SetScalars(scalars ...BinaryField4b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField16x4b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField16x4b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField16x4b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField16x4b) DirectSubfield() PackedBinaryField32x2b {
	return PackedBinaryField32x2b(a)
}

func (a PackedBinaryField16x4b) DirectExtension() PackedBinaryField8x8b {
	return PackedBinaryField8x8b(a)
}

func (a PackedBinaryField16x4b) String() string {
	lanes := make([]string, 16)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField8x8b packs 8 lanes of BinaryField8b into a uint64.
type PackedBinaryField8x8b uint64

func (PackedBinaryField8x8b) Len() int        { return 8 }
func (PackedBinaryField8x8b) TowerLevel() int { return 3 }

func (PackedBinaryField8x8b) Zero() PackedBinaryField8x8b { return 0 }
func (PackedBinaryField8x8b) One() PackedBinaryField8x8b  { return 0x0101010101010101 }

func (PackedBinaryField8x8b) Broadcast(s BinaryField8b) PackedBinaryField8x8b {
	return PackedBinaryField8x8b(broadcastWord(uint64(s), 3))
}

func (a PackedBinaryField8x8b) Add(b PackedBinaryField8x8b) PackedBinaryField8x8b { return a ^ b }

func (a PackedBinaryField8x8b) Mul(b PackedBinaryField8x8b) PackedBinaryField8x8b {
	return PackedBinaryField8x8b(packedMul(uint64(a), uint64(b), 3))
}

func (a PackedBinaryField8x8b) Square() PackedBinaryField8x8b {
	return PackedBinaryField8x8b(packedSquare(uint64(a), 3))
}

func (a PackedBinaryField8x8b) MulAlpha() PackedBinaryField8x8b {
	return PackedBinaryField8x8b(packedMulAlpha(uint64(a), 3))
}

func (a PackedBinaryField8x8b) InvertOrZero() PackedBinaryField8x8b {
	return PackedBinaryField8x8b(packedInvertOrZero(uint64(a), 3))
}

func (a PackedBinaryField8x8b) Get(i int) BinaryField8b {
	if i < 0 || i >= 8 {
		panic("lane index out of range")
	}
	return BinaryField8b(a >> (8 * uint(i)))
}

func (p *PackedBinaryField8x8b) Set(i int, s BinaryField8b) {
	if i < 0 || i >= 8 {
		panic("lane index out of range")
	}
	shift := 8 * uint(i)
	*p = *p&^(0xff<<shift) | PackedBinaryField8x8b(s)<<shift
}

func (p *PackedBinaryField8x8b) SetScalars(scalars ...BinaryField8b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField8x8b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField8x8b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField8x8b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField8x8b) DirectSubfield() PackedBinaryField16x4b {
	return PackedBinaryField16x4b(a)
}

func (a PackedBinaryField8x8b) DirectExtension() PackedBinaryField4x16b {
	return PackedBinaryField4x16b(a)
}

func (a PackedBinaryField8x8b) String() string {
	lanes := make([]string, 8)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField4x16b packs 4 lanes of BinaryField16b into a uint64.
type PackedBinaryField4x16b uint64

func (PackedBinaryField4x16b) Len() int        { return 4 }
func (PackedBinaryField4x16b) TowerLevel() int { return 4 }

func (PackedBinaryField4x16b) Zero() PackedBinaryField4x16b { return 0 }
func (PackedBinaryField4x16b) One() PackedBinaryField4x16b  { return 0x0001000100010001 }

func (PackedBinaryField4x16b) Broadcast(s BinaryField16b) PackedBinaryField4x16b {
	return PackedBinaryField4x16b(broadcastWord(uint64(s), 4))
}

func (a PackedBinaryField4x16b) Add(b PackedBinaryField4x16b) PackedBinaryField4x16b { return a ^ b }

func (a PackedBinaryField4x16b) Mul(b PackedBinaryField4x16b) PackedBinaryField4x16b {
	return PackedBinaryField4x16b(packedMul(uint64(a), uint64(b), 4))
}

func (a PackedBinaryField4x16b) Square() PackedBinaryField4x16b {
	return PackedBinaryField4x16b(packedSquare(uint64(a), 4))
}

func (a PackedBinaryField4x16b) MulAlpha() PackedBinaryField4x16b {
	return PackedBinaryField4x16b(packedMulAlpha(uint64(a), 4))
}

func (a PackedBinaryField4x16b) InvertOrZero() PackedBinaryField4x16b {
	return PackedBinaryField4x16b(packedInvertOrZero(uint64(a), 4))
}

func (a PackedBinaryField4x16b) Get(i int) BinaryField16b {
	if i < 0 || i >= 4 {
		panic("lane index out of range")
	}
	return BinaryField16b(a >> (16 * uint(i)))
}

func (p *PackedBinaryField4x16b) Set(i int, s BinaryField16b) {
	if i < 0 || i >= 4 {
		panic("lane index out of range")
	}
	shift := 16 * uint(i)
	*p = *p&^(0xffff<<shift) | PackedBinaryField4x16b(s)<<shift
}

func (p *PackedBinaryField4x16b) SetScalars(scalars ...BinaryField16b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField4x16b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField4x16b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField4x16b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField4x16b) DirectSubfield() PackedBinaryField8x8b {
	return PackedBinaryField8x8b(a)
}

func (a PackedBinaryField4x16b) DirectExtension() PackedBinaryField2x32b {
	return PackedBinaryField2x32b(a)
}

func (a PackedBinaryField4x16b) String() string {
	lanes := make([]string, 4)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField2x32b packs 2 lanes of BinaryField32b into a uint64.
type PackedBinaryField2x32b uint64

func (PackedBinaryField2x32b) Len() int        { return 2 }
func (PackedBinaryField2x32b) TowerLevel() int { return 5 }

func (PackedBinaryField2x32b) Zero() PackedBinaryField2x32b { return 0 }
func (PackedBinaryField2x32b) One() PackedBinaryField2x32b  { return 0x0000000100000001 }

func (PackedBinaryField2x32b) Broadcast(s BinaryField32b) PackedBinaryField2x32b {
	return PackedBinaryField2x32b(broadcastWord(uint64(s), 5))
}

func (a PackedBinaryField2x32b) Add(b PackedBinaryField2x32b) PackedBinaryField2x32b { return a ^ b }

func (a PackedBinaryField2x32b) Mul(b PackedBinaryField2x32b) PackedBinaryField2x32b {
	return PackedBinaryField2x32b(packedMul(uint64(a), uint64(b), 5))
}

func (a PackedBinaryField2x32b) Square() PackedBinaryField2x32b {
	return PackedBinaryField2x32b(packedSquare(uint64(a), 5))
}

func (a PackedBinaryField2x32b) MulAlpha() PackedBinaryField2x32b {
	return PackedBinaryField2x32b(packedMulAlpha(uint64(a), 5))
}

func (a PackedBinaryField2x32b) InvertOrZero() PackedBinaryField2x32b {
	return PackedBinaryField2x32b(packedInvertOrZero(uint64(a), 5))
}

func (a PackedBinaryField2x32b) Get(i int) BinaryField32b {
	if i < 0 || i >= 2 {
		panic("lane index out of range")
	}
	return BinaryField32b(a >> (32 * uint(i)))
}

func (p *PackedBinaryField2x32b) Set(i int, s BinaryField32b) {
	if i < 0 || i >= 2 {
		panic("lane index out of range")
	}
	shift := 32 * uint(i)
	*p = *p&^(0xffffffff<<shift) | PackedBinaryField2x32b(s)<<shift
}

func (p *PackedBinaryField2x32b) SetScalars(scalars ...BinaryField32b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField2x32b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField2x32b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField2x32b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField2x32b) DirectSubfield() PackedBinaryField4x16b {
	return PackedBinaryField4x16b(a)
}

func (a PackedBinaryField2x32b) DirectExtension() PackedBinaryField1x64b {
	return PackedBinaryField1x64b(a)
}

func (a PackedBinaryField2x32b) String() string {
	lanes := make([]string, 2)
	for i := range lanes {
		lanes[i] = a.Get(i).String()
	}
	return "[" + strings.Join(lanes, " ") + "]"
}

// PackedBinaryField1x64b holds a single BinaryField64b lane in a uint64 and
// delegates to the scalar engine.
type PackedBinaryField1x64b uint64

func (PackedBinaryField1x64b) Len() int        { return 1 }
func (PackedBinaryField1x64b) TowerLevel() int { return 6 }

func (PackedBinaryField1x64b) Zero() PackedBinaryField1x64b { return 0 }
func (PackedBinaryField1x64b) One() PackedBinaryField1x64b  { return 1 }

func (PackedBinaryField1x64b) Broadcast(s BinaryField64b) PackedBinaryField1x64b {
	return PackedBinaryField1x64b(s)
}

func (a PackedBinaryField1x64b) Add(b PackedBinaryField1x64b) PackedBinaryField1x64b { return a ^ b }

func (a PackedBinaryField1x64b) Mul(b PackedBinaryField1x64b) PackedBinaryField1x64b {
	return PackedBinaryField1x64b(scalarMul(uint64(a), uint64(b), 6))
}

func (a PackedBinaryField1x64b) Square() PackedBinaryField1x64b {
	return PackedBinaryField1x64b(scalarSquare(uint64(a), 6))
}

func (a PackedBinaryField1x64b) MulAlpha() PackedBinaryField1x64b {
	return PackedBinaryField1x64b(scalarMulAlpha(uint64(a), 6))
}

func (a PackedBinaryField1x64b) InvertOrZero() PackedBinaryField1x64b {
	return PackedBinaryField1x64b(scalarInvertOrZero(uint64(a), 6))
}

func (a PackedBinaryField1x64b) Get(i int) BinaryField64b {
	if i != 0 {
		panic("lane index out of range")
	}
	return BinaryField64b(a)
}

func (p *PackedBinaryField1x64b) Set(i int, s BinaryField64b) {
	if i != 0 {
		panic("lane index out of range")
	}
	*p = PackedBinaryField1x64b(s)
}

func (p *PackedBinaryField1x64b) SetScalars(scalars ...BinaryField64b) {
	for i, s := range scalars {
		p.Set(i, s)
	}
}

func (a PackedBinaryField1x64b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *PackedBinaryField1x64b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = PackedBinaryField1x64b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a PackedBinaryField1x64b) DirectSubfield() PackedBinaryField2x32b {
	return PackedBinaryField2x32b(a)
}

func (a PackedBinaryField1x64b) String() string {
	return "[" + a.Get(0).String() + "]"
}
