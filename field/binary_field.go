package field

import (
	"encoding/binary"
	"fmt"
)

// The scalar binary tower field types. Each level-L type stores its element in
// the low 2^L bits of the smallest unsigned integer that fits it; the New*
// constructors mask their argument so the unused high bits stay zero, and
// every operation preserves that invariant.

// BinaryField1b is an element of GF(2), tower level 0.
type BinaryField1b uint8

// BinaryField2b is an element of GF(4), tower level 1.
type BinaryField2b uint8

// BinaryField4b is an element of GF(16), tower level 2.
type BinaryField4b uint8

// BinaryField8b is an element of GF(256), tower level 3.
type BinaryField8b uint8

// BinaryField16b is an element of GF(2^16), tower level 4.
type BinaryField16b uint16

// BinaryField32b is an element of GF(2^32), tower level 5.
type BinaryField32b uint32

// BinaryField64b is an element of GF(2^64), tower level 6.
type BinaryField64b uint64

var (
	_ = assertTowerField[BinaryField1b]
	_ = assertTowerField[BinaryField2b]
	_ = assertTowerField[BinaryField4b]
	_ = assertTowerField[BinaryField8b]
	_ = assertTowerField[BinaryField16b]
	_ = assertTowerField[BinaryField32b]
	_ = assertTowerField[BinaryField64b]
)

func NewBinaryField1b(v uint8) BinaryField1b { return BinaryField1b(v & 1) }
func NewBinaryField2b(v uint8) BinaryField2b { return BinaryField2b(v & 3) }
func NewBinaryField4b(v uint8) BinaryField4b { return BinaryField4b(v & 0xf) }
func NewBinaryField8b(v uint8) BinaryField8b { return BinaryField8b(v) }
func NewBinaryField16b(v uint16) BinaryField16b { return BinaryField16b(v) }
func NewBinaryField32b(v uint32) BinaryField32b { return BinaryField32b(v) }
func NewBinaryField64b(v uint64) BinaryField64b { return BinaryField64b(v) }

// GF(2): multiplication is AND, squaring and inversion are the identity, and
// the generator α_0 is 1.

func (BinaryField1b) TowerLevel() int { return 0 }
func (BinaryField1b) NbBits() int { return 1 }

func (BinaryField1b) One() BinaryField1b { return 1 }
func (BinaryField1b) Alpha() BinaryField1b { return 1 }

func (BinaryField1b) FromUint64(v uint64) BinaryField1b { return BinaryField1b(v & 1) }

func (a BinaryField1b) Uint64() uint64 { return uint64(a) }

func (a BinaryField1b) Add(b BinaryField1b) BinaryField1b { return a ^ b }
func (a BinaryField1b) Mul(b BinaryField1b) BinaryField1b { return a & b }

func (a BinaryField1b) Square() BinaryField1b { return a }
func (a BinaryField1b) MulAlpha() BinaryField1b { return a }
func (a BinaryField1b) InvertOrZero() BinaryField1b { return a }

func (a BinaryField1b) IsZero() bool { return a == 0 }

func (a BinaryField1b) Bytes() []byte { return []byte{byte(a)} }

// SetBytes sets the element from a little-endian byte slice, masking unused
// high bits.
func (p *BinaryField1b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = BinaryField1b(b[0] & 1)
	return nil
}

func (a BinaryField1b) String() string { return fmt.Sprintf("0x%x", uint8(a)) }

func (BinaryField2b) TowerLevel() int { return 1 }
func (BinaryField2b) NbBits() int { return 2 }

func (BinaryField2b) One() BinaryField2b { return 1 }
func (BinaryField2b) Alpha() BinaryField2b { return BinaryField2b(scalarAlpha(1)) }

func (BinaryField2b) FromUint64(v uint64) BinaryField2b { return BinaryField2b(v & 3) }

func (a BinaryField2b) Uint64() uint64 { return uint64(a) }

func (a BinaryField2b) Add(b BinaryField2b) BinaryField2b { return a ^ b }

func (a BinaryField2b) Mul(b BinaryField2b) BinaryField2b {
	return BinaryField2b(scalarMul(uint64(a), uint64(b), 1))
}

func (a BinaryField2b) Square() BinaryField2b {
	return BinaryField2b(scalarSquare(uint64(a), 1))
}

func (a BinaryField2b) MulAlpha() BinaryField2b {
	return BinaryField2b(scalarMulAlpha(uint64(a), 1))
}

func (a BinaryField2b) InvertOrZero() BinaryField2b {
	return BinaryField2b(scalarInvertOrZero(uint64(a), 1))
}

func (a BinaryField2b) IsZero() bool { return a == 0 }

func (a BinaryField2b) Bytes() []byte { return []byte{byte(a)} }

func (p *BinaryField2b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = BinaryField2b(b[0] & 3)
	return nil
}

func (a BinaryField2b) String() string { return fmt.Sprintf("0x%x", uint8(a)) }

func (BinaryField4b) TowerLevel() int { return 2 }
func (BinaryField4b) NbBits() int { return 4 }

func (BinaryField4b) One() BinaryField4b { return 1 }
func (BinaryField4b) Alpha() BinaryField4b { return BinaryField4b(scalarAlpha(2)) }

func (BinaryField4b) FromUint64(v uint64) BinaryField4b { return BinaryField4b(v & 0xf) }

func (a BinaryField4b) Uint64() uint64 { return uint64(a) }

func (a BinaryField4b) Add(b BinaryField4b) BinaryField4b { return a ^ b }

func (a BinaryField4b) Mul(b BinaryField4b) BinaryField4b {
	return BinaryField4b(scalarMul(uint64(a), uint64(b), 2))
}

func (a BinaryField4b) Square() BinaryField4b {
	return BinaryField4b(scalarSquare(uint64(a), 2))
}

func (a BinaryField4b) MulAlpha() BinaryField4b {
	return BinaryField4b(scalarMulAlpha(uint64(a), 2))
}

func (a BinaryField4b) InvertOrZero() BinaryField4b {
	return BinaryField4b(scalarInvertOrZero(uint64(a), 2))
}

func (a BinaryField4b) IsZero() bool { return a == 0 }

func (a BinaryField4b) Bytes() []byte { return []byte{byte(a)} }

func (p *BinaryField4b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = BinaryField4b(b[0] & 0xf)
	return nil
}

func (a BinaryField4b) String() string { return fmt.Sprintf("0x%x", uint8(a)) }

func (BinaryField8b) TowerLevel() int { return 3 }
func (BinaryField8b) NbBits() int { return 8 }

func (BinaryField8b) One() BinaryField8b { return 1 }
func (BinaryField8b) Alpha() BinaryField8b { return BinaryField8b(scalarAlpha(3)) }

func (BinaryField8b) FromUint64(v uint64) BinaryField8b { return BinaryField8b(v) }

func (a BinaryField8b) Uint64() uint64 { return uint64(a) }

func (a BinaryField8b) Add(b BinaryField8b) BinaryField8b { return a ^ b }

func (a BinaryField8b) Mul(b BinaryField8b) BinaryField8b {
	return BinaryField8b(scalarMul(uint64(a), uint64(b), 3))
}

func (a BinaryField8b) Square() BinaryField8b {
	return BinaryField8b(scalarSquare(uint64(a), 3))
}

func (a BinaryField8b) MulAlpha() BinaryField8b {
	return BinaryField8b(scalarMulAlpha(uint64(a), 3))
}

func (a BinaryField8b) InvertOrZero() BinaryField8b {
	return BinaryField8b(scalarInvertOrZero(uint64(a), 3))
}

func (a BinaryField8b) IsZero() bool { return a == 0 }

func (a BinaryField8b) Bytes() []byte { return []byte{byte(a)} }

func (p *BinaryField8b) SetBytes(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid length %d, expected 1", len(b))
	}
	*p = BinaryField8b(b[0])
	return nil
}

func (a BinaryField8b) String() string { return fmt.Sprintf("0x%02x", uint8(a)) }

func (BinaryField16b) TowerLevel() int { return 4 }
func (BinaryField16b) NbBits() int { return 16 }

func (BinaryField16b) One() BinaryField16b { return 1 }
func (BinaryField16b) Alpha() BinaryField16b { return BinaryField16b(scalarAlpha(4)) }

func (BinaryField16b) FromUint64(v uint64) BinaryField16b { return BinaryField16b(v) }

func (a BinaryField16b) Uint64() uint64 { return uint64(a) }

func (a BinaryField16b) Add(b BinaryField16b) BinaryField16b { return a ^ b }

func (a BinaryField16b) Mul(b BinaryField16b) BinaryField16b {
	return BinaryField16b(scalarMul(uint64(a), uint64(b), 4))
}

func (a BinaryField16b) Square() BinaryField16b {
	return BinaryField16b(scalarSquare(uint64(a), 4))
}

func (a BinaryField16b) MulAlpha() BinaryField16b {
	return BinaryField16b(scalarMulAlpha(uint64(a), 4))
}

func (a BinaryField16b) InvertOrZero() BinaryField16b {
	return BinaryField16b(scalarInvertOrZero(uint64(a), 4))
}

func (a BinaryField16b) IsZero() bool { return a == 0 }

func (a BinaryField16b) Bytes() []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(a))
	return b[:]
}

func (p *BinaryField16b) SetBytes(b []byte) error {
	if len(b) != 2 {
		return fmt.Errorf("invalid length %d, expected 2", len(b))
	}
	*p = BinaryField16b(binary.LittleEndian.Uint16(b))
	return nil
}

func (a BinaryField16b) String() string { return fmt.Sprintf("0x%04x", uint16(a)) }

func (BinaryField32b) TowerLevel() int { return 5 }
func (BinaryField32b) NbBits() int { return 32 }

func (BinaryField32b) One() BinaryField32b { return 1 }
func (BinaryField32b) Alpha() BinaryField32b { return BinaryField32b(scalarAlpha(5)) }

func (BinaryField32b) FromUint64(v uint64) BinaryField32b { return BinaryField32b(v) }

func (a BinaryField32b) Uint64() uint64 { return uint64(a) }

func (a BinaryField32b) Add(b BinaryField32b) BinaryField32b { return a ^ b }

func (a BinaryField32b) Mul(b BinaryField32b) BinaryField32b {
	return BinaryField32b(scalarMul(uint64(a), uint64(b), 5))
}

func (a BinaryField32b) Square() BinaryField32b {
	return BinaryField32b(scalarSquare(uint64(a), 5))
}

func (a BinaryField32b) MulAlpha() BinaryField32b {
	return BinaryField32b(scalarMulAlpha(uint64(a), 5))
}

func (a BinaryField32b) InvertOrZero() BinaryField32b {
	return BinaryField32b(scalarInvertOrZero(uint64(a), 5))
}

func (a BinaryField32b) IsZero() bool { return a == 0 }

func (a BinaryField32b) Bytes() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(a))
	return b[:]
}

func (p *BinaryField32b) SetBytes(b []byte) error {
	if len(b) != 4 {
		return fmt.Errorf("invalid length %d, expected 4", len(b))
	}
	*p = BinaryField32b(binary.LittleEndian.Uint32(b))
	return nil
}

func (a BinaryField32b) String() string { return fmt.Sprintf("0x%08x", uint32(a)) }

func (BinaryField64b) TowerLevel() int { return 6 }
func (BinaryField64b) NbBits() int { return 64 }

func (BinaryField64b) One() BinaryField64b { return 1 }
func (BinaryField64b) Alpha() BinaryField64b { return BinaryField64b(scalarAlpha(6)) }

func (BinaryField64b) FromUint64(v uint64) BinaryField64b { return BinaryField64b(v) }

func (a BinaryField64b) Uint64() uint64 { return uint64(a) }

func (a BinaryField64b) Add(b BinaryField64b) BinaryField64b { return a ^ b }

func (a BinaryField64b) Mul(b BinaryField64b) BinaryField64b {
	return BinaryField64b(scalarMul(uint64(a), uint64(b), 6))
}

func (a BinaryField64b) Square() BinaryField64b {
	return BinaryField64b(scalarSquare(uint64(a), 6))
}

func (a BinaryField64b) MulAlpha() BinaryField64b {
	return BinaryField64b(scalarMulAlpha(uint64(a), 6))
}

func (a BinaryField64b) InvertOrZero() BinaryField64b {
	return BinaryField64b(scalarInvertOrZero(uint64(a), 6))
}

func (a BinaryField64b) IsZero() bool { return a == 0 }

func (a BinaryField64b) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

func (p *BinaryField64b) SetBytes(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid length %d, expected 8", len(b))
	}
	*p = BinaryField64b(binary.LittleEndian.Uint64(b))
	return nil
}

func (a BinaryField64b) String() string { return fmt.Sprintf("0x%016x", uint64(a)) }
