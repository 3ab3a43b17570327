package field

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GF(4) is small enough to pin down exhaustively. γ denotes the generator α_1,
// encoded as 0b10, with γ^2 = γ + 1.
func TestGF4MulTable(t *testing.T) {
	table := [4][4]uint8{
		{0, 0, 0, 0},
		{0, 1, 2, 3},
		{0, 2, 3, 1},
		{0, 3, 1, 2},
	}
	for a := uint8(0); a < 4; a++ {
		for b := uint8(0); b < 4; b++ {
			got := NewBinaryField2b(a).Mul(NewBinaryField2b(b))
			require.Equal(t, BinaryField2b(table[a][b]), got, "%d * %d", a, b)
		}
	}
}

func TestGF4InvertTable(t *testing.T) {
	// 1, γ and γ+1 invert to 1, γ+1 and γ; zero stays zero
	inverse := [4]uint8{0, 1, 3, 2}
	for a := uint8(0); a < 4; a++ {
		require.Equal(t, BinaryField2b(inverse[a]), NewBinaryField2b(a).InvertOrZero())
	}
}

// Golden products in GF(256), the values every compatible implementation of
// the tower must reproduce.
func TestGF256Golden(t *testing.T) {
	inputs := []uint8{0, 1, 2, 3, 122, 123, 124, 125}
	expected := []uint8{0, 123, 157, 230, 85, 46, 154, 225}

	c := NewBinaryField8b(123)
	for i, in := range inputs {
		got := NewBinaryField8b(in).Mul(c)
		require.Equal(t, BinaryField8b(expected[i]), got, "%d * 123", in)
	}

	// 123*123 doubles as a squaring check
	require.Equal(t, BinaryField8b(46), NewBinaryField8b(123).Square())
}

func TestAlphaValues(t *testing.T) {
	assert.Equal(t, BinaryField1b(1), BinaryField1b(0).Alpha())
	assert.Equal(t, BinaryField2b(2), BinaryField2b(0).Alpha())
	assert.Equal(t, BinaryField4b(4), BinaryField4b(0).Alpha())
	assert.Equal(t, BinaryField8b(0x10), BinaryField8b(0).Alpha())
	assert.Equal(t, BinaryField16b(0x100), BinaryField16b(0).Alpha())
	assert.Equal(t, BinaryField32b(0x10000), BinaryField32b(0).Alpha())
	assert.Equal(t, BinaryField64b(0x100000000), BinaryField64b(0).Alpha())
}

func TestNewMasksValue(t *testing.T) {
	assert.Equal(t, BinaryField1b(1), NewBinaryField1b(0xff))
	assert.Equal(t, BinaryField2b(3), NewBinaryField2b(0xff))
	assert.Equal(t, BinaryField4b(0xf), NewBinaryField4b(0xff))
	assert.Equal(t, BinaryField2b(1), BinaryField2b(0).FromUint64(0xfd))
}

// Field axioms checked on the scalar engine at every tower level. The level
// loop runs on masked uint64 values so one set of properties covers all seven
// field widths.
func TestScalarFieldAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	for level := uint(0); level <= 6; level++ {
		level := level
		width := uint(1) << level
		mask := uint64(1)<<width - 1
		if width == 64 {
			mask = ^uint64(0)
		}

		properties.Property(fmt.Sprintf("mul commutes, level %d", level), prop.ForAll(
			func(a, b uint64) bool {
				a, b = a&mask, b&mask
				return scalarMul(a, b, level) == scalarMul(b, a, level)
			},
			gen.UInt64(), gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("mul associates, level %d", level), prop.ForAll(
			func(a, b, c uint64) bool {
				a, b, c = a&mask, b&mask, c&mask
				return scalarMul(scalarMul(a, b, level), c, level) == scalarMul(a, scalarMul(b, c, level), level)
			},
			gen.UInt64(), gen.UInt64(), gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("mul distributes over add, level %d", level), prop.ForAll(
			func(a, b, c uint64) bool {
				a, b, c = a&mask, b&mask, c&mask
				return scalarMul(a, b^c, level) == scalarMul(a, b, level)^scalarMul(a, c, level)
			},
			gen.UInt64(), gen.UInt64(), gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("one is the identity, level %d", level), prop.ForAll(
			func(a uint64) bool {
				a &= mask
				return scalarMul(a, 1, level) == a && scalarMul(a, 0, level) == 0
			},
			gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("inverse, level %d", level), prop.ForAll(
			func(a uint64) bool {
				a &= mask
				inv := scalarInvertOrZero(a, level)
				if a == 0 {
					return inv == 0
				}
				return scalarMul(a, inv, level) == 1
			},
			gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("square matches mul, level %d", level), prop.ForAll(
			func(a uint64) bool {
				a &= mask
				return scalarSquare(a, level) == scalarMul(a, a, level)
			},
			gen.UInt64(),
		))

		properties.Property(fmt.Sprintf("mulAlpha matches mul by alpha, level %d", level), prop.ForAll(
			func(a uint64) bool {
				a &= mask
				return scalarMulAlpha(a, level) == scalarMul(a, scalarAlpha(level), level)
			},
			gen.UInt64(),
		))
	}

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// The typed API must agree with the raw engine and preserve the low-bits
// encoding invariant.
func TestTypedScalars(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("BinaryField8b mul matches engine", prop.ForAll(
		func(a, b uint8) bool {
			return NewBinaryField8b(a).Mul(NewBinaryField8b(b)).Uint64() ==
				scalarMul(uint64(a), uint64(b), 3)
		},
		gen.UInt8(), gen.UInt8(),
	))

	properties.Property("BinaryField16b inverse", prop.ForAll(
		func(a uint16) bool {
			x := NewBinaryField16b(a)
			if x.IsZero() {
				return x.InvertOrZero().IsZero()
			}
			return x.Mul(x.InvertOrZero()) == x.One()
		},
		gen.UInt16(),
	))

	properties.Property("BinaryField64b mulAlpha matches mul by Alpha", prop.ForAll(
		func(a uint64) bool {
			x := NewBinaryField64b(a)
			return x.MulAlpha() == x.Mul(x.Alpha())
		},
		gen.UInt64(),
	))

	properties.Property("BinaryField4b addition is characteristic 2", prop.ForAll(
		func(a uint8) bool {
			x := NewBinaryField4b(a)
			return x.Add(x).IsZero()
		},
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestScalarStringAndBytes(t *testing.T) {
	assert.Equal(t, "0x7b", NewBinaryField8b(0x7b).String())
	assert.Equal(t, "0x007b", NewBinaryField16b(0x7b).String())
	assert.Equal(t, "0x1", NewBinaryField1b(1).String())

	assert.Equal(t, []byte{0x7b}, NewBinaryField8b(0x7b).Bytes())
	assert.Equal(t, []byte{0x34, 0x12}, NewBinaryField16b(0x1234).Bytes())
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, NewBinaryField64b(0x0102030405060708).Bytes())

	var x BinaryField16b
	require.NoError(t, x.SetBytes([]byte{0x34, 0x12}))
	assert.Equal(t, NewBinaryField16b(0x1234), x)
	assert.Error(t, x.SetBytes([]byte{1, 2, 3}))

	// sub-byte elements mask stray high bits like their constructors
	var y BinaryField2b
	require.NoError(t, y.SetBytes([]byte{0xff}))
	assert.Equal(t, NewBinaryField2b(3), y)
}
