package io

import (
	"bytes"
	"testing"

	"github.com/arthurpaulino/binius/field"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func elementsFrom[S field.TowerField[S]](words []uint64) []S {
	var s S
	els := make([]S, len(words))
	for i, w := range words {
		els[i] = s.FromUint64(w)
	}
	return els
}

func roundTrip[S field.TowerField[S]](words []uint64) bool {
	var s S
	els := elementsFrom[S](words)

	var buf bytes.Buffer
	wn, err := WriteElements(&buf, els)
	if err != nil {
		return false
	}
	width := int64((s.NbBits() + 7) / 8)
	if wn != width*int64(len(els)) || int64(buf.Len()) != wn {
		return false
	}

	decoded := make([]S, len(els))
	rn, err := ReadElements(&buf, decoded)
	if err != nil || rn != wn {
		return false
	}
	for i := range els {
		if decoded[i] != els[i] {
			return false
		}
	}
	return true
}

func bitRoundTrip[S field.TowerField[S]](words []uint64) bool {
	var s S
	els := elementsFrom[S](words)

	var buf bytes.Buffer
	wn, err := WriteElementsBitPacked(&buf, els)
	if err != nil {
		return false
	}
	if want := int64((len(els)*s.NbBits() + 7) / 8); wn != want || int64(buf.Len()) != want {
		return false
	}

	decoded := make([]S, len(els))
	rn, err := ReadElementsBitPacked(&buf, decoded)
	if err != nil || rn != wn {
		return false
	}
	for i := range els {
		if decoded[i] != els[i] {
			return false
		}
	}
	return true
}

func TestElementsRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("read(write(elements)) == elements at every width", prop.ForAll(
		func(words []uint64) bool {
			return roundTrip[field.BinaryField1b](words) &&
				roundTrip[field.BinaryField2b](words) &&
				roundTrip[field.BinaryField4b](words) &&
				roundTrip[field.BinaryField8b](words) &&
				roundTrip[field.BinaryField16b](words) &&
				roundTrip[field.BinaryField32b](words) &&
				roundTrip[field.BinaryField64b](words)
		},
		gen.SliceOf(gen.UInt64()),
	))

	properties.Property("bit packed read(write(elements)) == elements at every width", prop.ForAll(
		func(words []uint64) bool {
			return bitRoundTrip[field.BinaryField1b](words) &&
				bitRoundTrip[field.BinaryField2b](words) &&
				bitRoundTrip[field.BinaryField4b](words) &&
				bitRoundTrip[field.BinaryField8b](words) &&
				bitRoundTrip[field.BinaryField16b](words) &&
				bitRoundTrip[field.BinaryField32b](words) &&
				bitRoundTrip[field.BinaryField64b](words)
		},
		gen.SliceOf(gen.UInt64()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestWriteElementsGolden(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteElements(&buf, []field.BinaryField16b{
		field.NewBinaryField16b(0x12),
		field.NewBinaryField16b(0x3456),
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []byte{0x12, 0x00, 0x56, 0x34}, buf.Bytes())

	buf.Reset()
	n, err = WriteElements(&buf, []field.BinaryField8b{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, []byte{1, 2, 3}, buf.Bytes())
}

func TestWriteElementsBitPackedGolden(t *testing.T) {
	var buf bytes.Buffer

	// four GF(4) elements fill one byte, first element in the top bits
	n, err := WriteElementsBitPacked(&buf, []field.BinaryField2b{1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, []byte{0b01_10_11_00}, buf.Bytes())

	buf.Reset()
	n, err = WriteElementsBitPacked(&buf, []field.BinaryField1b{1, 0, 1, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, []byte{0b10110001}, buf.Bytes())

	// a partial byte is padded with zeros
	buf.Reset()
	n, err = WriteElementsBitPacked(&buf, []field.BinaryField2b{3, 3, 3})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, []byte{0b11_11_11_00}, buf.Bytes())
}

func TestBitPackedDensity(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteElementsBitPacked(&buf, make([]field.BinaryField1b, 12))
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	buf.Reset()
	n, err = WriteElements(&buf, make([]field.BinaryField1b, 12))
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	buf.Reset()
	n, err = WriteElementsBitPacked(&buf, make([]field.BinaryField4b, 3))
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestReadElementsShort(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteElements(&buf, []field.BinaryField32b{1, 2})
	require.NoError(t, err)

	els := make([]field.BinaryField32b, 3)
	_, err = ReadElements(bytes.NewReader(buf.Bytes()), els)
	require.ErrorIs(t, err, ErrNotEnoughBytes)

	truncated := bytes.NewReader(buf.Bytes()[:5])
	_, err = ReadElements(truncated, els[:2])
	require.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestReadElementsBitPackedShort(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteElementsBitPacked(&buf, []field.BinaryField2b{3, 3, 3, 3})
	require.NoError(t, err)

	els := make([]field.BinaryField2b, 5)
	_, err = ReadElementsBitPacked(bytes.NewReader(buf.Bytes()), els)
	require.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestReadElementsEmpty(t *testing.T) {
	n, err := ReadElements(bytes.NewReader(nil), []field.BinaryField8b{})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	n, err = ReadElementsBitPacked(bytes.NewReader(nil), []field.BinaryField8b{})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}
