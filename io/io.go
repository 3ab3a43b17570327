// Package io streams binary tower field elements to and from byte and bit
// streams.
//
// WriteElements and ReadElements move slices of scalar elements through an
// io.Writer or io.Reader at their byte-aligned width, little-endian. The
// BitPacked variants stream the sub-byte fields at their exact bit width
// instead. Whole packed words serialize through their own Bytes and SetBytes
// methods in the field package.
package io

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/arthurpaulino/binius/field"
)

// ErrNotEnoughBytes is returned when a stream ends before all requested
// elements could be decoded.
var ErrNotEnoughBytes = errors.New("not enough bytes to decode all elements")

// WriteElements writes els to w in little-endian order, each element padded
// to its byte width (NbBits+7)/8. It returns the number of bytes written.
func WriteElements[S field.TowerField[S]](w io.Writer, els []S) (int64, error) {
	var s S
	width := (s.NbBits() + 7) / 8
	buf := make([]byte, 0, len(els)*width)
	for _, e := range els {
		buf = append(buf, e.Bytes()...)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadElements reads len(els) elements from r, the inverse of WriteElements.
// It returns the number of bytes read; a stream ending mid-slice returns
// ErrNotEnoughBytes.
func ReadElements[S field.TowerField[S]](r io.Reader, els []S) (int64, error) {
	var s S
	width := (s.NbBits() + 7) / 8
	buf := make([]byte, len(els)*width)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: read %d of %d bytes", ErrNotEnoughBytes, n, len(buf))
		}
		return int64(n), err
	}

	for i := range els {
		chunk := buf[i*width:]
		var v uint64
		switch width {
		case 1:
			v = uint64(chunk[0])
		case 2:
			v = uint64(binary.LittleEndian.Uint16(chunk))
		case 4:
			v = uint64(binary.LittleEndian.Uint32(chunk))
		default:
			v = binary.LittleEndian.Uint64(chunk)
		}
		els[i] = s.FromUint64(v)
	}
	return int64(n), nil
}
