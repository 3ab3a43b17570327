package io

import (
	"errors"
	"fmt"
	"io"

	"github.com/arthurpaulino/binius/field"
	"github.com/icza/bitio"
)

// WriteElementsBitPacked writes els at their exact bit width, 2^L bits per
// element, so packed GF(2), GF(4) and GF(16) columns take no padding. The
// final byte is zero-padded. Bits fill each byte most significant first,
// the order of the underlying bitio stream, which is not the lane layout of
// the packed word types.
func WriteElementsBitPacked[S field.TowerField[S]](w io.Writer, els []S) (int64, error) {
	cw := &countWriter{w: w}
	bw := bitio.NewWriter(cw)
	var s S
	nbBits := uint8(s.NbBits())
	for _, e := range els {
		if err := bw.WriteBits(e.Uint64(), nbBits); err != nil {
			return cw.n, err
		}
	}
	if err := bw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadElementsBitPacked reads len(els) elements written by
// WriteElementsBitPacked and returns the number of bytes consumed, the
// trailing padding byte included.
func ReadElementsBitPacked[S field.TowerField[S]](r io.Reader, els []S) (int64, error) {
	cr := &countReader{r: r}
	br := bitio.NewReader(cr)
	var s S
	nbBits := uint8(s.NbBits())
	for i := range els {
		v, err := br.ReadBits(nbBits)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = fmt.Errorf("%w: decoded %d of %d elements", ErrNotEnoughBytes, i, len(els))
			}
			return cr.n, err
		}
		els[i] = s.FromUint64(v)
	}
	return cr.n, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countReader struct {
	r io.Reader
	n int64
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
