package polynomial

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/arthurpaulino/binius"
	"github.com/arthurpaulino/binius/logger"
	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"
)

// ToBytes serializes the circuit to a byte slice.
// The node list is written as a compact binary section and the metadata as
// CBOR, each preceded by its length in a fixed header, so the two sections
// can be decoded in parallel.
func (c *ArithCircuit[S, P]) ToBytes() ([]byte, error) {
	var nodes []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		nodes, err = c.nodesToBytes()
		return err
	})
	body, err := c.bodyToBytes()
	if err != nil {
		return nil, err
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// header
	h := header{
		nodesLen: uint64(len(nodes)),
		bodyLen:  uint64(len(body)),
	}

	// write header
	buf := h.toBytes()
	buf = append(buf, nodes...)
	buf = append(buf, body...)

	return buf, nil
}

// FromBytes deserializes a circuit produced by ToBytes and returns the
// number of bytes read. The node list is revalidated after decoding, so
// untrusted data cannot produce an out-of-order graph.
func (c *ArithCircuit[S, P]) FromBytes(data []byte) (int, error) {
	if len(data) < headerLen {
		return 0, errors.New("invalid data length")
	}

	// read the header which contains the length of each section
	h := new(header)
	h.fromBytes(data)

	// the section lengths come from the wire; compare in uint64 space so a
	// huge value cannot wrap negative through an int conversion
	rest := uint64(len(data)) - headerLen
	if h.nodesLen > rest || h.bodyLen > rest-h.nodesLen {
		return 0, errors.New("invalid data length")
	}

	var g errgroup.Group
	g.Go(func() error {
		return c.nodesFromBytes(data[headerLen : headerLen+h.nodesLen])
	})

	// CBOR decoding of the circuit metadata
	dm, err := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}.DecMode()
	if err != nil {
		return 0, err
	}
	decoder := dm.NewDecoder(bytes.NewReader(data[headerLen+h.nodesLen : headerLen+h.nodesLen+h.bodyLen]))

	var body circuitBody
	if err := decoder.Decode(&body); err != nil {
		return 0, err
	}
	if err := c.checkSerializationBody(body); err != nil {
		return 0, err
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := c.build(); err != nil {
		return 0, err
	}
	if c.nbVars != body.NbVars || len(c.exprs) != body.NbNodes {
		return 0, errors.New("circuit body does not match the node section")
	}

	return headerLen + int(h.nodesLen) + int(h.bodyLen), nil
}

const headerLen = 2 * 8

type header struct {
	// length in bytes of each section
	nodesLen uint64
	bodyLen  uint64
}

func (h *header) toBytes() []byte {
	buf := make([]byte, 0, headerLen+h.nodesLen+h.bodyLen)

	buf = binary.LittleEndian.AppendUint64(buf, h.nodesLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.bodyLen)

	return buf
}

func (h *header) fromBytes(buf []byte) {
	h.nodesLen = binary.LittleEndian.Uint64(buf[:8])
	h.bodyLen = binary.LittleEndian.Uint64(buf[8:16])
}

// circuitBody is the CBOR-encoded metadata of a serialized circuit.
type circuitBody struct {
	Version    string
	TowerLevel int
	NbVars     int
	NbNodes    int
}

func (c *ArithCircuit[S, P]) bodyToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	encoder := enc.NewEncoder(buf)

	body := circuitBody{
		Version:    binius.Version.String(),
		TowerLevel: c.BinaryTowerLevel(),
		NbVars:     c.nbVars,
		NbNodes:    len(c.exprs),
	}
	if err := encoder.Encode(&body); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// checkSerializationBody parses the version and tower level of a decoded
// body and errors for illegal values.
func (c *ArithCircuit[S, P]) checkSerializationBody(body circuitBody) error {
	binaryVersion := binius.Version
	objectVersion, err := semver.Parse(body.Version)
	if err != nil {
		return fmt.Errorf("when parsing binius version: %w", err)
	}

	if binaryVersion.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", binaryVersion.String()).Str("object", objectVersion.String()).Msg("binius version (binary) mismatch with serialized circuit. there are no guarantees on compatibility")
	}

	if level := c.BinaryTowerLevel(); body.TowerLevel != level {
		return fmt.Errorf("unsupported tower level %d, expected %d", body.TowerLevel, level)
	}
	return nil
}

func (c *ArithCircuit[S, P]) nodesToBytes() ([]byte, error) {
	buf := make([]byte, 0, 8+len(c.exprs)*(1+2*binary.MaxVarintLen64))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(c.exprs)))
	for i, e := range c.exprs {
		buf = append(buf, byte(e.op))
		switch e.op {
		case opConst:
			buf = binary.AppendUvarint(buf, e.c.Uint64())
		case opVar:
			buf = binary.AppendUvarint(buf, uint64(e.x))
		case opAdd, opMul:
			buf = binary.AppendUvarint(buf, uint64(e.x))
			buf = binary.AppendUvarint(buf, uint64(e.y))
		case opPow:
			buf = binary.AppendUvarint(buf, uint64(e.x))
			buf = binary.AppendUvarint(buf, e.exp)
		default:
			return nil, fmt.Errorf("node %d has unknown opcode %d", i, e.op)
		}
	}
	return buf, nil
}

func (c *ArithCircuit[S, P]) nodesFromBytes(in []byte) error {
	if len(in) < 8 {
		return errors.New("invalid node section")
	}
	nbNodes := binary.LittleEndian.Uint64(in[:8])
	in = in[8:]

	// an encoded node is at least an opcode byte and one varint byte
	if nbNodes > uint64(len(in))/2 {
		return errors.New("invalid node section")
	}

	readUvarint := func() (uint64, error) {
		v, n := binary.Uvarint(in[:min(len(in), binary.MaxVarintLen64)])
		if n <= 0 {
			return 0, errors.New("invalid node section")
		}
		in = in[n:]
		return v, nil
	}

	var s S
	exprs := make([]Expr[S], nbNodes)
	for i := range exprs {
		if len(in) == 0 {
			return errors.New("invalid node section")
		}
		e := Expr[S]{op: exprOp(in[0])}
		in = in[1:]
		switch e.op {
		case opConst:
			v, err := readUvarint()
			if err != nil {
				return err
			}
			e.c = s.FromUint64(v)
		case opVar:
			v, err := readUvarint()
			if err != nil {
				return err
			}
			e.x = int(v)
		case opAdd, opMul:
			x, err := readUvarint()
			if err != nil {
				return err
			}
			y, err := readUvarint()
			if err != nil {
				return err
			}
			e.x, e.y = int(x), int(y)
		case opPow:
			x, err := readUvarint()
			if err != nil {
				return err
			}
			exp, err := readUvarint()
			if err != nil {
				return err
			}
			e.x, e.exp = int(x), exp
		default:
			return fmt.Errorf("node %d has unknown opcode %d", i, e.op)
		}
		exprs[i] = e
	}

	c.exprs = exprs
	return nil
}
