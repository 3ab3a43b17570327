package polynomial

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arthurpaulino/binius"
	"github.com/arthurpaulino/binius/field"
	"github.com/arthurpaulino/binius/logger"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func encodeBody(t *testing.T, body circuitBody) []byte {
	t.Helper()
	enc, err := cbor.CoreDetEncOptions().EncMode()
	require.NoError(t, err)
	data, err := enc.Marshal(&body)
	require.NoError(t, err)
	return data
}

func assemble(nodes, body []byte) []byte {
	h := header{nodesLen: uint64(len(nodes)), bodyLen: uint64(len(body))}
	data := h.toBytes()
	data = append(data, nodes...)
	return append(data, body...)
}

func TestCircuitSerializationRoundTrip(t *testing.T) {
	circuit := mixedCircuit(t)

	data, err := circuit.ToBytes()
	require.NoError(t, err)

	decoded := new(ArithCircuit[f8, p8])
	n, err := decoded.FromBytes(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	if diff := cmp.Diff(circuit.exprs, decoded.exprs, cmp.AllowUnexported(Expr[f8]{})); diff != "" {
		t.Fatalf("decoded nodes mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, circuit.Degree(), decoded.Degree())
	require.Equal(t, circuit.NbVars(), decoded.NbVars())

	query := []p8{
		packed8(0, 1, 2, 3, 4, 5, 6, 7),
		packed8(100, 101, 102, 103, 104, 105, 106, 107),
	}
	want, err := circuit.Evaluate(query)
	require.NoError(t, err)
	got, err := decoded.Evaluate(query)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// trailing bytes are left for the caller
	n, err = new(ArithCircuit[f8, p8]).FromBytes(append(data, 0xde, 0xad))
	require.NoError(t, err)
	require.Equal(t, len(data), n)
}

func TestCircuitSerialization64b(t *testing.T) {
	type (
		f64 = field.BinaryField64b
		q64 = field.PackedBinaryField1x64b
	)
	circuit, err := NewArithCircuit[f64, q64]([]Expr[f64]{
		Const(field.NewBinaryField64b(0xdeadbeefcafef00d)),
		Var[f64](0),
		Mul[f64](0, 1),
	})
	require.NoError(t, err)

	data, err := circuit.ToBytes()
	require.NoError(t, err)

	decoded := new(ArithCircuit[f64, q64])
	_, err = decoded.FromBytes(data)
	require.NoError(t, err)

	in := q64(0x0123456789abcdef)
	want, err := circuit.Evaluate([]q64{in})
	require.NoError(t, err)
	got, err := decoded.Evaluate([]q64{in})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCircuitSerializationTruncated(t *testing.T) {
	circuit := mixedCircuit(t)
	data, err := circuit.ToBytes()
	require.NoError(t, err)

	for _, n := range []int{0, headerLen - 1, headerLen + 3, len(data) - 1} {
		decoded := new(ArithCircuit[f8, p8])
		_, err := decoded.FromBytes(data[:n])
		require.Error(t, err, "length %d", n)
	}
}

func TestCircuitSerializationOversizedHeader(t *testing.T) {
	circuit := mixedCircuit(t)
	data, err := circuit.ToBytes()
	require.NoError(t, err)

	// a section length near 2^63 wraps negative through an int conversion;
	// the length check must still fail closed instead of panicking later
	for _, tc := range []struct {
		name   string
		offset int
	}{
		{"nodes length", 0},
		{"body length", 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mangled := bytes.Clone(data)
			binary.LittleEndian.PutUint64(mangled[tc.offset:], 1<<63)
			_, err := new(ArithCircuit[f8, p8]).FromBytes(mangled)
			require.ErrorContains(t, err, "invalid data length")
		})
	}
}

func TestCircuitSerializationHugeVariableIndex(t *testing.T) {
	// one Var node reading index 1<<40
	nodes := binary.LittleEndian.AppendUint64(nil, 1)
	nodes = append(nodes, byte(opVar))
	nodes = binary.AppendUvarint(nodes, 1<<40)

	body := encodeBody(t, circuitBody{Version: binius.Version.String(), TowerLevel: 3, NbVars: 1, NbNodes: 1})
	_, err := new(ArithCircuit[f8, p8]).FromBytes(assemble(nodes, body))
	require.ErrorContains(t, err, "variable index")
}

func TestCircuitSerializationBadOpcode(t *testing.T) {
	circuit := mixedCircuit(t)
	data, err := circuit.ToBytes()
	require.NoError(t, err)

	// the first opcode sits right after the header and the node count
	data[headerLen+8] = 0xff
	_, err = new(ArithCircuit[f8, p8]).FromBytes(data)
	require.ErrorContains(t, err, "unknown opcode")
}

func TestCircuitSerializationBadVersion(t *testing.T) {
	circuit := mixedCircuit(t)
	nodes, err := circuit.nodesToBytes()
	require.NoError(t, err)

	body := encodeBody(t, circuitBody{Version: "not-a-version", TowerLevel: 3, NbVars: 2, NbNodes: 6})
	_, err = new(ArithCircuit[f8, p8]).FromBytes(assemble(nodes, body))
	require.ErrorContains(t, err, "version")
}

func TestCircuitSerializationVersionWarning(t *testing.T) {
	var logs bytes.Buffer
	logger.Set(zerolog.New(&logs))
	defer logger.Disable()

	circuit := mixedCircuit(t)
	nodes, err := circuit.nodesToBytes()
	require.NoError(t, err)

	body := encodeBody(t, circuitBody{Version: "99.99.99", TowerLevel: 3, NbVars: 2, NbNodes: 6})
	decoded := new(ArithCircuit[f8, p8])
	_, err = decoded.FromBytes(assemble(nodes, body))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "no guarantees on compatibility")
}

func TestCircuitSerializationWrongTowerLevel(t *testing.T) {
	circuit := mixedCircuit(t)
	nodes, err := circuit.nodesToBytes()
	require.NoError(t, err)

	body := encodeBody(t, circuitBody{Version: binius.Version.String(), TowerLevel: 5, NbVars: 2, NbNodes: 6})
	_, err = new(ArithCircuit[f8, p8]).FromBytes(assemble(nodes, body))
	require.ErrorContains(t, err, "tower level")
}

func TestCircuitSerializationBodyMismatch(t *testing.T) {
	circuit := mixedCircuit(t)
	nodes, err := circuit.nodesToBytes()
	require.NoError(t, err)

	body := encodeBody(t, circuitBody{Version: binius.Version.String(), TowerLevel: 3, NbVars: 2, NbNodes: 5})
	_, err = new(ArithCircuit[f8, p8]).FromBytes(assemble(nodes, body))
	require.ErrorContains(t, err, "node section")
}
