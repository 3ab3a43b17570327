package polynomial

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/arthurpaulino/binius/debug"
	"github.com/arthurpaulino/binius/field"
	"github.com/arthurpaulino/binius/logger"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// ErrIncorrectQuerySize is returned by Evaluate when the query length does
// not match the circuit's NbVars.
var ErrIncorrectQuerySize = errors.New("incorrect query size")

type exprOp uint8

const (
	opConst exprOp = iota
	opVar
	opAdd
	opMul
	opPow
)

// Expr is one node of an arithmetic circuit. Operand indices refer to
// earlier nodes of the same circuit, so a node slice always describes a
// directed acyclic graph in evaluation order.
type Expr[S field.TowerField[S]] struct {
	op   exprOp
	x, y int
	exp  uint64
	c    S
}

// Const builds a constant node.
func Const[S field.TowerField[S]](value S) Expr[S] { return Expr[S]{op: opConst, c: value} }

// Var builds a node reading the query variable at index.
func Var[S field.TowerField[S]](index int) Expr[S] { return Expr[S]{op: opVar, x: index} }

// Add builds a node adding nodes x and y.
func Add[S field.TowerField[S]](x, y int) Expr[S] { return Expr[S]{op: opAdd, x: x, y: y} }

// Mul builds a node multiplying nodes x and y.
func Mul[S field.TowerField[S]](x, y int) Expr[S] { return Expr[S]{op: opMul, x: x, y: y} }

// Pow builds a node raising node x to a fixed exponent.
func Pow[S field.TowerField[S]](x int, exp uint64) Expr[S] {
	return Expr[S]{op: opPow, x: x, exp: exp}
}

// ArithCircuit evaluates the polynomial described by a node slice, lane-wise
// over the packed field P with scalar constants in S. The zero value is not
// usable; circuits are built with NewArithCircuit or decoded with FromBytes.
type ArithCircuit[S field.TowerField[S], P field.PackedField[P, S]] struct {
	// exprs is in evaluation order; the last entry is the output node.
	exprs  []Expr[S]
	nbVars int
	degree int

	// scratch recycles []P evaluation buffers of len(exprs) so Evaluate
	// allocates nothing in steady state and stays safe for concurrent use.
	scratch sync.Pool
}

// NewArithCircuit validates exprs as a circuit in evaluation order and
// returns its evaluator. Operands must reference strictly earlier nodes and
// variable indices must stay below the node count.
func NewArithCircuit[S field.TowerField[S], P field.PackedField[P, S]](exprs []Expr[S]) (*ArithCircuit[S, P], error) {
	c := &ArithCircuit[S, P]{exprs: exprs}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// build checks the node ordering, computes the degree and the variable
// count and arms the scratch pool. It runs again after FromBytes, where the
// nodes come from untrusted data.
func (c *ArithCircuit[S, P]) build() error {
	if len(c.exprs) == 0 {
		return errors.New("circuit has no nodes")
	}

	var vars bitset.BitSet
	degrees := make([]int, len(c.exprs))
	c.nbVars = 0
	for i, e := range c.exprs {
		switch e.op {
		case opConst:
			degrees[i] = 0
		case opVar:
			// variable indices stay below the node count; a circuit reading
			// variable j carries at least j+1 nodes
			if e.x < 0 || e.x >= len(c.exprs) {
				return fmt.Errorf("node %d variable index %d out of range", i, e.x)
			}
			vars.Set(uint(e.x))
			if e.x+1 > c.nbVars {
				c.nbVars = e.x + 1
			}
			degrees[i] = 1
		case opAdd, opMul:
			if e.x < 0 || e.x >= i || e.y < 0 || e.y >= i {
				return fmt.Errorf("node %d operands (%d, %d) must reference strictly earlier nodes", i, e.x, e.y)
			}
			if e.op == opAdd {
				degrees[i] = max(degrees[e.x], degrees[e.y])
			} else {
				degrees[i] = degrees[e.x] + degrees[e.y]
			}
		case opPow:
			if e.x < 0 || e.x >= i {
				return fmt.Errorf("node %d operand %d must reference a strictly earlier node", i, e.x)
			}
			degrees[i] = degrees[e.x] * int(e.exp)
		default:
			return fmt.Errorf("node %d has unknown opcode %d", i, e.op)
		}
	}
	c.degree = degrees[len(degrees)-1]

	c.scratch.New = func() any {
		s := make([]P, len(c.exprs))
		return &s
	}

	log := logger.Logger()
	if unused := c.nbVars - int(vars.Count()); unused > 0 {
		log.Debug().Int("nbUnused", unused).Msg("circuit never reads some of its variables")
	}
	reach := bitset.New(uint(len(c.exprs)))
	reach.Set(uint(len(c.exprs) - 1))
	for i := len(c.exprs) - 1; i >= 0; i-- {
		if !reach.Test(uint(i)) {
			continue
		}
		switch e := c.exprs[i]; e.op {
		case opAdd, opMul:
			reach.Set(uint(e.x))
			reach.Set(uint(e.y))
		case opPow:
			reach.Set(uint(e.x))
		}
	}
	if dead := len(c.exprs) - int(reach.Count()); dead > 0 {
		log.Debug().Int("nbDead", dead).Msg("circuit has nodes unreachable from the output node")
	}
	log.Debug().Int("nbNodes", len(c.exprs)).Int("nbVars", c.nbVars).Int("degree", c.degree).Msg("arithmetic circuit built")

	return nil
}

// Evaluate computes the circuit on one packed query: lane i of the result is
// the polynomial evaluated at lane i of every query word.
func (c *ArithCircuit[S, P]) Evaluate(query []P) (P, error) {
	var zero P
	if len(query) != c.nbVars {
		return zero, fmt.Errorf("%w: expected %d variables, got %d", ErrIncorrectQuerySize, c.nbVars, len(query))
	}

	buf := c.scratch.Get().(*[]P)
	defer c.scratch.Put(buf)
	evals := *buf
	debug.Assert(len(evals) == len(c.exprs), "scratch buffer size mismatch")

	for i, e := range c.exprs {
		switch e.op {
		case opConst:
			evals[i] = zero.Broadcast(e.c)
		case opVar:
			evals[i] = query[e.x]
		case opAdd:
			evals[i] = evals[e.x].Add(evals[e.y])
		case opMul:
			evals[i] = evals[e.x].Mul(evals[e.y])
		case opPow:
			evals[i] = pow(evals[e.x], e.exp)
		}
	}
	return evals[len(evals)-1], nil
}

// EvaluateBatch evaluates the circuit on every query in parallel and returns
// the results in query order.
func (c *ArithCircuit[S, P]) EvaluateBatch(queries [][]P) ([]P, error) {
	results := make([]P, len(queries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range queries {
		g.Go(func() error {
			var err error
			results[i], err = c.Evaluate(queries[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Degree returns the total degree of the output node.
func (c *ArithCircuit[S, P]) Degree() int { return c.degree }

// NbVars returns the number of query variables the circuit reads.
func (c *ArithCircuit[S, P]) NbVars() int { return c.nbVars }

// NbNodes returns the number of nodes, output included.
func (c *ArithCircuit[S, P]) NbNodes() int { return len(c.exprs) }

// BinaryTowerLevel returns the tower level of the scalar constants.
func (c *ArithCircuit[S, P]) BinaryTowerLevel() int {
	var s S
	return s.TowerLevel()
}

// pow raises value to exp by square and multiply.
func pow[P interface {
	One() P
	Mul(P) P
	Square() P
}](value P, exp uint64) P {
	var p P
	res := p.One()
	for i := 63; i >= 0; i-- {
		res = res.Square()
		if (exp>>i)&1 == 1 {
			res = res.Mul(value)
		}
	}
	return res
}
