// Package polynomial evaluates multivariate polynomials over packed binary
// tower fields.
//
// A polynomial is described by an arithmetic circuit: a slice of expression
// nodes in evaluation order, where each node is a constant, a variable or an
// operation on strictly earlier nodes and the last node is the output.
// Unlike a hard-coded CompositionPoly, circuits can be built, inspected and
// serialized at runtime.
package polynomial
