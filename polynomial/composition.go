package polynomial

import "github.com/arthurpaulino/binius/field"

// CompositionPoly is a multivariate polynomial evaluated lane-wise over a
// packed field type. Implementations must be safe for concurrent use.
type CompositionPoly[P any] interface {
	// Evaluate computes the polynomial at one packed query of NbVars words.
	Evaluate(query []P) (P, error)
	// Degree returns the total degree.
	Degree() int
	// NbVars returns the number of query variables.
	NbVars() int
	// BinaryTowerLevel returns the tower level the coefficients live at.
	BinaryTowerLevel() int
}

var (
	_ CompositionPoly[field.PackedBinaryField8x8b]  = (*ArithCircuit[field.BinaryField8b, field.PackedBinaryField8x8b])(nil)
	_ CompositionPoly[field.PackedBinaryField1x64b] = (*ArithCircuit[field.BinaryField64b, field.PackedBinaryField1x64b])(nil)
)
