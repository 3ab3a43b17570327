// Package binius implements arithmetic over the binary tower fields
// GF(2^(2^L)), for L from 0 to 6, with several field elements packed into a
// single machine word and operated on at once.
//
// The scalar and packed element types live in the field package. The
// polynomial package evaluates arithmetic circuits lane-wise over packed
// elements, and the io package streams elements to and from byte and bit
// streams.
package binius

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
