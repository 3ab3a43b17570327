// Package field implements arithmetic over the binary tower fields
// GF(2^(2^L)) used by the binius proof system, in both scalar and packed
// (bit-sliced) form.
//
// The tower is built by repeated quadratic extensions following Fan and Paar:
// level 0 is GF(2), and an element of level L is lo + hi·X_L with lo and hi at
// level L-1, reduced by X_L^2 = X_L·α_{L-1} + 1 where α_{L-1} is the
// distinguished generator of the previous level. Scalar elements are the
// BinaryField*b types; packed elements hold many field lanes in a single
// machine word and operate on all of them at once using the interleave trick
// from Hacker's Delight, section 7-3.
//
// Lanes are ordered from the least significant bit: lane i of a packed element
// with 2^L-bit lanes occupies bits [i·2^L, (i+1)·2^L). Reinterpreting a packed
// word as twice as many lanes of the direct subfield is a free type
// conversion, exposed as the DirectSubfield and DirectExtension methods.
//
// See "On Efficient Inversion in Tower Fields of Characteristic Two" (Fan,
// Paar, 1997) and https://eprint.iacr.org/2023/1784 for background.
package field
