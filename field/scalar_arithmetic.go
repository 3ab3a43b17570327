package field

// Scalar tower arithmetic on a single element held in the low 2^level bits of
// a uint64. The packed engine in packed_arithmetic.go computes the same
// recurrences across many lanes at once; the two implementations cross-check
// each other in tests.

// scalarAlpha returns the encoding of the level-L generator α_L as a level-L
// element: α_0 = 1 and α_L = X_L otherwise.
func scalarAlpha(level uint) uint64 {
	if level == 0 {
		return 1
	}
	return 1 << (1 << (level - 1))
}

// scalarMul multiplies two tower elements with one Karatsuba cross term per
// level. level must be at most 6.
func scalarMul(a, b uint64, level uint) uint64 {
	if level == 0 {
		return a & b & 1
	}
	k := level - 1
	half := uint(1) << k
	mask := uint64(1)<<half - 1

	aLo, aHi := a&mask, a>>half&mask
	bLo, bHi := b&mask, b>>half&mask

	z0 := scalarMul(aLo, bLo, k)
	z2 := scalarMul(aHi, bHi, k)
	z1 := scalarMul(aLo^aHi, bLo^bHi, k) ^ z0 ^ z2

	return (z0 ^ z2) | (z1^scalarMulAlpha(z2, k))<<half
}

// scalarSquare squares a tower element: (lo + hi·X)^2 = (lo^2 + hi^2) + hi^2·α·X.
func scalarSquare(a uint64, level uint) uint64 {
	if level == 0 {
		return a & 1
	}
	k := level - 1
	half := uint(1) << k
	mask := uint64(1)<<half - 1

	loSq := scalarSquare(a&mask, k)
	hiSq := scalarSquare(a>>half&mask, k)

	return (loSq ^ hiSq) | scalarMulAlpha(hiSq, k)<<half
}

// scalarMulAlpha multiplies a tower element by its level's generator in linear
// time: (lo + hi·X)·X = hi + (lo + hi·α)·X.
func scalarMulAlpha(a uint64, level uint) uint64 {
	if level == 0 {
		return a & 1
	}
	k := level - 1
	half := uint(1) << k
	mask := uint64(1)<<half - 1

	lo, hi := a&mask, a>>half&mask
	return hi | (lo^scalarMulAlpha(hi, k))<<half
}

// scalarInvertOrZero inverts a nonzero tower element and maps zero to zero,
// descending through the subfield norm δ = lo·(lo + hi·α) + hi^2.
func scalarInvertOrZero(a uint64, level uint) uint64 {
	if level == 0 {
		return a & 1
	}
	k := level - 1
	half := uint(1) << k
	mask := uint64(1)<<half - 1

	lo, hi := a&mask, a>>half&mask
	intermediate := lo ^ scalarMulAlpha(hi, k)
	delta := scalarMul(lo, intermediate, k) ^ scalarSquare(hi, k)
	deltaInv := scalarInvertOrZero(delta, k)

	return scalarMul(deltaInv, intermediate, k) | scalarMul(deltaInv, hi, k)<<half
}
