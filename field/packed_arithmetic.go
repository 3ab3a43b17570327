package field

import "github.com/arthurpaulino/binius/debug"

// Interleave collates the 2^logBlockLen-bit blocks of a and b: the returned c
// holds the even-indexed blocks of both inputs and d the odd-indexed ones,
// alternating a's block then b's block. For single-bit blocks,
//
//	a = <a7 a6 a5 a4 a3 a2 a1 a0>
//	b = <b7 b6 b5 b4 b3 b2 b1 b0>
//
// yields
//
//	c = <b6 a6 b4 a4 b2 a2 b0 a0>
//	d = <b7 a7 b5 a5 b3 a3 b1 a1>
//
// The block length must be strictly smaller than the word size.
func Interleave[U Underlier](a, b U, logBlockLen uint) (c, d U) {
	blockLen := uint(1) << logBlockLen
	if blockLen >= nbBits[U]() {
		panic("field: interleave block length must be smaller than the word size")
	}
	// Hacker's Delight, section 7-3.
	t := ((a >> blockLen) ^ b) & U(interleaveEvenMask[logBlockLen])
	c = a ^ (t << blockLen)
	d = b ^ t
	return
}

// XorAdjacent replaces every 2^(logBlockLen+1)-bit pair of a with the XOR of
// its two 2^logBlockLen-bit halves, stored in both halves. The block length
// must be strictly smaller than the word size.
func XorAdjacent[U Underlier](a U, logBlockLen uint) U {
	blockLen := uint(1) << logBlockLen
	if blockLen >= nbBits[U]() {
		panic("field: xorAdjacent block length must be smaller than the word size")
	}
	t := ((a >> blockLen) ^ a) & U(interleaveEvenMask[logBlockLen])
	return t ^ (t << blockLen)
}

// packedMul multiplies the tower field lanes of a and b pairwise, all lanes at
// once. level is the tower level of each lane; lanes span 2^level bits. At
// level 0 lanes are GF(2) bits and the product is a plain AND.
//
// A level-L lane is lo + hi·X with lo, hi at level L-1. With z0 = lo_a·lo_b,
// z2 = hi_a·hi_b and z1 the Karatsuba cross term, the product is
// (z0 + z2) + (z1 + z2·α)·X. The recursion computes z0 and z2 for all lanes in
// one subfield call by viewing a and b at level L-1, and folds z2·α into the
// cross-term multiplication by seeding α and z2 into spare lanes.
func packedMul[U Underlier](a, b U, level uint) U {
	if level == 0 {
		return a & b
	}
	k := level - 1
	debug.Assert(uint(1)<<level <= nbBits[U](), "lane width exceeds word size")
	blockLen := uint(1) << k

	// even lanes hold z0, odd lanes hold z2
	z02 := packedMul(a, b, k)

	// lo = <a0.lo b0.lo a1.lo b1.lo ...>, hi likewise
	lo, hi := Interleave(a, b, k)
	loPlusHi := lo ^ hi

	oddMask := U(interleaveOddMask[k])
	alphaEvenZ2Odd := U(alphaEvenLanes[k]) ^ (z02 & oddMask)

	// left = <lo0+hi0 of a, α, lo1+hi1 of a, α, ...>
	// right = <lo0+hi0 of b, z2, ...>
	left, right := Interleave(loPlusHi, alphaEvenZ2Odd, k)

	// even lanes: (lo_a+hi_a)(lo_b+hi_b) = z0+z1+z2, odd lanes: z2·α
	m := packedMul(left, right, k)
	middleOdd := (m ^ (m << blockLen)) & oddMask

	return XorAdjacent(z02, k) ^ middleOdd
}

// packedSquare squares every lane of a. Squaring is linear in characteristic
// two: (lo + hi·X)^2 = (lo^2 + hi^2) + hi^2·α·X.
func packedSquare[U Underlier](a U, level uint) U {
	if level == 0 {
		return a
	}
	k := level - 1
	blockLen := uint(1) << k

	z02 := packedSquare(a, k)
	z2Alpha := packedMulAlpha(z02, k) & U(interleaveOddMask[k])
	z0PlusZ2 := (z02 ^ (z02 >> blockLen)) & U(interleaveEvenMask[k])

	return z0PlusZ2 | z2Alpha
}

// packedMulAlpha multiplies every lane of a by the lane level's generator α.
// (lo + hi·X)·X = hi + (lo + hi·α)·X, and α_0 = 1 makes level 0 the identity.
func packedMulAlpha[U Underlier](a U, level uint) U {
	if level == 0 {
		return a
	}
	k := level - 1
	blockLen := uint(1) << k

	a0 := a & U(interleaveEvenMask[k])
	a1 := a & U(interleaveOddMask[k])
	z1 := packedMulAlpha(a1, k)

	return (a1 >> blockLen) | ((a0 << blockLen) ^ z1)
}

// packedInvertOrZero inverts every nonzero lane of a and maps zero lanes to
// zero. It reduces inversion to the subfield through the norm
// δ = lo·(lo + hi·α) + hi^2, which is zero exactly when the lane is zero:
// (lo + hi·X)^-1 = δ^-1·(lo + hi·α) + δ^-1·hi·X.
func packedInvertOrZero[U Underlier](a U, level uint) U {
	if level == 0 {
		return a
	}
	k := level - 1
	blockLen := uint(1) << k
	evenMask := U(interleaveEvenMask[k])
	oddMask := U(interleaveOddMask[k])

	// hi copied down to even lanes; odd lanes carry garbage until masked below
	a1Even := a >> blockLen
	intermediate := a ^ packedMulAlpha(a1Even, k)
	delta := packedMul(a, intermediate, k) ^ packedSquare(a1Even, k)
	deltaInv := packedInvertOrZero(delta, k)

	deltaInvBoth := deltaInv & evenMask
	deltaInvBoth |= deltaInvBoth << blockLen

	intermediateA1 := (a & oddMask) | (intermediate & evenMask)
	return packedMul(deltaInvBoth, intermediateA1, k)
}
