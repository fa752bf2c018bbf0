package accumulator

import (
	. "accumulator-crypto/types/curve/bls12381"
	poly "accumulator-crypto/types/poly/bls12381"
	"accumulator-crypto/types/srs"
)

// intersect splits the element sets into I = A ∩ B and the remainders
// A \ I, B \ I.
func intersect(a, b *Accumulator) (common, onlyA, onlyB []int64) {
	for _, x := range a.Elements() {
		if b.Contains(x) {
			common = append(common, x)
		} else {
			onlyA = append(onlyA, x)
		}
	}
	for _, x := range b.Elements() {
		if !a.Contains(x) {
			onlyB = append(onlyB, x)
		}
	}
	return common, onlyA, onlyB
}

func rootsFromElements(elements []int64) []*Fr {
	roots := make([]*Fr, len(elements))
	for i, x := range elements {
		roots[i] = FrFromInt64(x)
	}
	return roots
}

// GenerateIntersectionProof proves I = A ∩ B exactly. With P_A = P_I * Q_A
// and P_B = P_I * Q_B, the quotients Q_A and Q_B are built over the
// disjoint remainder sets, so gcd(Q_A, Q_B) = 1 and the extended Euclidean
// algorithm yields Bezout cofactors a, b with a*Q_A + b*Q_B = 1. The proof
// commits P_I in G1, the quotients in G2, and the cofactors in G1.
// Both accumulators must share the given setup.
func GenerateIntersectionProof(accA, accB *Accumulator, setup *srs.TrustedSetup) *IntersectionProof {
	group1 := NewG1()
	group2 := NewG2()
	proof := &IntersectionProof{
		IntersectionDigest: &Digest{Value: group1.Zero()},
		WitnessQA:          group2.Zero(),
		WitnessQB:          group2.Zero(),
		WitnessA:           group1.Zero(),
		WitnessB:           group1.Zero(),
	}
	if accA == nil || accB == nil || setup == nil {
		return proof
	}
	if accA.Setup() != setup || accB.Setup() != setup {
		log.Warn("intersection proof rejected: accumulators built on a different setup")
		return proof
	}

	common, onlyA, onlyB := intersect(accA, accB)

	polyI := poly.FromRoots(rootsFromElements(common))
	polyQA := poly.FromRoots(rootsFromElements(onlyA))
	polyQB := poly.FromRoots(rootsFromElements(onlyB))

	gcd, bezoutA, bezoutB := polyQA.XGCD(polyQB)
	if !gcd.Equal(poly.One()) {
		// unreachable for quotients over disjoint root sets
		log.Error("intersection quotients share a root, refusing to build disjointness witness")
		return proof
	}

	proof.IntersectionDigest = &Digest{Value: setup.CommitG1(polyI)}
	proof.WitnessQA = setup.CommitG2(polyQA)
	proof.WitnessQB = setup.CommitG2(polyQB)
	proof.WitnessA = setup.CommitG1(bezoutA)
	proof.WitnessB = setup.CommitG1(bezoutB)
	proof.Valid = true
	return proof
}
