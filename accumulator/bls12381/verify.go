package accumulator

import (
	. "accumulator-crypto/types/curve/bls12381"
	"accumulator-crypto/types/srs"
)

// g1SMinusX computes g1^{s-x} from the setup powers: [s]_1 * g1^{-x}.
func g1SMinusX(setup *srs.TrustedSetup, element int64) *PointG1 {
	group1 := NewG1()
	negX := NewFr()
	negX.Neg(FrFromInt64(element))
	res := group1.MulScalar(group1.New(), setup.G1Generator(), negX)
	group1.Add(res, res, setup.G1PowerOf(1))
	return group1.Affine(res)
}

// VerifyMembershipProof checks e(D, g2) == e(g1^{s-x}, W). With
// D = g1^{P(s)} and W = g2^{Q(s)} this holds exactly when
// Q(s)*(s-x) = P(s), i.e. (z-x) divides P. Proofs claiming non-membership
// are rejected outright.
func VerifyMembershipProof(digest *Digest, element int64, proof *MembershipProof, setup *srs.TrustedSetup) bool {
	if proof == nil || !proof.IsMember || proof.Witness == nil {
		return false
	}
	if digest == nil || digest.Value == nil {
		return false
	}
	return NewPairingEngine().
		AddPair(g1SMinusX(setup, element), proof.Witness).
		AddPairInv(digest.Value, setup.G2Generator()).
		Check()
}

// updateEquationHolds checks e(grown, g2) == e(shrunk, g2^s) * e(shrunk, g2)^{-x},
// the pairing form of P_grown(s) = P_shrunk(s) * (s-x). The scalar -x is
// folded into the G1 side.
func updateEquationHolds(grown, shrunk *PointG1, element int64, setup *srs.TrustedSetup) bool {
	group1 := NewG1()
	negX := NewFr()
	negX.Neg(FrFromInt64(element))
	shrunkNegX := group1.Affine(group1.MulScalar(group1.New(), shrunk, negX))
	return NewPairingEngine().
		AddPair(shrunk, setup.G2PowerOf(1)).
		AddPair(shrunkNegX, setup.G2Generator()).
		AddPairInv(grown, setup.G2Generator()).
		Check()
}

// VerifyUpdateProof checks one add or delete transition between digests.
// ADD accepts iff D_new = D_old^{s-x}; DELETE additionally requires the
// attached membership proof to verify against the old digest, then checks
// the symmetric equation D_old = D_new^{s-x}.
func VerifyUpdateProof(proof *UpdateProof, setup *srs.TrustedSetup) bool {
	if proof == nil || !proof.Valid {
		return false
	}
	if proof.OldDigest == nil || proof.NewDigest == nil {
		return false
	}

	switch proof.Op {
	case OpAdd:
		return updateEquationHolds(proof.NewDigest.Value, proof.OldDigest.Value, proof.Element, setup)
	case OpDelete:
		if !VerifyMembershipProof(proof.OldDigest, proof.Element, proof.Membership, setup) {
			log.WithField("element", proof.Element).Warn("update verification failed: membership proof for deleted element is invalid")
			return false
		}
		return updateEquationHolds(proof.OldDigest.Value, proof.NewDigest.Value, proof.Element, setup)
	}
	return false
}

// VerifyIntersectionProof checks the three pairing equations of the exact
// intersection argument:
//
//	e(D_A, g2) == e(D_I, W_QA)                 I ⊆ A
//	e(D_B, g2) == e(D_I, W_QB)                 I ⊆ B
//	e(W_a, W_QA) * e(W_b, W_QB) == e(g1, g2)   gcd(Q_A, Q_B) = 1
//
// The first two bind the quotients P_A/P_I and P_B/P_I, the third attests
// the Bezout identity a(s)*Q_A(s) + b(s)*Q_B(s) = 1, so no element outside
// the claimed intersection is shared. Together they give I = A ∩ B.
func VerifyIntersectionProof(digestA, digestB *Digest, proof *IntersectionProof, setup *srs.TrustedSetup) bool {
	if proof == nil || !proof.Valid {
		return false
	}
	if digestA == nil || digestB == nil || proof.IntersectionDigest == nil {
		return false
	}

	if !NewPairingEngine().
		AddPair(proof.IntersectionDigest.Value, proof.WitnessQA).
		AddPairInv(digestA.Value, setup.G2Generator()).
		Check() {
		return false
	}
	if !NewPairingEngine().
		AddPair(proof.IntersectionDigest.Value, proof.WitnessQB).
		AddPairInv(digestB.Value, setup.G2Generator()).
		Check() {
		return false
	}
	return NewPairingEngine().
		AddPair(proof.WitnessA, proof.WitnessQA).
		AddPair(proof.WitnessB, proof.WitnessQB).
		AddPairInv(setup.G1Generator(), setup.G2Generator()).
		Check()
}
