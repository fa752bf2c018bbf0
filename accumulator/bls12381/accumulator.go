// Package accumulator implements a pairing-based cryptographic set
// accumulator. A set S of integers is committed as the digest
// g^{P_S(s)} where P_S(z) = prod_{x in S} (z - x) is the characteristic
// polynomial of the set and s the trusted-setup secret. The digest is
// short, updates are dynamic, and membership, update and exact
// intersection claims carry succinct publicly verifiable proofs.
package accumulator

import (
	"sort"

	"accumulator-crypto/logging"
	. "accumulator-crypto/types/curve/bls12381"
	poly "accumulator-crypto/types/poly/bls12381"
	"accumulator-crypto/types/srs"
)

var log = logging.GetLogger()

// GroupType names the primary source group of an accumulator.
type GroupType int

const (
	GroupG1 GroupType = iota
	GroupG2
)

// Accumulator owns a set of integers, its materialized characteristic
// polynomial, and the digests in both source groups. It keeps a read-only
// reference to the trusted setup; several accumulators may share one setup.
// Instances are not safe for concurrent mutation.
type Accumulator struct {
	setup     *srs.TrustedSetup
	groupType GroupType

	elements map[int64]struct{}
	// characteristic polynomial of the current set, kept materialized as a
	// cache; P = 1 for the empty set
	charPoly *poly.UVPolynomial

	digestG1 *Digest
	digestG2 *DigestG2
}

// New creates an empty accumulator over the given setup. The digest starts
// at the generator, the commitment to P = 1.
func New(setup *srs.TrustedSetup, groupType GroupType) *Accumulator {
	group1 := NewG1()
	group2 := NewG2()
	return &Accumulator{
		setup:     setup,
		groupType: groupType,
		elements:  make(map[int64]struct{}),
		charPoly:  poly.One(),
		digestG1:  &Digest{Value: group1.New().Set(setup.G1Generator())},
		digestG2:  &DigestG2{Value: group2.New().Set(setup.G2Generator())},
	}
}

func (a *Accumulator) Setup() *srs.TrustedSetup {
	return a.setup
}

func (a *Accumulator) GroupType() GroupType {
	return a.groupType
}

func (a *Accumulator) Contains(element int64) bool {
	_, ok := a.elements[element]
	return ok
}

func (a *Accumulator) Size() int {
	return len(a.elements)
}

// Elements returns the committed set in ascending order.
func (a *Accumulator) Elements() []int64 {
	out := make([]int64, 0, len(a.elements))
	for x := range a.elements {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Digest returns the G1 digest, the value all proofs bind to.
func (a *Accumulator) Digest() *Digest {
	return &Digest{Value: NewG1().New().Set(a.digestG1.Value)}
}

// DigestG2 returns the dual digest in G2.
func (a *Accumulator) DigestG2() *DigestG2 {
	return &DigestG2{Value: NewG2().New().Set(a.digestG2.Value)}
}

// CharacteristicPolynomial returns a copy of the cached polynomial.
func (a *Accumulator) CharacteristicPolynomial() *poly.UVPolynomial {
	return a.charPoly.Clone()
}

// updateDigests recommits the characteristic polynomial in both groups by
// linear combination over the setup powers.
func (a *Accumulator) updateDigests() {
	a.digestG1 = &Digest{Value: a.setup.CommitG1(a.charPoly)}
	a.digestG2 = &DigestG2{Value: a.setup.CommitG2(a.charPoly)}
}

// Add inserts element into the set and returns the update proof. Adding a
// present element is a no-op that still returns a trivial proof with equal
// digests. An add that would push the set past the setup degree bound
// returns an invalid proof and leaves the state unchanged.
func (a *Accumulator) Add(element int64) *UpdateProof {
	proof := &UpdateProof{
		Op:        OpAdd,
		Element:   element,
		OldDigest: a.Digest(),
	}
	if a.Contains(element) {
		proof.NewDigest = a.Digest()
		proof.Valid = true
		return proof
	}
	if uint32(len(a.elements))+1 > a.setup.Degree() {
		log.WithField("element", element).Warn("add rejected: set size would exceed the setup degree bound")
		proof.NewDigest = a.Digest()
		proof.Valid = false
		return proof
	}

	a.elements[element] = struct{}{}
	negX := NewFr()
	negX.Neg(FrFromInt64(element))
	a.charPoly = a.charPoly.Mul(poly.FromSlice([]*Fr{negX, NewFr().One()}))
	a.updateDigests()

	proof.NewDigest = a.Digest()
	proof.Valid = true
	return proof
}

// Delete removes element from the set. The returned proof carries a
// membership proof against the old digest as the right to delete. Deleting
// an absent element returns an invalid proof and changes nothing.
func (a *Accumulator) Delete(element int64) *UpdateProof {
	proof := &UpdateProof{
		Op:        OpDelete,
		Element:   element,
		OldDigest: a.Digest(),
	}
	if !a.Contains(element) {
		proof.NewDigest = a.Digest()
		proof.Valid = false
		return proof
	}

	proof.Membership = a.GenerateMembershipProof(element)
	if !proof.Membership.IsMember {
		proof.NewDigest = a.Digest()
		proof.Valid = false
		return proof
	}

	negX := NewFr()
	negX.Neg(FrFromInt64(element))
	quotient := a.charPoly.DivWithoutRem(poly.FromSlice([]*Fr{negX, NewFr().One()}))
	if quotient == nil {
		// cannot happen while the cache matches the set
		log.WithField("element", element).Error("characteristic polynomial is not divisible by deleted root")
		proof.NewDigest = a.Digest()
		proof.Valid = false
		return proof
	}
	delete(a.elements, element)
	a.charPoly = quotient
	a.updateDigests()

	proof.NewDigest = a.Digest()
	proof.Valid = true
	return proof
}

// GenerateMembershipProof builds the witness W = g2^{Q(s)} for
// Q(z) = P(z)/(z - element). For a non-member the proof only states
// non-membership and carries no witness.
func (a *Accumulator) GenerateMembershipProof(element int64) *MembershipProof {
	if !a.Contains(element) {
		return &MembershipProof{IsMember: false}
	}
	negX := NewFr()
	negX.Neg(FrFromInt64(element))
	quotient := a.charPoly.DivWithoutRem(poly.FromSlice([]*Fr{negX, NewFr().One()}))
	if quotient == nil {
		log.WithField("element", element).Error("characteristic polynomial is not divisible by member root")
		return &MembershipProof{IsMember: false}
	}
	return &MembershipProof{
		IsMember: true,
		Witness:  a.setup.CommitG2(quotient),
	}
}
