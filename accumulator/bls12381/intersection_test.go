package accumulator

import (
	"testing"

	"accumulator-crypto/config"
	. "accumulator-crypto/types/curve/bls12381"
	poly "accumulator-crypto/types/poly/bls12381"
	"accumulator-crypto/types/srs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitRoots builds g1^{P(s)} for the set given, the digest an honest
// prover would publish for it.
func commitRoots(setup *srs.TrustedSetup, elements []int64) *Digest {
	return &Digest{Value: setup.CommitG1(poly.FromRoots(rootsFromElements(elements)))}
}

func TestIntersectionScenario(t *testing.T) {
	// S1: A = {1,3,5,7,9}, B = {2,3,5,8,9}, I = {3,5,9}
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 1, 3, 5, 7, 9)
	accB := accumulatorWith(t, setup, 2, 3, 5, 8, 9)

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, proof.Valid)
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))
	assert.True(t, proof.IntersectionDigest.Equal(commitRoots(setup, []int64{3, 5, 9})))
}

func TestIntersectionCommutes(t *testing.T) {
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 1, 3, 5, 7, 9)
	accB := accumulatorWith(t, setup, 2, 3, 5, 8, 9)

	proofAB := GenerateIntersectionProof(accA, accB, setup)
	proofBA := GenerateIntersectionProof(accB, accA, setup)
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proofAB, setup))
	assert.True(t, VerifyIntersectionProof(accB.Digest(), accA.Digest(), proofBA, setup))
	assert.True(t, proofAB.IntersectionDigest.Equal(proofBA.IntersectionDigest))
}

func TestIntersectionDisjointSets(t *testing.T) {
	// S5: disjoint sets commit the empty intersection as the generator
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 1, 2)
	accB := accumulatorWith(t, setup, 3, 4)

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, proof.Valid)
	group1 := NewG1()
	assert.True(t, group1.Equal(setup.G1Generator(), proof.IntersectionDigest.Value))
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))
}

func TestIntersectionIdenticalSets(t *testing.T) {
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 4, 5, 6)
	accB := accumulatorWith(t, setup, 4, 5, 6)

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, proof.Valid)
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))
	assert.True(t, proof.IntersectionDigest.Equal(accA.Digest()))
}

func TestIntersectionEmptyAccumulator(t *testing.T) {
	setup := testSetup(t)
	accA := New(setup, GroupG1)
	accB := accumulatorWith(t, setup, 1, 2, 3)

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, proof.Valid)
	group1 := NewG1()
	assert.True(t, group1.Equal(setup.G1Generator(), proof.IntersectionDigest.Value))
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))
}

func TestIntersectionSoundness(t *testing.T) {
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 1, 3, 5, 7, 9)
	accB := accumulatorWith(t, setup, 2, 3, 5, 8, 9)
	digestA := accA.Digest()
	digestB := accB.Digest()

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, VerifyIntersectionProof(digestA, digestB, proof, setup))

	// claiming a subset of the true intersection no longer matches the
	// quotient witnesses, so a subset side fails
	shrunk := *proof
	shrunk.IntersectionDigest = commitRoots(setup, []int64{3, 5})
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &shrunk, setup))

	// claiming a superset breaks at least one subset side
	grown := *proof
	grown.IntersectionDigest = commitRoots(setup, []int64{1, 3, 5, 9})
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &grown, setup))

	// an unrelated intersection claim fails outright
	unrelated := *proof
	unrelated.IntersectionDigest = commitRoots(setup, []int64{2, 8})
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &unrelated, setup))

	// tampering with any single witness breaks a pairing side
	swappedQA := *proof
	swappedQA.WitnessQA = proof.WitnessQB
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &swappedQA, setup))

	swappedQB := *proof
	swappedQB.WitnessQB = proof.WitnessQA
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &swappedQB, setup))

	group1 := NewG1()
	forgedA := *proof
	forgedA.WitnessA = group1.One()
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &forgedA, setup))

	forgedB := *proof
	forgedB.WitnessB = group1.One()
	assert.False(t, VerifyIntersectionProof(digestA, digestB, &forgedB, setup))

	// proofs do not transfer to other digest pairs
	accC := accumulatorWith(t, setup, 3, 5, 9, 11)
	assert.False(t, VerifyIntersectionProof(accC.Digest(), digestB, proof, setup))
}

func TestIntersectionRejectsForeignSetup(t *testing.T) {
	setup := testSetup(t)
	cfg := &config.SetupConfig{SecretS: "foreign", SecretR: "foreign-r", Degree: 16}
	foreign, err := srs.FromConfig(cfg)
	require.Nil(t, err)

	accA := accumulatorWith(t, setup, 1, 2)
	accB := accumulatorWith(t, foreign, 2, 3)
	proof := GenerateIntersectionProof(accA, accB, setup)
	assert.False(t, proof.Valid)
	assert.False(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))
}

func TestIntersectionProofSerialization(t *testing.T) {
	setup := testSetup(t)
	accA := accumulatorWith(t, setup, 1, 3, 5)
	accB := accumulatorWith(t, setup, 3, 4, 5)

	proof := GenerateIntersectionProof(accA, accB, setup)
	decoded, err := new(IntersectionProof).FromBytes(proof.ToBytes())
	require.Nil(t, err)
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), decoded, setup))

	_, err = new(IntersectionProof).FromBytes(proof.ToBytes()[:100])
	assert.NotNil(t, err)
}

func TestLargerIntersection(t *testing.T) {
	// scaled-down S6: two 60-element sets sharing 30 elements
	setup := testSetup(t)
	accA := New(setup, GroupG1)
	accB := New(setup, GroupG1)
	for i := int64(0); i < 60; i++ {
		require.True(t, accA.Add(i).Valid)
		require.True(t, accB.Add(i+30).Valid)
	}

	proof := GenerateIntersectionProof(accA, accB, setup)
	require.True(t, proof.Valid)
	assert.True(t, VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup))

	expected := make([]int64, 0, 30)
	for i := int64(30); i < 60; i++ {
		expected = append(expected, i)
	}
	assert.True(t, proof.IntersectionDigest.Equal(commitRoots(setup, expected)))
}

func BenchmarkIntersectionProofLarge(b *testing.B) {
	cfg := &config.SetupConfig{SecretS: "bench-s", SecretR: "bench-r", Degree: config.DefaultDegree}
	setup, err := srs.FromConfig(cfg)
	if err != nil {
		b.Fatal(err)
	}
	accA := New(setup, GroupG1)
	accB := New(setup, GroupG1)
	for i := int64(0); i < 1000; i++ {
		accA.Add(i)
		accB.Add(i + 500)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		proof := GenerateIntersectionProof(accA, accB, setup)
		if !VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup) {
			b.Fatal("large intersection proof rejected")
		}
	}
}
