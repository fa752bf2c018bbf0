// Package srs holds the structured reference string of the accumulator: the
// powers g1^{s^i} and g2^{s^i} for the setup secret s up to the degree
// bound, together with the generators they are built on. The setup object
// keeps the secrets it was constructed from; production deployments must
// zeroize them after GeneratePowers and work from the powers alone — every
// commitment in this module is computed as a linear combination of powers,
// never by evaluating at s.
package srs

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"os"

	"accumulator-crypto/config"
	"accumulator-crypto/hash"
	schnorr_proof "accumulator-crypto/proof/schnorr_proof/bls12381"
	. "accumulator-crypto/types/curve/bls12381"
	poly "accumulator-crypto/types/poly/bls12381"
)

const (
	g1DomainTag = "expressive_generator_g1"
	g2DomainTag = "expressive_generator_g2"

	hashToCurveDST = "ACCUMULATOR-V01-CS01-with-BLS12381_XMD:SHA-256_SSWU_RO_"
)

type TrustedSetup struct {
	secretS *Fr
	secretR *Fr
	degree  uint32

	g1Generator *PointG1
	g2Generator *PointG2
	// [1]₁,[s]₁,...,[s^(d+1)]₁ and [1]₂,[s]₂,...,[s^(d+1)]₂
	g1Powers []*PointG1
	g2Powers []*PointG2

	// proof of knowledge of s for g1Powers[1], published by the dealer
	dealerProof *schnorr_proof.SchnorrProof
}

// NewTrustedSetup stores the secrets and the degree bound. Powers are not
// derived until GeneratePowers is called.
func NewTrustedSetup(s, r *Fr, degree uint32) (*TrustedSetup, error) {
	if s == nil || r == nil {
		return nil, errors.New("setup secrets must not be nil")
	}
	if s.IsZero() {
		return nil, errors.New("setup secret s must be nonzero")
	}
	return &TrustedSetup{
		secretS: NewFr().Set(s),
		secretR: NewFr().Set(r),
		degree:  degree,
	}, nil
}

// FromConfig derives the setup secrets from the configured seeds and
// builds the powers. Empty seeds fall back to fresh randomness.
func FromConfig(cfg *config.SetupConfig) (*TrustedSetup, error) {
	if cfg == nil {
		return nil, errors.New("setup config is nil")
	}
	degree := cfg.Degree
	if degree == 0 {
		degree = config.DefaultDegree
	}
	s, err := secretFromSeed("accumulator_setup_secret_s", cfg.SecretS)
	if err != nil {
		return nil, err
	}
	r, err := secretFromSeed("accumulator_setup_secret_r", cfg.SecretR)
	if err != nil {
		return nil, err
	}
	setup, err := NewTrustedSetup(s, r, degree)
	if err != nil {
		return nil, err
	}
	if err := setup.GeneratePowers(); err != nil {
		return nil, err
	}
	return setup, nil
}

func secretFromSeed(domain, seed string) (*Fr, error) {
	if seed == "" {
		return NewFr().Rand(rand.Reader)
	}
	digest := hash.Hash("blake2b-512", []byte(domain+"/"+seed))
	if digest == nil {
		return nil, errors.New("seed hashing backend unavailable")
	}
	return FrFromBig(new(big.Int).SetBytes(digest)), nil
}

// GeneratePowers derives the generators by hashing fixed domain tags to the
// curve and computes g1^{s^i}, g2^{s^i} for i = 0..degree+1, plus the
// dealer's proof of knowledge of s.
func (ts *TrustedSetup) GeneratePowers() error {
	group1 := NewG1()
	group2 := NewG2()

	g1Gen, err := HashToG1([]byte(g1DomainTag), []byte(hashToCurveDST))
	if err != nil {
		return fmt.Errorf("derive g1 generator: %w", err)
	}
	g2Gen, err := HashToG2([]byte(g2DomainTag), []byte(hashToCurveDST))
	if err != nil {
		return fmt.Errorf("derive g2 generator: %w", err)
	}
	ts.g1Generator = g1Gen
	ts.g2Generator = g2Gen

	size := ts.degree + 2
	ts.g1Powers = make([]*PointG1, size)
	ts.g2Powers = make([]*PointG2, size)
	sPower := NewFr().One()
	for i := uint32(0); i < size; i++ {
		ts.g1Powers[i] = group1.Affine(group1.MulScalar(group1.New(), g1Gen, sPower))
		ts.g2Powers[i] = group2.Affine(group2.MulScalar(group2.New(), g2Gen, sPower))
		sPower.Mul(sPower, ts.secretS)
	}

	ts.dealerProof = schnorr_proof.CreateWitness(ts.g1Generator, ts.g1Powers[1], ts.secretS)
	return nil
}

// Verify checks that a setup is well-formed from its public part alone:
// the dealer's proof of knowledge of s, non-degeneracy, and consistency of
// the power ladders under a random pairing challenge.
func Verify(ts *TrustedSetup) error {
	group1 := NewG1()
	group2 := NewG2()
	if ts == nil || len(ts.g1Powers) < 2 || len(ts.g2Powers) < 2 {
		return fmt.Errorf("setup has no powers")
	}
	if len(ts.g1Powers) != len(ts.g2Powers) || uint32(len(ts.g1Powers)) != ts.degree+2 {
		return fmt.Errorf("power vectors have wrong length")
	}
	if group1.IsZero(ts.g1Powers[1]) || group2.IsZero(ts.g2Powers[1]) {
		return fmt.Errorf("setup is degenerative")
	}
	if !schnorr_proof.Verify(ts.g1Generator, ts.g1Powers[1], ts.dealerProof) {
		return fmt.Errorf("dealer proof of knowledge does not verify")
	}

	// A random challenge rho compresses each ladder into one pairing
	// equation: e(sum_{i<=d} rho^i [s^(i+1)]_1, g2) == e(sum_{i<=d} rho^i [s^i]_1, [s]_2).
	last := ts.degree + 1
	rho1, _ := NewFr().Rand(rand.Reader)
	rho2, _ := NewFr().Rand(rand.Reader)

	g1Low := group1.Zero()
	g1High := group1.Zero()
	rhoPower := NewFr().One()
	for i := uint32(0); i < last; i++ {
		group1.Add(g1Low, g1Low, group1.MulScalar(group1.New(), ts.g1Powers[i], rhoPower))
		group1.Add(g1High, g1High, group1.MulScalar(group1.New(), ts.g1Powers[i+1], rhoPower))
		rhoPower.Mul(rhoPower, rho1)
	}

	g2Low := group2.Zero()
	g2High := group2.Zero()
	rhoPower.One()
	for i := uint32(0); i < last; i++ {
		group2.Add(g2Low, g2Low, group2.MulScalar(group2.New(), ts.g2Powers[i], rhoPower))
		group2.Add(g2High, g2High, group2.MulScalar(group2.New(), ts.g2Powers[i+1], rhoPower))
		rhoPower.Mul(rhoPower, rho2)
	}

	if !NewPairingEngine().
		AddPair(g1High, ts.g2Powers[0]).
		AddPairInv(g1Low, ts.g2Powers[1]).
		Check() {
		return fmt.Errorf("pairing failed, g1 power ladder is not well-formed")
	}
	if !NewPairingEngine().
		AddPair(ts.g1Powers[0], g2High).
		AddPairInv(ts.g1Powers[1], g2Low).
		Check() {
		return fmt.Errorf("pairing failed, g2 power ladder is not well-formed")
	}
	return nil
}

// CommitG1 commits to a polynomial as prod_i (g1^{s^i})^{c_i} = g1^{p(s)}.
// The polynomial degree must not exceed degree+1.
func (ts *TrustedSetup) CommitG1(p *poly.UVPolynomial) *PointG1 {
	group1 := NewG1()
	if len(p.Coeffs) > len(ts.g1Powers) {
		panic(fmt.Sprintf("polynomial degree %d exceeds setup bound %d", p.Degree(), ts.degree+1))
	}
	acc := group1.Zero()
	for i, c := range p.Coeffs {
		group1.Add(acc, acc, group1.MulScalar(group1.New(), ts.g1Powers[i], c))
	}
	return group1.Affine(acc)
}

// CommitG2 is the G2 counterpart of CommitG1.
func (ts *TrustedSetup) CommitG2(p *poly.UVPolynomial) *PointG2 {
	group2 := NewG2()
	if len(p.Coeffs) > len(ts.g2Powers) {
		panic(fmt.Sprintf("polynomial degree %d exceeds setup bound %d", p.Degree(), ts.degree+1))
	}
	acc := group2.Zero()
	for i, c := range p.Coeffs {
		group2.Add(acc, acc, group2.MulScalar(group2.New(), ts.g2Powers[i], c))
	}
	return group2.Affine(acc)
}

// SecretS exposes the setup secret. Reference-implementation convenience;
// nil on setups reconstructed from their public encoding.
func (ts *TrustedSetup) SecretS() *Fr {
	return ts.secretS
}

func (ts *TrustedSetup) SecretR() *Fr {
	return ts.secretR
}

func (ts *TrustedSetup) Degree() uint32 {
	return ts.degree
}

func (ts *TrustedSetup) G1Generator() *PointG1 {
	return ts.g1Generator
}

func (ts *TrustedSetup) G2Generator() *PointG2 {
	return ts.g2Generator
}

func (ts *TrustedSetup) DealerProof() *schnorr_proof.SchnorrProof {
	return ts.dealerProof
}

// G1PowerOf returns g1^{s^i}. A request beyond degree+1 is fatal.
func (ts *TrustedSetup) G1PowerOf(i uint32) *PointG1 {
	if i >= uint32(len(ts.g1Powers)) {
		panic(fmt.Sprintf("g1 power %d requested, setup holds %d", i, len(ts.g1Powers)))
	}
	return ts.g1Powers[i]
}

// G2PowerOf returns g2^{s^i}. A request beyond degree+1 is fatal.
func (ts *TrustedSetup) G2PowerOf(i uint32) *PointG2 {
	if i >= uint32(len(ts.g2Powers)) {
		panic(fmt.Sprintf("g2 power %d requested, setup holds %d", i, len(ts.g2Powers)))
	}
	return ts.g2Powers[i]
}

func (ts *TrustedSetup) G1Powers() []*PointG1 {
	return ts.g1Powers
}

func (ts *TrustedSetup) G2Powers() []*PointG2 {
	return ts.g2Powers
}

// ToCompressedBytes encodes the public part of the setup: the degree bound
// followed by both power ladders and the dealer proof. Secrets are not
// serialized.
func (ts *TrustedSetup) ToCompressedBytes() ([]byte, error) {
	if ts.g1Powers == nil {
		return nil, errors.New("powers not generated")
	}
	group1 := NewG1()
	group2 := NewG2()
	buf := bytes.NewBuffer([]byte{})
	if err := binary.Write(buf, binary.BigEndian, ts.degree); err != nil {
		return nil, err
	}
	for _, p := range ts.g1Powers {
		buf.Write(group1.ToCompressed(p))
	}
	for _, p := range ts.g2Powers {
		buf.Write(group2.ToCompressed(p))
	}
	buf.Write(ts.dealerProof.ToBytes())
	return buf.Bytes(), nil
}

// FromCompressedBytes reconstructs a public setup (secrets nil) from its
// encoding.
func FromCompressedBytes(input []byte) (*TrustedSetup, error) {
	group1 := NewG1()
	group2 := NewG2()
	buffer := bytes.NewBuffer(input)
	uint32Buf := make([]byte, 4)
	pointG1Buf := make([]byte, 48)
	pointG2Buf := make([]byte, 96)
	if _, err := buffer.Read(uint32Buf); err != nil {
		return nil, err
	}
	degree := binary.BigEndian.Uint32(uint32Buf)
	size := degree + 2
	g1Powers := make([]*PointG1, size)
	for i := uint32(0); i < size; i++ {
		if _, err := buffer.Read(pointG1Buf); err != nil {
			return nil, err
		}
		p, err := group1.FromCompressed(pointG1Buf)
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize pointG1 at %v: %v", i, err)
		}
		g1Powers[i] = p
	}
	g2Powers := make([]*PointG2, size)
	for i := uint32(0); i < size; i++ {
		if _, err := buffer.Read(pointG2Buf); err != nil {
			return nil, err
		}
		p, err := group2.FromCompressed(pointG2Buf)
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize pointG2 at %v: %v", i, err)
		}
		g2Powers[i] = p
	}
	proofBuf := make([]byte, 48+32)
	if _, err := buffer.Read(proofBuf); err != nil {
		return nil, err
	}
	dealerProof, err := new(schnorr_proof.SchnorrProof).FromBytes(proofBuf)
	if err != nil {
		return nil, err
	}
	return &TrustedSetup{
		degree:      degree,
		g1Generator: g1Powers[0],
		g2Generator: g2Powers[0],
		g1Powers:    g1Powers,
		g2Powers:    g2Powers,
		dealerProof: dealerProof,
	}, nil
}

// ToBinaryFile writes the public setup encoding to path.
func (ts *TrustedSetup) ToBinaryFile(path string) error {
	compressedBytes, err := ts.ToCompressedBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, compressedBytes, 0644)
}

// FromBinaryFile reads a public setup encoding from path.
func FromBinaryFile(path string) (*TrustedSetup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromCompressedBytes(data)
}
