// Package schnorr_proof implements a non-interactive Schnorr proof of
// knowledge of a discrete logarithm in G1: given g and y = g^x, the prover
// shows knowledge of x without revealing it. The challenge is derived by
// Fiat-Shamir over the transcript.
package schnorr_proof

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"

	"accumulator-crypto/hash"
	. "accumulator-crypto/types/curve/bls12381"
)

type SchnorrProof struct {
	// commitment R = g^k for random nonce k
	R *PointG1
	// response z = k + c*x
	Z *Fr
}

// challenge hashes the transcript (g, y, R) to a scalar.
func challenge(g, y, r *PointG1) *Fr {
	group1 := NewG1()
	buf := bytes.NewBuffer([]byte("schnorr_proof_g1"))
	buf.Write(group1.ToCompressed(g))
	buf.Write(group1.ToCompressed(y))
	buf.Write(group1.ToCompressed(r))
	digest := hash.Hash("sha256", buf.Bytes())
	return FrFromBig(new(big.Int).SetBytes(digest))
}

// CreateWitness proves knowledge of x with y = g^x.
func CreateWitness(g, y *PointG1, x *Fr) *SchnorrProof {
	group1 := NewG1()
	k, _ := NewFr().Rand(rand.Reader)
	r := group1.Affine(group1.MulScalar(group1.New(), g, k))
	c := challenge(g, y, r)
	z := NewFr()
	z.Mul(c, x)
	z.Add(z, k)
	return &SchnorrProof{R: r, Z: z}
}

// Verify checks g^z == R * y^c.
func Verify(g, y *PointG1, proof *SchnorrProof) bool {
	if proof == nil || proof.R == nil || proof.Z == nil {
		return false
	}
	group1 := NewG1()
	c := challenge(g, y, proof.R)
	lhs := group1.MulScalar(group1.New(), g, proof.Z)
	rhs := group1.Add(group1.New(), proof.R, group1.MulScalar(group1.New(), y, c))
	return group1.Equal(group1.Affine(lhs), group1.Affine(rhs))
}

func (p *SchnorrProof) ToBytes() []byte {
	group1 := NewG1()
	buf := bytes.NewBuffer([]byte{})
	buf.Write(group1.ToCompressed(p.R))
	buf.Write(p.Z.ToBytes())
	return buf.Bytes()
}

func (p *SchnorrProof) FromBytes(input []byte) (*SchnorrProof, error) {
	if len(input) != 48+32 {
		return nil, errors.New("malformed schnorr proof encoding")
	}
	group1 := NewG1()
	r, err := group1.FromCompressed(input[:48])
	if err != nil {
		return nil, err
	}
	p.R = r
	p.Z = NewFr().FromBytes(input[48:])
	return p, nil
}
