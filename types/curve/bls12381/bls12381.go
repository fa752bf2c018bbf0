// Package bls12381 exposes the pairing-friendly curve used across the
// module: the scalar field Fr, the source groups G1 and G2, the target
// group element E and the pairing engine. It is a thin layer over
// github.com/kilic/bls12-381 that pins the curve choice in one place and
// adds the scalar lift helpers the rest of the code relies on.
package bls12381

import (
	"math/big"

	bls "github.com/kilic/bls12-381"
)

// Fr is an element of the scalar field (255-bit prime order r).
type Fr = bls.Fr

// PointG1 and PointG2 are points of the two source groups.
type PointG1 = bls.PointG1
type PointG2 = bls.PointG2

// E is an element of the target group GT.
type E = bls.E

// G1 and G2 are the group contexts carrying the arithmetic.
type G1 = bls.G1
type G2 = bls.G2

// GT is the target group context.
type GT = bls.GT

// PairingEngine accumulates pairs and evaluates the product of pairings.
type PairingEngine = bls.Engine

func NewG1() *G1 {
	return bls.NewG1()
}

func NewG2() *G2 {
	return bls.NewG2()
}

func NewGT() *GT {
	return bls.NewGT()
}

func NewFr() *Fr {
	return bls.NewFr()
}

func NewPairingEngine() *PairingEngine {
	return bls.NewEngine()
}

// rModulus is the order of the scalar field.
var rModulus, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// FrModulus returns a copy of the scalar field order r.
func FrModulus() *big.Int {
	return new(big.Int).Set(rModulus)
}

// FrFromBig lifts an arbitrary integer into Fr, reducing mod r.
// Negative inputs map to r - (|v| mod r).
func FrFromBig(v *big.Int) *Fr {
	reduced := new(big.Int).Mod(v, rModulus)
	buf := make([]byte, 32)
	reduced.FillBytes(buf)
	return NewFr().FromBytes(buf)
}

// FrFromInt lifts a signed machine integer into Fr.
func FrFromInt(v int) *Fr {
	return FrFromBig(big.NewInt(int64(v)))
}

// FrFromInt64 lifts a signed 64-bit integer into Fr.
func FrFromInt64(v int64) *Fr {
	return FrFromBig(big.NewInt(v))
}

func FrFromUInt32(v uint32) *Fr {
	return FrFromBig(new(big.Int).SetUint64(uint64(v)))
}

// HashToG1 maps a message to G1 with the given domain separation tag.
func HashToG1(msg, domain []byte) (*PointG1, error) {
	return NewG1().HashToCurve(msg, domain)
}

// HashToG2 maps a message to G2 with the given domain separation tag.
func HashToG2(msg, domain []byte) (*PointG2, error) {
	return NewG2().HashToCurve(msg, domain)
}
