// Package poly implements dense univariate polynomials over the scalar
// field Fr of BLS12-381. Coefficients are stored lowest degree first with
// no trailing zeros; the zero polynomial has an empty coefficient slice.
package poly

import (
	. "accumulator-crypto/types/curve/bls12381"
)

type UVPolynomial struct {
	Coeffs []*Fr
}

// FromSlice builds a polynomial from a coefficient slice, lowest degree
// first. The slice is copied and trailing zero coefficients are trimmed.
func FromSlice(coeffs []*Fr) *UVPolynomial {
	end := len(coeffs)
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}
	p := &UVPolynomial{Coeffs: make([]*Fr, end)}
	for i := 0; i < end; i++ {
		p.Coeffs[i] = NewFr().Set(coeffs[i])
	}
	return p
}

// FromRoots builds the monic polynomial whose roots are exactly the given
// scalars: prod (z - root). An empty root slice yields the constant 1.
func FromRoots(roots []*Fr) *UVPolynomial {
	p := One()
	for _, root := range roots {
		negRoot := NewFr()
		negRoot.Neg(root)
		p = p.Mul(FromSlice([]*Fr{negRoot, NewFr().One()}))
	}
	return p
}

func Zero() *UVPolynomial {
	return &UVPolynomial{Coeffs: []*Fr{}}
}

func One() *UVPolynomial {
	return &UVPolynomial{Coeffs: []*Fr{NewFr().One()}}
}

func (p *UVPolynomial) IsZero() bool {
	return len(p.Coeffs) == 0
}

// Degree of the zero polynomial is 0 by convention.
func (p *UVPolynomial) Degree() uint32 {
	if p.IsZero() {
		return 0
	}
	return uint32(len(p.Coeffs) - 1)
}

func (p *UVPolynomial) Clone() *UVPolynomial {
	return FromSlice(p.Coeffs)
}

func (p *UVPolynomial) Equal(q *UVPolynomial) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !p.Coeffs[i].Equal(q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at x with Horner's scheme.
func (p *UVPolynomial) Eval(x *Fr) *Fr {
	res := NewFr()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.Coeffs[i])
	}
	return res
}

func (p *UVPolynomial) Add(q *UVPolynomial) *UVPolynomial {
	size := len(p.Coeffs)
	if len(q.Coeffs) > size {
		size = len(q.Coeffs)
	}
	coeffs := make([]*Fr, size)
	for i := 0; i < size; i++ {
		c := NewFr()
		if i < len(p.Coeffs) {
			c.Add(c, p.Coeffs[i])
		}
		if i < len(q.Coeffs) {
			c.Add(c, q.Coeffs[i])
		}
		coeffs[i] = c
	}
	return FromSlice(coeffs)
}

func (p *UVPolynomial) Sub(q *UVPolynomial) *UVPolynomial {
	size := len(p.Coeffs)
	if len(q.Coeffs) > size {
		size = len(q.Coeffs)
	}
	coeffs := make([]*Fr, size)
	for i := 0; i < size; i++ {
		c := NewFr()
		if i < len(p.Coeffs) {
			c.Add(c, p.Coeffs[i])
		}
		if i < len(q.Coeffs) {
			c.Sub(c, q.Coeffs[i])
		}
		coeffs[i] = c
	}
	return FromSlice(coeffs)
}

func (p *UVPolynomial) Neg() *UVPolynomial {
	coeffs := make([]*Fr, len(p.Coeffs))
	for i := range p.Coeffs {
		coeffs[i] = NewFr()
		coeffs[i].Neg(p.Coeffs[i])
	}
	return FromSlice(coeffs)
}

// Mul is schoolbook multiplication, quadratic in the degrees. Fast enough
// for the SRS bounds this module targets.
func (p *UVPolynomial) Mul(q *UVPolynomial) *UVPolynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	coeffs := make([]*Fr, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = NewFr()
	}
	term := NewFr()
	for i, a := range p.Coeffs {
		for j, b := range q.Coeffs {
			term.Mul(a, b)
			coeffs[i+j].Add(coeffs[i+j], term)
		}
	}
	return FromSlice(coeffs)
}

func (p *UVPolynomial) MulScalar(k *Fr) *UVPolynomial {
	coeffs := make([]*Fr, len(p.Coeffs))
	for i := range p.Coeffs {
		coeffs[i] = NewFr()
		coeffs[i].Mul(p.Coeffs[i], k)
	}
	return FromSlice(coeffs)
}

// DivScalar divides every coefficient by k. Returns nil if k is zero.
func (p *UVPolynomial) DivScalar(k *Fr) *UVPolynomial {
	if k.IsZero() {
		return nil
	}
	kInv := NewFr()
	kInv.Inverse(k)
	return p.MulScalar(kInv)
}

// DivMod returns (quot, rem) with p = quot*q + rem and deg rem < deg q.
// Returns (nil, nil) if q is the zero polynomial.
func (p *UVPolynomial) DivMod(q *UVPolynomial) (*UVPolynomial, *UVPolynomial) {
	if q.IsZero() {
		return nil, nil
	}
	if p.IsZero() || len(p.Coeffs) < len(q.Coeffs) {
		return Zero(), p.Clone()
	}
	rem := make([]*Fr, len(p.Coeffs))
	for i := range rem {
		rem[i] = NewFr().Set(p.Coeffs[i])
	}
	lcInv := NewFr()
	lcInv.Inverse(q.Coeffs[len(q.Coeffs)-1])
	quot := make([]*Fr, len(p.Coeffs)-len(q.Coeffs)+1)
	term := NewFr()
	for i := len(quot) - 1; i >= 0; i-- {
		c := NewFr()
		c.Mul(rem[i+len(q.Coeffs)-1], lcInv)
		quot[i] = c
		if c.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			term.Mul(c, b)
			rem[i+j].Sub(rem[i+j], term)
		}
	}
	return FromSlice(quot), FromSlice(rem)
}

// DivWithoutRem returns p/q assuming the division is exact, nil if q is
// zero or the remainder is not.
func (p *UVPolynomial) DivWithoutRem(q *UVPolynomial) *UVPolynomial {
	quot, rem := p.DivMod(q)
	if quot == nil || !rem.IsZero() {
		return nil
	}
	return quot
}

// XGCD runs the extended Euclidean algorithm and returns (g, a, b) with
// a*p + b*q = g = gcd(p, q), g monic. Termination is guaranteed since Fr
// is a field. XGCD(0, 0) returns three zero polynomials.
func (p *UVPolynomial) XGCD(q *UVPolynomial) (*UVPolynomial, *UVPolynomial, *UVPolynomial) {
	if p.IsZero() && q.IsZero() {
		return Zero(), Zero(), Zero()
	}
	r0, r1 := p.Clone(), q.Clone()
	s0, s1 := One(), Zero()
	t0, t1 := Zero(), One()
	for !r1.IsZero() {
		quot, rem := r0.DivMod(r1)
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(quot.Mul(s1))
		t0, t1 = t1, t0.Sub(quot.Mul(t1))
	}
	// normalize the gcd to monic
	lc := r0.Coeffs[len(r0.Coeffs)-1]
	return r0.DivScalar(lc), s0.DivScalar(lc), t0.DivScalar(lc)
}

// Interpolate returns the unique polynomial of degree < n through the n
// points (xs[i], ys[i]). The xs must be pairwise distinct.
func Interpolate(xs, ys []*Fr) *UVPolynomial {
	res := Zero()
	diff := NewFr()
	for i := range xs {
		num := One()
		denom := NewFr().One()
		for j := range xs {
			if j == i {
				continue
			}
			negX := NewFr()
			negX.Neg(xs[j])
			num = num.Mul(FromSlice([]*Fr{negX, NewFr().One()}))
			diff.Sub(xs[i], xs[j])
			denom.Mul(denom, diff)
		}
		scale := NewFr()
		scale.Inverse(denom)
		scale.Mul(scale, ys[i])
		res = res.Add(num.MulScalar(scale))
	}
	return res
}

// InterpolationAndEval evaluates the interpolation of (xs, ys) at x
// without materializing the polynomial.
func InterpolationAndEval(x *Fr, xs, ys []*Fr) *Fr {
	res := NewFr()
	diff := NewFr()
	for i := range xs {
		term := NewFr().Set(ys[i])
		denom := NewFr().One()
		for j := range xs {
			if j == i {
				continue
			}
			diff.Sub(x, xs[j])
			term.Mul(term, diff)
			diff.Sub(xs[i], xs[j])
			denom.Mul(denom, diff)
		}
		denom.Inverse(denom)
		term.Mul(term, denom)
		res.Add(res, term)
	}
	return res
}
