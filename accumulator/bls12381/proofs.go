package accumulator

import (
	"bytes"
	"encoding/binary"
	"errors"

	. "accumulator-crypto/types/curve/bls12381"
)

// Digest commits to a set as g1^{P(s)} for the set's characteristic
// polynomial P. The digest of the empty set is the generator itself.
type Digest struct {
	Value *PointG1
}

// DigestG2 is the dual commitment g2^{P(s)}.
type DigestG2 struct {
	Value *PointG2
}

func (d *Digest) Equal(other *Digest) bool {
	return NewG1().Equal(d.Value, other.Value)
}

func (d *DigestG2) Equal(other *DigestG2) bool {
	return NewG2().Equal(d.Value, other.Value)
}

func (d *Digest) ToBytes() []byte {
	return NewG1().ToCompressed(d.Value)
}

func (d *Digest) FromBytes(input []byte) (*Digest, error) {
	p, err := NewG1().FromCompressed(input)
	if err != nil {
		return nil, err
	}
	d.Value = p
	return d, nil
}

func (d *DigestG2) ToBytes() []byte {
	return NewG2().ToCompressed(d.Value)
}

func (d *DigestG2) FromBytes(input []byte) (*DigestG2, error) {
	p, err := NewG2().FromCompressed(input)
	if err != nil {
		return nil, err
	}
	d.Value = p
	return d, nil
}

// MembershipProof claims x in S with witness W = g2^{P(s)/(s-x)}. For a
// non-member the proof carries IsMember false and no witness.
type MembershipProof struct {
	IsMember bool
	Witness  *PointG2
}

func (p *MembershipProof) ToBytes() []byte {
	buf := bytes.NewBuffer([]byte{})
	if !p.IsMember {
		buf.WriteByte(0)
		return buf.Bytes()
	}
	buf.WriteByte(1)
	buf.Write(NewG2().ToCompressed(p.Witness))
	return buf.Bytes()
}

func (p *MembershipProof) FromBytes(input []byte) (*MembershipProof, error) {
	if len(input) < 1 {
		return nil, errors.New("empty membership proof encoding")
	}
	if input[0] == 0 {
		p.IsMember = false
		p.Witness = nil
		return p, nil
	}
	if len(input) != 1+96 {
		return nil, errors.New("malformed membership proof encoding")
	}
	w, err := NewG2().FromCompressed(input[1:])
	if err != nil {
		return nil, err
	}
	p.IsMember = true
	p.Witness = w
	return p, nil
}

type UpdateOperation uint8

const (
	OpAdd UpdateOperation = iota
	OpDelete
)

func (op UpdateOperation) String() string {
	if op == OpAdd {
		return "ADD"
	}
	return "DELETE"
}

// UpdateProof records one add or delete: the element, the digests before
// and after, and for deletes the membership proof that grants the right to
// delete.
type UpdateProof struct {
	Op         UpdateOperation
	Element    int64
	OldDigest  *Digest
	NewDigest  *Digest
	Membership *MembershipProof
	Valid      bool
}

func (p *UpdateProof) ToBytes() []byte {
	buf := bytes.NewBuffer([]byte{})
	buf.WriteByte(byte(p.Op))
	if p.Valid {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	elemBuf := make([]byte, 8)
	binary.BigEndian.PutUint64(elemBuf, uint64(p.Element))
	buf.Write(elemBuf)
	buf.Write(p.OldDigest.ToBytes())
	buf.Write(p.NewDigest.ToBytes())
	if p.Membership != nil {
		buf.WriteByte(1)
		buf.Write(p.Membership.ToBytes())
	} else {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func (p *UpdateProof) FromBytes(input []byte) (*UpdateProof, error) {
	const fixed = 1 + 1 + 8 + 48 + 48 + 1
	if len(input) < fixed {
		return nil, errors.New("malformed update proof encoding")
	}
	if input[0] > byte(OpDelete) {
		return nil, errors.New("unknown update operation")
	}
	p.Op = UpdateOperation(input[0])
	p.Valid = input[1] == 1
	p.Element = int64(binary.BigEndian.Uint64(input[2:10]))
	oldDigest, err := new(Digest).FromBytes(input[10:58])
	if err != nil {
		return nil, err
	}
	newDigest, err := new(Digest).FromBytes(input[58:106])
	if err != nil {
		return nil, err
	}
	p.OldDigest = oldDigest
	p.NewDigest = newDigest
	p.Membership = nil
	if input[106] == 1 {
		membership, err := new(MembershipProof).FromBytes(input[107:])
		if err != nil {
			return nil, err
		}
		p.Membership = membership
	} else if len(input) != fixed {
		return nil, errors.New("trailing bytes in update proof encoding")
	}
	return p, nil
}

// IntersectionProof attests I = A ∩ B: the intersection digest, the
// quotient witnesses for both subset sides, and the Bezout witnesses for
// disjointness of the remainders.
type IntersectionProof struct {
	IntersectionDigest *Digest
	WitnessQA          *PointG2
	WitnessQB          *PointG2
	WitnessA           *PointG1
	WitnessB           *PointG1
	Valid              bool
}

func (p *IntersectionProof) ToBytes() []byte {
	group1 := NewG1()
	group2 := NewG2()
	buf := bytes.NewBuffer([]byte{})
	if p.Valid {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	buf.Write(p.IntersectionDigest.ToBytes())
	buf.Write(group2.ToCompressed(p.WitnessQA))
	buf.Write(group2.ToCompressed(p.WitnessQB))
	buf.Write(group1.ToCompressed(p.WitnessA))
	buf.Write(group1.ToCompressed(p.WitnessB))
	return buf.Bytes()
}

func (p *IntersectionProof) FromBytes(input []byte) (*IntersectionProof, error) {
	if len(input) != 1+48+96+96+48+48 {
		return nil, errors.New("malformed intersection proof encoding")
	}
	group1 := NewG1()
	group2 := NewG2()
	p.Valid = input[0] == 1
	digest, err := new(Digest).FromBytes(input[1:49])
	if err != nil {
		return nil, err
	}
	p.IntersectionDigest = digest
	if p.WitnessQA, err = group2.FromCompressed(input[49:145]); err != nil {
		return nil, err
	}
	if p.WitnessQB, err = group2.FromCompressed(input[145:241]); err != nil {
		return nil, err
	}
	if p.WitnessA, err = group1.FromCompressed(input[241:289]); err != nil {
		return nil, err
	}
	if p.WitnessB, err = group1.FromCompressed(input[289:337]); err != nil {
		return nil, err
	}
	return p, nil
}
