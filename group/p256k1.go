package group

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
)

type p256k1Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256k1Point struct {
	curve *p256k1Group
	val   *p256.P256
}

func (g *p256k1Group) Name() string {
	return g.name
}

func (g *p256k1Group) P() *big.Int {
	return g.fieldOrder
}

func (g *p256k1Group) N() *big.Int {
	return g.curveOrder
}

func (g *p256k1Group) Generator() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).ScalarBaseMult(big.NewInt(1)),
	}
}

func (g *p256k1Group) Identity() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).SetInfinity(),
	}
}

func (g *p256k1Group) Random() Element {
	r, _ := rand.Int(rand.Reader, g.curveOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *p256k1Group) Element() Element {
	p := new(p256k1Point)
	p.curve = g
	p.val = new(p256.P256).SetInfinity()
	return p
}

func (e *p256k1Point) check(a Element) *p256k1Point {
	ey, ok := a.(*p256k1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

func (e *p256k1Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = new(p256.P256).Multiply(ca.val, cb.val)
	return e
}

func (e *p256k1Point) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *p256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).ScalarMult(ca.val, big.NewInt(-1))
	return e
}

func (e *p256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	if e.IsIdentity() || cb.IsIdentity() {
		return e.IsIdentity() == cb.IsIdentity()
	}
	return e.val.X.Cmp(cb.val.X) == 0 && e.val.Y.Cmp(cb.val.Y) == 0
}

func (e *p256k1Point) Set(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).Add(new(p256.P256).SetInfinity(), ca.val)
	return e
}

// MarshalBinary encodes the point as a 1-byte tag (0 = identity, 4 =
// uncompressed) followed by fixed-width 32-byte X and Y coordinates.
func (e *p256k1Point) MarshalBinary() ([]byte, error) {
	if e.IsIdentity() {
		return []byte{0}, nil
	}
	out := make([]byte, 1+64)
	out[0] = 4
	xb := e.val.X.Bytes()
	yb := e.val.Y.Bytes()
	copy(out[1+32-len(xb):1+32], xb)
	copy(out[1+64-len(yb):1+64], yb)
	return out, nil
}

func (e *p256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("p256k1: empty encoding")
	}
	if data[0] == 0 {
		e.val = new(p256.P256).SetInfinity()
		return nil
	}
	if len(data) != 1+64 {
		return fmt.Errorf("p256k1: invalid encoding length %d", len(data))
	}
	e.val = new(p256.P256).SetInfinity()
	e.val.X = new(big.Int).SetBytes(data[1:33])
	e.val.Y = new(big.Int).SetBytes(data[33:65])
	return nil
}

func (e *p256k1Point) SetBytes(b []byte) Element {
	_ = e.UnmarshalBinary(b)
	return e
}

func (e *p256k1Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	e.val = new(p256.P256).ScalarMult(ca.val, s)
	return e
}

func (e *p256k1Point) BaseScale(s *big.Int) Element {
	e.val = new(p256.P256).ScalarBaseMult(s)
	return e
}

func (e *p256k1Point) GroupOrder() *big.Int {
	return e.curve.curveOrder
}

func (e *p256k1Point) FieldOrder() *big.Int {
	return e.curve.fieldOrder
}

func (e *p256k1Point) String() string {
	return e.val.String()
}

func (e *p256k1Point) IsIdentity() bool {
	if e.val.X == nil || e.val.Y == nil {
		return true
	}
	return e.val.X.Sign() == 0 && e.val.Y.Sign() == 0
}

func (e *p256k1Point) MarshalJSON() ([]byte, error) {
	return marshalElementJSON(e)
}

func (e *p256k1Point) UnmarshalJSON(data []byte) error {
	return unmarshalElementJSON(data, e)
}

// SecP256k1 is the curve spec.md §8 fixes for its testable properties,
// backed by the teacher's own secp256k1 arithmetic.
func SecP256k1() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	G := new(p256k1Group)
	G.fieldOrder = p
	G.curveOrder = n
	G.name = "secp256k1"
	return G
}
