// Package scalar gives the accumulator's Z_n arithmetic a named type
// instead of inlined big.Int calls scattered through call sites.
package scalar

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrZero is returned by Inverse when the receiver has no modular inverse,
// i.e. is congruent to 0 mod n.
var ErrZero = errors.New("scalar: inverse of zero")

// Scalar is an element of Z_n for a fixed modulus n. Values are always kept
// reduced to [0, n).
type Scalar struct {
	v *big.Int
	n *big.Int
}

// New reduces v modulo n and wraps it.
func New(v *big.Int, n *big.Int) *Scalar {
	r := new(big.Int).Mod(v, n)
	return &Scalar{v: r, n: n}
}

// Zero returns the additive identity of Z_n.
func Zero(n *big.Int) *Scalar {
	return &Scalar{v: big.NewInt(0), n: n}
}

// One returns the multiplicative identity of Z_n.
func One(n *big.Int) *Scalar {
	return &Scalar{v: big.NewInt(1), n: n}
}

// FromBytesMod reduces a big-endian byte string modulo n.
func FromBytesMod(b []byte, n *big.Int) *Scalar {
	return New(new(big.Int).SetBytes(b), n)
}

// Random samples uniformly from [1, n-1], per spec.md §6.1.
func Random(n *big.Int) (*Scalar, error) {
	upper := new(big.Int).Sub(n, big.NewInt(1))
	r, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return nil, err
	}
	r.Add(r, big.NewInt(1))
	return &Scalar{v: r, n: n}, nil
}

// Modulus returns n.
func (s *Scalar) Modulus() *big.Int {
	return s.n
}

// BigInt returns a copy of the underlying value, reduced to [0, n).
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// Add returns s + t mod n.
func (s *Scalar) Add(t *Scalar) *Scalar {
	return New(new(big.Int).Add(s.v, t.v), s.n)
}

// Sub returns s - t mod n.
func (s *Scalar) Sub(t *Scalar) *Scalar {
	return New(new(big.Int).Sub(s.v, t.v), s.n)
}

// Mul returns s * t mod n.
func (s *Scalar) Mul(t *Scalar) *Scalar {
	return New(new(big.Int).Mul(s.v, t.v), s.n)
}

// Inverse returns the modular inverse of s, or ErrZero if s is 0 mod n.
func (s *Scalar) Inverse() (*Scalar, error) {
	if s.v.Sign() == 0 {
		return nil, ErrZero
	}
	inv := new(big.Int).ModInverse(s.v, s.n)
	if inv == nil {
		return nil, ErrZero
	}
	return &Scalar{v: inv, n: s.n}, nil
}

// IsZero reports whether s is congruent to 0 mod n.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and t represent the same residue mod n.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.v.Cmp(t.v) == 0
}

// String returns the decimal representation of the residue.
func (s *Scalar) String() string {
	return s.v.String()
}
