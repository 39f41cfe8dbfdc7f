// Package elementmap implements spec.md §4.1's map(H, d) = H(d) mod n,
// total and deterministic over its input.
package elementmap

import (
	"math/big"

	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/scalar"
)

// FromBytes maps an opaque element d to its scalar e = H(d) mod n.
func FromBytes(h hashfn.Func, d []byte, n *big.Int) *scalar.Scalar {
	return scalar.FromBytesMod(h(d), n)
}

// FromString maps a text element via canonical_bytes, i.e. UTF-8 encoding
// (a no-op conversion, since Go strings are already UTF-8 byte sequences).
func FromString(h hashfn.Func, d string, n *big.Int) *scalar.Scalar {
	return FromBytes(h, []byte(d), n)
}
