// Package esp computes elementary symmetric polynomials of a scalar
// multiset, the combinatorial subroutine behind witness construction
// (spec.md §4.4).
package esp

import (
	"math/big"

	"github.com/takakv/ckacc/scalar"
)

// Coefficients returns [σ_0(xs), σ_1(xs), ..., σ_k(xs)] where k = len(xs)
// and σ_j(S) is the sum, over all size-j subsets of S, of the subset's
// element product (σ_0 = 1 by convention). It uses the incremental
// recurrence σ_j(S ∪ {x}) = σ_j(S) + x·σ_{j-1}(S), performing O(k²) scalar
// multiplications rather than the naive O(2^k) subset enumeration
// (spec.md §4.4, §9).
func Coefficients(xs []*scalar.Scalar, n *big.Int) []*scalar.Scalar {
	sigma := make([]*scalar.Scalar, 1, len(xs)+1)
	sigma[0] = scalar.One(n)

	for _, x := range xs {
		next := make([]*scalar.Scalar, len(sigma)+1)
		next[0] = scalar.One(n)
		for j := 1; j < len(sigma); j++ {
			next[j] = sigma[j].Add(x.Mul(sigma[j-1]))
		}
		next[len(sigma)] = x.Mul(sigma[len(sigma)-1])
		sigma = next
	}

	return sigma
}

// At returns σ_j(xs) given the full coefficient slice from Coefficients,
// treating out-of-range j (j > len(xs)) as 0 per spec.md §4.4.
func At(sigma []*scalar.Scalar, j int, n *big.Int) *scalar.Scalar {
	if j < 0 || j >= len(sigma) {
		return scalar.Zero(n)
	}
	return sigma[j]
}
