package accumulator

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/ckacc/elementmap"
	"github.com/takakv/ckacc/group"
	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/scalar"
	"github.com/takakv/ckacc/witness"
)

func newTestAccumulator(t *testing.T) (*Accumulator, group.Group, *scalar.Scalar) {
	t.Helper()
	g := group.SecP256k1()
	c, err := scalar.Random(g.N())
	require.NoError(t, err)
	acc, err := New(g, hashfn.SHA256, c)
	require.NoError(t, err)
	return acc, g, c
}

// expectedZ recomputes g · ∏(e+c) directly, independent of Accumulator's
// incremental bookkeeping, to cross-check P1.
func expectedZ(g group.Group, c *scalar.Scalar, elems [][]byte) group.Element {
	prod := scalar.One(g.N())
	for _, d := range elems {
		e := elementmap.FromBytes(hashfn.SHA256, d, g.N())
		prod = prod.Mul(e.Add(c))
	}
	return g.Element().Scale(g.Generator(), prod.BigInt())
}

func TestCommitmentSoundness(t *testing.T) {
	acc, g, c := newTestAccumulator(t)

	elems := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	for _, d := range elems {
		_, err := acc.Add(d)
		require.NoError(t, err)
	}

	require.True(t, acc.Z().IsEqual(expectedZ(g, c, elems)))
}

func TestWitnessVerificationAfterAdd(t *testing.T) {
	acc, _, _ := newTestAccumulator(t)

	ua, err := acc.Add([]byte("a"))
	require.NoError(t, err)

	ub, err := acc.Add([]byte("b"))
	require.NoError(t, err)
	require.False(t, acc.Verify(ua.Witness()), "adding b invalidates a's witness")
	require.True(t, acc.Verify(ub.Witness()))

	w, err := acc.Prove([]byte("b"))
	require.NoError(t, err)
	require.True(t, acc.Verify(w))
}

func TestNonMembershipAfterDelete(t *testing.T) {
	acc, _, _ := newTestAccumulator(t)

	ua, err := acc.Add([]byte("a"))
	require.NoError(t, err)

	_, err = acc.Del(ua.Witness())
	require.NoError(t, err)

	require.False(t, acc.Verify(ua.Witness()))
}

func TestAddDelIsInverse(t *testing.T) {
	acc, _, _ := newTestAccumulator(t)

	_, err := acc.Add([]byte("seed"))
	require.NoError(t, err)

	zBefore, qBefore, iBefore := acc.Z(), acc.Q(), acc.I()

	ua, err := acc.Add([]byte("x"))
	require.NoError(t, err)
	_, err = acc.Del(ua.Witness())
	require.NoError(t, err)

	require.True(t, acc.Z().IsEqual(zBefore))
	require.True(t, acc.Q().IsEqual(qBefore))
	require.Equal(t, *iBefore, *acc.I())
}

func TestVerifyHasNoSideEffects(t *testing.T) {
	acc, _, _ := newTestAccumulator(t)
	ua, err := acc.Add([]byte("a"))
	require.NoError(t, err)

	zBefore := acc.Z()
	for i := 0; i < 5; i++ {
		_ = acc.Verify(ua.Witness())
	}
	require.True(t, acc.Z().IsEqual(zBefore))
}

func TestOrderInvariance(t *testing.T) {
	g := group.SecP256k1()
	c, err := scalar.Random(g.N())
	require.NoError(t, err)

	acc1, err := New(g, hashfn.SHA256, scalar.New(c.BigInt(), g.N()))
	require.NoError(t, err)
	acc2, err := New(g, hashfn.SHA256, scalar.New(c.BigInt(), g.N()))
	require.NoError(t, err)

	_, err = acc1.Add([]byte("d1"))
	require.NoError(t, err)
	_, err = acc1.Add([]byte("d2"))
	require.NoError(t, err)

	_, err = acc2.Add([]byte("d2"))
	require.NoError(t, err)
	_, err = acc2.Add([]byte("d1"))
	require.NoError(t, err)

	require.True(t, acc1.Z().IsEqual(acc2.Z()))
	require.True(t, acc1.Q().IsEqual(acc2.Q()))
	require.Equal(t, *acc1.I(), *acc2.I())
}

func TestCrossAccumulatorWitnessRejected(t *testing.T) {
	acc1, _, _ := newTestAccumulator(t)
	acc2, _, _ := newTestAccumulator(t)

	ua, err := acc1.Add([]byte("a"))
	require.NoError(t, err)
	_, err = acc2.Add([]byte("a"))
	require.NoError(t, err)

	require.False(t, acc2.Verify(ua.Witness()))
}

func TestDelRejectsNonMember(t *testing.T) {
	acc, g, _ := newTestAccumulator(t)
	_, err := acc.Add([]byte("a"))
	require.NoError(t, err)

	bogus := witness.Witness{D: []byte("a"), V: g.Identity(), W: g.Identity()}
	_, err = acc.Del(bogus)
	require.ErrorIs(t, err, ErrNotAMember)
}

func TestDelTracksQUntilEmpty(t *testing.T) {
	acc, g, _ := newTestAccumulator(t)

	ua, err := acc.Add([]byte("only"))
	require.NoError(t, err)
	require.Equal(t, 0, *acc.I())

	_, err = acc.Del(ua.Witness())
	require.NoError(t, err)

	require.Nil(t, acc.I())
	require.True(t, acc.Q().IsEqual(g.Identity()))
	require.True(t, acc.Z().IsEqual(g.Generator()))
}

func TestBigIntSanity(t *testing.T) {
	n := group.SecP256k1().N()
	require.True(t, n.Cmp(big.NewInt(0)) > 0)
}
