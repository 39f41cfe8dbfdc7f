package prover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/ckacc/accumulator"
	"github.com/takakv/ckacc/group"
	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/scalar"
	"github.com/takakv/ckacc/witness"
)

func newPair(t *testing.T) (*accumulator.Accumulator, *Prover, group.Group) {
	t.Helper()
	g := group.SecP256k1()
	c, err := scalar.Random(g.N())
	require.NoError(t, err)
	acc, err := accumulator.New(g, hashfn.SHA256, c)
	require.NoError(t, err)
	p, err := New(g, hashfn.SHA256)
	require.NoError(t, err)
	return acc, p, g
}

// TestProverTracksAccumulator replays an add/add/add/del/del/del stream and
// checks the prover's commitment and Q sequence track the accumulator's
// at every step (P8).
func TestProverTracksAccumulator(t *testing.T) {
	acc, p, _ := newPair(t)

	var updates []witness.WitnessUpdate
	for _, d := range [][]byte{[]byte("a"), []byte("b"), []byte("c")} {
		u, err := acc.Add(d)
		require.NoError(t, err)
		updates = append(updates, u)

		require.NoError(t, p.Update(u))
		require.True(t, p.Z().IsEqual(acc.Z()))
		require.Equal(t, *acc.I(), *p.I())
		require.True(t, p.q[*p.I()+1].IsEqual(acc.Q()))
	}

	for j := 0; j <= *acc.I()+1 && j < len(p.q); j++ {
		require.NotNil(t, p.q[j], "Q[%d] should have been installed by an update", j)
	}

	for k := len(updates) - 1; k >= 0; k-- {
		w, err := acc.Prove(updates[k].D)
		require.NoError(t, err)
		upd, err := acc.Del(w)
		require.NoError(t, err)

		require.NoError(t, p.Update(upd))
		require.True(t, p.Z().IsEqual(acc.Z()))
		qIdx := 1
		if acc.I() != nil {
			require.Equal(t, *acc.I(), *p.I())
			qIdx = *acc.I() + 1
		} else {
			require.Nil(t, p.I())
		}
		require.True(t, p.q[qIdx].IsEqual(acc.Q()))
	}
}

// TestWitnessReplay covers P3: witnesses the prover builds after full
// replay verify on both the accumulator and the prover's own check.
func TestWitnessReplay(t *testing.T) {
	acc, p, _ := newPair(t)

	for _, d := range [][]byte{[]byte("a"), []byte("b"), []byte("c")} {
		u, err := acc.Add(d)
		require.NoError(t, err)
		require.NoError(t, p.Update(u))
	}

	for _, d := range [][]byte{[]byte("a"), []byte("b"), []byte("c")} {
		w, err := p.Prove(d)
		require.NoError(t, err)
		require.True(t, acc.Verify(w), "accumulator should accept prover witness for %s", d)
		require.True(t, p.Verify(w), "prover should accept its own witness for %s", d)
	}
}

// TestFullLifecycleReplay mirrors spec.md §8's S1-S4 end-to-end scenario.
func TestFullLifecycleReplay(t *testing.T) {
	acc, p, g := newPair(t)

	ua, err := acc.Add([]byte("a"))
	require.NoError(t, err)
	require.True(t, acc.Verify(ua.Witness()))
	require.Equal(t, 0, *acc.I())
	require.NoError(t, p.Update(ua))

	ub, err := acc.Add([]byte("b"))
	require.NoError(t, err)
	require.NoError(t, p.Update(ub))
	uc, err := acc.Add([]byte("c"))
	require.NoError(t, err)
	require.NoError(t, p.Update(uc))

	require.False(t, acc.Verify(ua.Witness()))
	require.False(t, acc.Verify(ub.Witness()))
	require.True(t, acc.Verify(uc.Witness()))
	require.Equal(t, 2, *acc.I())

	for _, d := range [][]byte{[]byte("a"), []byte("b"), []byte("c")} {
		w, err := p.Prove(d)
		require.NoError(t, err)
		require.True(t, acc.Verify(w))
	}

	delC, err := acc.Del(uc.Witness())
	require.NoError(t, err)
	require.NoError(t, p.Update(delC))

	_, err = p.Prove([]byte("c"))
	require.ErrorIs(t, err, ErrUnknownElement)

	delB, err := acc.Del(ub.Witness())
	require.NoError(t, err)
	require.NoError(t, p.Update(delB))

	delA, err := acc.Del(ua.Witness())
	require.NoError(t, err)
	require.NoError(t, p.Update(delA))

	require.Nil(t, acc.I())
	require.True(t, acc.Q().IsEqual(g.Identity()))
	require.True(t, acc.Z().IsEqual(g.Generator()))

	require.False(t, acc.Verify(ua.Witness()))
	require.False(t, acc.Verify(ub.Witness()))
	require.False(t, acc.Verify(uc.Witness()))
}

// TestProveUnknownElement covers the Open Question resolution: proving an
// element never observed as a current member surfaces ErrUnknownElement
// rather than silently returning a witness that will fail to verify.
func TestProveUnknownElement(t *testing.T) {
	_, p, _ := newPair(t)
	_, err := p.Prove([]byte("never added"))
	require.ErrorIs(t, err, ErrUnknownElement)
}

func TestUpdateRejectsUntrackedDeletion(t *testing.T) {
	acc, p, _ := newPair(t)

	ua, err := acc.Add([]byte("a"))
	require.NoError(t, err)
	require.NoError(t, p.Update(ua))
	ub, err := acc.Add([]byte("b"))
	require.NoError(t, err)
	require.NoError(t, p.Update(ub))

	// A deletion message naming an element the prover never tracked, but
	// with a cursor that still reads as a deletion (< current i).
	forged := witness.Update{D: []byte("never-added"), Z: ub.Z, Q: ub.Q, I: ua.I}
	err = p.Update(forged)
	require.ErrorIs(t, err, ErrUntracked)
}
