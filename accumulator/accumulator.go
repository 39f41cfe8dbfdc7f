// Package accumulator implements the trusted side of the dynamic
// cryptographic accumulator (spec.md §4.2): it holds the secret scalar c
// and mutates the commitment z on Add/Del, producing update messages the
// Prover replays and witnesses either side can verify.
package accumulator

import (
	"errors"

	"github.com/takakv/ckacc/elementmap"
	"github.com/takakv/ckacc/group"
	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/log"
	"github.com/takakv/ckacc/metrics"
	"github.com/takakv/ckacc/scalar"
	"github.com/takakv/ckacc/witness"
)

var (
	// ErrInvalidArgument is returned when an input fails its type/shape
	// contract. No state change occurs.
	ErrInvalidArgument = errors.New("accumulator: invalid argument")
	// ErrNotAMember is returned by Del when the supplied witness does not
	// verify against the current commitment. No state change occurs.
	ErrNotAMember = errors.New("accumulator: witness is not a member")
	// ErrArithmeticFailure is returned when a required modular inverse
	// does not exist (e+c ≡ 0 mod n, or c itself has no inverse). This
	// implies a broken invariant; the instance is poisoned afterward.
	ErrArithmeticFailure = errors.New("accumulator: arithmetic failure")
	// ErrPoisoned is returned by any mutating operation once the
	// instance has hit ErrArithmeticFailure.
	ErrPoisoned = errors.New("accumulator: instance is poisoned")
)

// Accumulator is the trusted party of spec.md §2: it holds secret c and
// the running commitment z, and is the only party that can add or delete
// elements. The zero value is not usable; construct with New. An
// Accumulator is not safe for concurrent use; callers serialize access.
type Accumulator struct {
	grp group.Group
	h   hashfn.Func
	c   *scalar.Scalar

	z group.Element
	q group.Element
	i *int

	poisoned bool

	log     *log.Logger
	metrics *metrics.Counters
}

// New constructs an Accumulator over grp using h as the hash-to-scalar
// backend. If c is nil, a secret is sampled uniformly from [1, n-1]
// (spec.md §3). The initial state is the empty set: z = g, Q = O, i = ⊥.
func New(grp group.Group, h hashfn.Func, c *scalar.Scalar) (*Accumulator, error) {
	if grp == nil || h == nil {
		return nil, ErrInvalidArgument
	}
	if c == nil {
		var err error
		c, err = scalar.Random(grp.N())
		if err != nil {
			return nil, err
		}
	}
	return &Accumulator{
		grp: grp,
		h:   h,
		c:   c,
		z:   grp.Generator(),
		q:   grp.Identity(),
		i:   nil,
	}, nil
}

// WithLogger attaches a logger for diagnostic output; nil is a valid,
// no-op logger.
func (a *Accumulator) WithLogger(l *log.Logger) *Accumulator {
	a.log = l
	return a
}

// WithMetrics attaches an operation counter; nil disables counting.
func (a *Accumulator) WithMetrics(m *metrics.Counters) *Accumulator {
	a.metrics = m
	return a
}

// Z returns the current commitment.
func (a *Accumulator) Z() group.Element { return a.z }

// Q returns the current auxiliary point.
func (a *Accumulator) Q() group.Element { return a.q }

// I returns the current cursor, nil when the accumulated set is empty.
func (a *Accumulator) I() *int {
	if a.i == nil {
		return nil
	}
	v := *a.i
	return &v
}

// Poisoned reports whether a prior ArithmeticFailure has disabled further
// mutation.
func (a *Accumulator) Poisoned() bool { return a.poisoned }

func intPtr(v int) *int { return &v }

func (a *Accumulator) scale(x group.Element, s *scalar.Scalar) group.Element {
	return a.grp.Element().Scale(x, s.BigInt())
}

func (a *Accumulator) add2(x, y group.Element) group.Element {
	return a.grp.Element().Add(x, y)
}

func (a *Accumulator) mapElem(d []byte) *scalar.Scalar {
	return elementmap.FromBytes(a.h, d, a.grp.N())
}

func (a *Accumulator) poison() {
	a.poisoned = true
	if a.log != nil {
		a.log.Error("accumulator poisoned: arithmetic invariant broken")
	}
}

// Add maps d to e = H(d) mod n, folds (e+c) into the commitment, and
// returns the update message a Prover needs to track both the new
// commitment and a witness for d (spec.md §4.2).
func (a *Accumulator) Add(d []byte) (witness.WitnessUpdate, error) {
	if a.poisoned {
		return witness.WitnessUpdate{}, ErrPoisoned
	}
	if d == nil {
		return witness.WitnessUpdate{}, ErrInvalidArgument
	}

	e := a.mapElem(d)
	ePlusC := e.Add(a.c)
	if ePlusC.IsZero() {
		a.poison()
		return witness.WitnessUpdate{}, ErrArithmeticFailure
	}

	v := a.grp.Element().Set(a.z)
	w := a.scale(a.z, a.c)

	newZ := a.scale(a.z, ePlusC)

	var newQ group.Element
	if a.i == nil {
		newQ = a.scale(a.grp.Generator(), a.c)
	} else {
		newQ = a.scale(a.q, a.c)
	}

	var newI *int
	if a.i == nil {
		newI = intPtr(0)
	} else {
		newI = intPtr(*a.i + 1)
	}

	a.z, a.q, a.i = newZ, newQ, newI

	if a.metrics != nil {
		a.metrics.Adds.Add(1)
	}
	if a.log != nil {
		a.log.Debug("accumulator add", "i", *a.i)
	}

	return witness.WitnessUpdate{
		D: d,
		Z: a.grp.Element().Set(newZ),
		V: v,
		W: w,
		Q: a.grp.Element().Set(newQ),
		I: intPtr(*newI),
	}, nil
}

// Del verifies w against the current commitment, then removes the
// element it attests to, returning the update message a Prover needs
// (spec.md §4.2). Returns ErrNotAMember without mutating state if w does
// not verify.
func (a *Accumulator) Del(w witness.Witness) (witness.Update, error) {
	if a.poisoned {
		return witness.Update{}, ErrPoisoned
	}
	if w.D == nil || w.V == nil {
		return witness.Update{}, ErrInvalidArgument
	}
	if !a.Verify(w) {
		return witness.Update{}, ErrNotAMember
	}

	e := a.mapElem(w.D)
	ePlusC := e.Add(a.c)
	ePlusCInv, err := ePlusC.Inverse()
	if err != nil {
		a.poison()
		return witness.Update{}, ErrArithmeticFailure
	}
	cInv, err := a.c.Inverse()
	if err != nil {
		a.poison()
		return witness.Update{}, ErrArithmeticFailure
	}

	newZ := a.scale(a.z, ePlusCInv)

	var newQ group.Element
	var newI *int
	if a.i != nil && *a.i == 0 {
		newQ = a.grp.Identity()
		newI = nil
	} else {
		newQ = a.scale(a.q, cInv)
		newI = intPtr(*a.i - 1)
	}

	a.z, a.q, a.i = newZ, newQ, newI

	if a.metrics != nil {
		a.metrics.Dels.Add(1)
	}
	if a.log != nil {
		a.log.Debug("accumulator del")
	}

	return witness.Update{
		D: w.D,
		Z: a.grp.Element().Set(newZ),
		Q: a.grp.Element().Set(newQ),
		I: a.I(),
	}, nil
}

// Verify checks w against the current commitment using the multiplicative
// form v·(e+c) == z (spec.md §4.2.3). It never mutates state.
func (a *Accumulator) Verify(w witness.Witness) bool {
	if w.D == nil || w.V == nil {
		return false
	}
	e := a.mapElem(w.D)
	ePlusC := e.Add(a.c)
	lhs := a.scale(w.V, ePlusC)
	if a.metrics != nil {
		a.metrics.Verifies.Add(1)
	}
	ok := lhs.IsEqual(a.z)
	if !ok && a.metrics != nil {
		a.metrics.VerifyFailures.Add(1)
	}
	return ok
}

// Prove produces a fresh witness for d against the current commitment,
// using the secret directly (spec.md §4.2): v = z·(e+c)⁻¹ and w = z·e⁻¹.
// The witness satisfies the multiplicative form v·(e+c) == z checked by
// Verify; w does not in general satisfy the additive form v·e + w == z
// checked by Prover.Verify.
func (a *Accumulator) Prove(d []byte) (witness.Witness, error) {
	if a.poisoned {
		return witness.Witness{}, ErrPoisoned
	}
	if d == nil {
		return witness.Witness{}, ErrInvalidArgument
	}

	e := a.mapElem(d)
	ePlusC := e.Add(a.c)
	ePlusCInv, err := ePlusC.Inverse()
	if err != nil {
		a.poison()
		return witness.Witness{}, ErrArithmeticFailure
	}
	eInv, err := e.Inverse()
	if err != nil {
		a.poison()
		return witness.Witness{}, ErrArithmeticFailure
	}

	v := a.scale(a.z, ePlusCInv)
	w := a.scale(a.z, eInv)

	if a.metrics != nil {
		a.metrics.Proves.Add(1)
	}

	return witness.Witness{D: d, V: v, W: w}, nil
}
