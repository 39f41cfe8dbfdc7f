// Package prover implements the untrusted side of the accumulator
// (spec.md §4.3): it replays the Accumulator's update stream and, without
// ever learning the secret c, can reconstruct a membership witness for any
// currently-accumulated element.
package prover

import (
	"errors"

	"github.com/takakv/ckacc/elementmap"
	"github.com/takakv/ckacc/esp"
	"github.com/takakv/ckacc/group"
	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/log"
	"github.com/takakv/ckacc/scalar"
	"github.com/takakv/ckacc/witness"
)

var (
	// ErrInvalidArgument is returned when an input fails its type/shape
	// contract.
	ErrInvalidArgument = errors.New("prover: invalid argument")
	// ErrUnknownElement is returned by Prove when d was never observed as
	// a current member via the update stream (spec.md §7).
	ErrUnknownElement = errors.New("prover: element not currently accumulated")
	// ErrUntracked is returned by Update when a deletion message refers to
	// an element the Prover never saw added (spec.md §9: undefined in the
	// source; this implementation surfaces it instead).
	ErrUntracked = errors.New("prover: deletion for untracked element")
)

// Prover is the untrusted party of spec.md §2. It tracks the multiset of
// accumulated scalars, the published power sequence Q[0..i+1], and the
// latest commitment, all learned purely from update messages. A Prover is
// not safe for concurrent use; callers serialize access.
type Prover struct {
	grp group.Group
	h   hashfn.Func

	a []*scalar.Scalar
	q []group.Element
	i *int
	z group.Element

	log *log.Logger
}

// New constructs a Prover over grp using h as the hash-to-scalar backend.
// Q[0] = g is installed immediately and never overwritten (spec.md §4.3).
func New(grp group.Group, h hashfn.Func) (*Prover, error) {
	if grp == nil || h == nil {
		return nil, ErrInvalidArgument
	}
	return &Prover{
		grp: grp,
		h:   h,
		q:   []group.Element{grp.Generator()},
		z:   grp.Generator(),
	}, nil
}

// WithLogger attaches a logger for diagnostic output; nil is a valid,
// no-op logger.
func (p *Prover) WithLogger(l *log.Logger) *Prover {
	p.log = l
	return p
}

// Z returns the most recently observed commitment.
func (p *Prover) Z() group.Element { return p.z }

// I returns the current cursor, nil when the tracked set is empty.
func (p *Prover) I() *int {
	if p.i == nil {
		return nil
	}
	v := *p.i
	return &v
}

func (p *Prover) mapElem(d []byte) *scalar.Scalar {
	return elementmap.FromBytes(p.h, d, p.grp.N())
}

func (p *Prover) ensureLen(idx int) {
	for len(p.q) <= idx {
		p.q = append(p.q, nil)
	}
}

// Update folds an insertion (WitnessUpdate) or deletion (Update) message
// into the tracked state, per spec.md §4.3. Messages must be observed in
// the order the Accumulator emitted them.
func (p *Prover) Update(msg witness.UpdateMessage) error {
	if msg == nil || msg.Elem() == nil {
		return ErrInvalidArgument
	}

	e := p.mapElem(msg.Elem())
	newI := msg.Cursor()

	isInsertion := p.i == nil || (newI != nil && *newI >= *p.i)

	if isInsertion {
		p.a = append(p.a, e)
	} else {
		idx := -1
		for k, x := range p.a {
			if x.Equal(e) {
				idx = k
				break
			}
		}
		if idx < 0 {
			return ErrUntracked
		}
		p.a = append(p.a[:idx], p.a[idx+1:]...)
	}

	var qIdx int
	if newI == nil {
		qIdx = 1
	} else {
		qIdx = *newI + 1
	}
	p.ensureLen(qIdx)
	p.q[qIdx] = msg.Aux()

	p.i = newI
	p.z = msg.Commitment()

	if p.log != nil {
		p.log.Debug("prover update", "insertion", isInsertion)
	}

	return nil
}

// Prove reconstructs a witness for d from the tracked state alone, via the
// elementary-symmetric-polynomial identity of spec.md §4.3/§4.4. Returns
// ErrUnknownElement if d is not currently tracked as a member.
func (p *Prover) Prove(d []byte) (witness.Witness, error) {
	if d == nil {
		return witness.Witness{}, ErrInvalidArgument
	}
	e := p.mapElem(d)

	idx := -1
	for k, x := range p.a {
		if x.Equal(e) {
			idx = k
			break
		}
	}
	if idx < 0 {
		return witness.Witness{}, ErrUnknownElement
	}

	aPrime := make([]*scalar.Scalar, 0, len(p.a)-1)
	aPrime = append(aPrime, p.a[:idx]...)
	aPrime = append(aPrime, p.a[idx+1:]...)

	n := p.grp.N()
	sigma := esp.Coefficients(aPrime, n)

	v := p.grp.Identity()
	w := p.grp.Identity()

	for j := 0; j <= *p.i; j++ {
		coeff := esp.At(sigma, j, n)
		if coeff.IsZero() {
			continue
		}
		vIdx := *p.i - j
		wIdx := *p.i - j + 1
		v = p.grp.Element().Add(v, p.grp.Element().Scale(p.q[vIdx], coeff.BigInt()))
		w = p.grp.Element().Add(w, p.grp.Element().Scale(p.q[wIdx], coeff.BigInt()))
	}

	return witness.Witness{D: d, V: v, W: w}, nil
}

// Verify checks w against the last observed commitment using the additive
// form v·e + w == z (spec.md §4.2.3).
func (p *Prover) Verify(w witness.Witness) bool {
	if w.D == nil || w.V == nil || w.W == nil {
		return false
	}
	e := p.mapElem(w.D)
	lhs := p.grp.Element().Add(p.grp.Element().Scale(w.V, e.BigInt()), w.W)
	return lhs.IsEqual(p.z)
}
