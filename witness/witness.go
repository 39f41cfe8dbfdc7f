// Package witness defines the value records exchanged between an
// Accumulator and a Prover: the two update messages emitted by add/del, and
// the witness records produced by prove (spec.md §3).
package witness

import "github.com/takakv/ckacc/group"

// UpdateMessage is the common shape Prover.Update consumes: both
// WitnessUpdate (insertion) and Update (deletion) implement it. Aux is the
// Q point carried by the message, and Cursor is the accumulator's cursor
// *after* the operation that produced the message (nil when the set is
// empty).
type UpdateMessage interface {
	Elem() []byte
	Commitment() group.Element
	Aux() group.Element
	Cursor() *int
}

// WitnessUpdate is emitted by Accumulator.Add. V and W satisfy the
// Accumulator.Add-specific identity w = v·c, so a recipient can feed the
// pair straight into either verification form (spec.md §4.2.3).
type WitnessUpdate struct {
	D []byte
	Z group.Element
	V group.Element
	W group.Element
	Q group.Element
	I *int
}

func (u WitnessUpdate) Elem() []byte { return u.D }
func (u WitnessUpdate) Commitment() group.Element { return u.Z }
func (u WitnessUpdate) Aux() group.Element { return u.Q }
func (u WitnessUpdate) Cursor() *int { return u.I }

// Witness returns the {d, v, w} triple carried by this update, as emitted
// directly by Accumulator.Add alongside the update message.
func (u WitnessUpdate) Witness() Witness {
	return Witness{D: u.D, V: u.V, W: u.W}
}

// Update is emitted by Accumulator.Del.
type Update struct {
	D []byte
	Z group.Element
	Q group.Element
	I *int
}

func (u Update) Elem() []byte { return u.D }
func (u Update) Commitment() group.Element { return u.Z }
func (u Update) Aux() group.Element { return u.Q }
func (u Update) Cursor() *int { return u.I }

// Witness is a membership proof for d against some commitment z: produced
// by Accumulator.Prove or Prover.Prove, and checked by either side's
// Verify. The two producers fill V and W under different verification
// equations (spec.md §4.2.3); Accumulator.Verify checks the multiplicative
// form v·(e+c) == z, Prover.Verify checks the additive form v·e + w == z.
type Witness struct {
	D []byte
	V group.Element
	W group.Element
}
