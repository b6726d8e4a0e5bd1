// Package trace implements the optional visualization side-channel (spec
// Design Notes): an Observer interface core/rewrite calls into when a
// session configures one, and nothing else. No UI actor is
// implemented here — a REPL or GUI supplies its own Observer.
package trace

import (
	"github.com/elision/elision-sub001/core/atom"
	"github.com/google/uuid"
)

// Observer receives rewrite-session events. Every method receives the
// session ID it was invoked under, so a single Observer instance can be
// shared across concurrently running sessions (spec section 5).
type Observer interface {
	// Push is called when rewriting descends into a child atom.
	Push(session uuid.UUID, parent, child atom.Atom)
	// Pop is called when rewriting returns from a child atom back to its
	// parent, with the (possibly rewritten) child's final form.
	Pop(session uuid.UUID, parent, result atom.Atom)
	// NodeCreated is called whenever a rule firing or a rewrite of a
	// node's children produces a new atom.
	NodeCreated(session uuid.UUID, a atom.Atom)
	// RewriteStep is called whenever a rule successfully fires,
	// naming which one (ruleDescription is a short human label, not a
	// stable ID).
	RewriteStep(session uuid.UUID, before, after atom.Atom, ruleDescription string)
}

// NoopObserver discards every event; executor.New and rewrite.NewEngine
// substitute it for a nil observer so callers never need a nil check.
type NoopObserver struct{}

func (NoopObserver) Push(uuid.UUID, atom.Atom, atom.Atom)                 {}
func (NoopObserver) Pop(uuid.UUID, atom.Atom, atom.Atom)                  {}
func (NoopObserver) NodeCreated(uuid.UUID, atom.Atom)                     {}
func (NoopObserver) RewriteStep(uuid.UUID, atom.Atom, atom.Atom, string) {}
