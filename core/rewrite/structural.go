package rewrite

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// descendChildren implements spec section 4.6's per-variant structural
// rewrite step: bottom-up normalization of a node's children, reconstructed
// through each variant's own constructor. RulesetRef, OperatorRef,
// NamedRootType, a standalone AlgProp, and BindingsAtom have no rewritable
// children in this model (they're resolved by name, or already a result
// envelope) and pass through unchanged.
func (c *call) descendChildren(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
	switch v := a.(type) {
	case *atom.Literal:
		typ, changed := c.rewriteToQuiescence(ctx, v.Type(), binds)
		if !changed {
			return a, false
		}
		return v.WithType(typ), true

	case *atom.Variable:
		if bound, ok := binds.Lookup(v.Name); ok {
			return bound, true
		}
		typ, changed := c.rewriteToQuiescence(ctx, v.Type(), binds)
		if !changed {
			return a, false
		}
		return v.WithType(typ), true

	case *atom.MetaVariable:
		if bound, ok := binds.Lookup(v.Name); ok {
			return bound, true
		}
		typ, changed := c.rewriteToQuiescence(ctx, v.Type(), binds)
		if !changed {
			return a, false
		}
		return v.WithType(typ), true

	case *atom.AtomSeq:
		return c.rewriteAtomSeq(ctx, v, binds)

	case atom.ApplyAtom:
		result, changed, err := c.rebuildApply(ctx, v, binds)
		if err != nil {
			// The smart constructor's own errors (unbounded recursion, a
			// native handler's error) have no Outcome-style channel at
			// this layer; leave the node untouched rather than losing
			// the atom, matching the timeout path's "return the current
			// intermediate atom" posture (spec section 5).
			return a, false
		}
		return result, changed

	case *atom.Lambda:
		body, changed := c.rewriteToQuiescence(ctx, v.Body, binds)
		if !changed {
			return a, false
		}
		return v.WithBody(body), true

	case *atom.MapPair:
		left, leftChanged := c.rewriteToQuiescence(ctx, v.Left, binds)
		right, rightChanged := c.rewriteToQuiescence(ctx, v.Right, binds)
		if !leftChanged && !rightChanged {
			return a, false
		}
		return atom.NewMapPair(left, right, v.Type()), true

	case *atom.MatchAtom:
		content, changed := c.rewriteToQuiescence(ctx, v.Content, binds)
		if !changed {
			return a, false
		}
		return atom.NewMatchAtom(content, v.Type()), true

	case *atom.SpecialForm:
		content, changed := c.rewriteToQuiescence(ctx, v.Content, binds)
		if !changed {
			return a, false
		}
		return atom.NewSpecialForm(v.Tag, content, v.Type()), true

	default:
		// RulesetRef, OperatorRef, NamedRootType, a standalone AlgProp,
		// BindingsAtom: no children this model rewrites.
		return a, false
	}
}

// rewriteAtomSeq rewrites an AtomSeq's algebraic-property descriptor and
// its elements, rebuilding (and renormalizing, via NewAtomSeq) iff
// anything changed.
func (c *call) rewriteAtomSeq(ctx context.Context, v *atom.AtomSeq, binds *atom.Bindings) (atom.Atom, bool) {
	props, propsChanged := c.rewriteAlgProp(ctx, v.Props, binds)

	elems := make([]atom.Atom, len(v.Elements))
	elemsChanged := false
	for i, e := range v.Elements {
		c.engine.Trace.Push(c.session, v, e)
		rewritten, changed := c.rewriteToQuiescence(ctx, e, binds)
		c.engine.Trace.Pop(c.session, v, rewritten)
		elems[i] = rewritten
		if changed {
			elemsChanged = true
		}
	}

	if !propsChanged && !elemsChanged {
		return v, false
	}
	return atom.NewAtomSeq(props, elems, v.Type()), true
}

// rewriteAlgProp rewrites each of an AlgProp's (at most five) optional
// component atoms.
func (c *call) rewriteAlgProp(ctx context.Context, p *atom.AlgProp, binds *atom.Bindings) (*atom.AlgProp, bool) {
	rewriteOpt := func(x atom.Atom) (atom.Atom, bool) {
		if x == nil {
			return nil, false
		}
		return c.rewriteToQuiescence(ctx, x, binds)
	}

	assoc, assocChanged := rewriteOpt(p.Associative)
	comm, commChanged := rewriteOpt(p.Commutative)
	idem, idemChanged := rewriteOpt(p.Idempotent)
	absorber, absorberChanged := rewriteOpt(p.Absorber)
	identity, identityChanged := rewriteOpt(p.Identity)

	if !assocChanged && !commChanged && !idemChanged && !absorberChanged && !identityChanged {
		return p, false
	}
	return atom.NewAlgProp(p.Type(), assoc, comm, idem, absorber, identity), true
}
