package operator

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/rules"
)

// RulesetStrategy is a Rewriter that delegates to a fixed ruleset scope
// (spec section 4.6, "ruleset-strategy"): whoever constructs one closes
// Rewrite over the scope it should rewrite under, so this package never
// needs to know how a ruleset scope is re-entered.
type RulesetStrategy struct {
	Name    string
	Rewrite rules.RewriteFunc
}

// NewRulesetStrategy constructs a ruleset-strategy rewriter named name.
func NewRulesetStrategy(name string, rewriteFn rules.RewriteFunc) *RulesetStrategy {
	return &RulesetStrategy{Name: name, Rewrite: rewriteFn}
}

// DoRewrite implements operator.Rewriter.
func (s *RulesetStrategy) DoRewrite(ctx context.Context, a, hint atom.Atom) (atom.Atom, bool) {
	return s.Rewrite(ctx, a, atom.NewBindings())
}

// OperatorName implements operator.Operator.
func (s *RulesetStrategy) OperatorName() string { return s.Name }

// MapStrategy distributes an inner Rewriter over an AtomSeq's elements
// (spec section 4.6, "Sequence strategies distribute a rewriter over
// children, optionally filtered by parameter labels"). A non-sequence
// argument is handed to Inner directly. Include/Exclude filter by the
// Labels carried by a Variable/MetaVariable element; a non-variable
// element has no labels, so Exclude never removes it and it is included
// only when Include is empty.
type MapStrategy struct {
	Name    string
	Inner   Rewriter
	Include map[string]struct{}
	Exclude map[string]struct{}
}

// NewMapStrategy constructs a map-strategy rewriter. include/exclude may be
// nil or empty, meaning "no filter" on that side.
func NewMapStrategy(name string, inner Rewriter, include, exclude []string) *MapStrategy {
	return &MapStrategy{Name: name, Inner: inner, Include: toSet(include), Exclude: toSet(exclude)}
}

func toSet(xs []string) map[string]struct{} {
	if len(xs) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

// EvenMeta implements operator.EvenMetaAware: a map-strategy needs to see
// into a meta-term sequence argument to reach its concrete elements, so it
// opts out of the smart constructor's default meta-term short-circuit.
func (s *MapStrategy) EvenMeta() bool { return true }

// DoRewrite implements operator.Rewriter.
func (s *MapStrategy) DoRewrite(ctx context.Context, a, hint atom.Atom) (atom.Atom, bool) {
	seq, ok := a.(*atom.AtomSeq)
	if !ok {
		return s.Inner.DoRewrite(ctx, a, hint)
	}

	elems := make([]atom.Atom, len(seq.Elements))
	changed := false
	for i, e := range seq.Elements {
		if !s.included(e) {
			elems[i] = e
			continue
		}
		result, fired := s.Inner.DoRewrite(ctx, e, hint)
		if fired {
			elems[i] = result
			changed = true
		} else {
			elems[i] = e
		}
	}
	if !changed {
		return a, false
	}
	return atom.NewAtomSeq(seq.Props, elems, seq.Type()), true
}

func (s *MapStrategy) included(e atom.Atom) bool {
	labels := elementLabels(e)
	for l := range labels {
		if _, excluded := s.Exclude[l]; excluded {
			return false
		}
	}
	if len(s.Include) == 0 {
		return true
	}
	for l := range labels {
		if _, ok := s.Include[l]; ok {
			return true
		}
	}
	return false
}

func elementLabels(e atom.Atom) map[string]struct{} {
	switch v := e.(type) {
	case *atom.Variable:
		return v.Labels
	case *atom.MetaVariable:
		return v.Labels
	default:
		return nil
	}
}

// OperatorName implements operator.Operator.
func (s *MapStrategy) OperatorName() string { return s.Name }
