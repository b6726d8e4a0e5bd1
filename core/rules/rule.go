package rules

import "github.com/elision/elision-sub001/core/atom"

// Rule is a single rewrite rule (spec section 4.7): match Pattern against a
// subject, rewrite each Guard under the resulting bindings (rewritten
// against the current rule library, not just evaluated in isolation), and
// on the first binding set whose guards all reduce to literal true,
// instantiate Rewrite under those bindings.
type Rule struct {
	Pattern      atom.Atom
	Rewrite      atom.Atom
	Guards       []atom.Atom
	RulesetNames []string

	// Synthetic marks a rule the engine generated itself (e.g. from a
	// CaseOperator's cases) rather than one a caller registered directly;
	// purely informational, used by trace/inspection tooling.
	Synthetic bool
}

// NewRule constructs a rule. guards may be nil (no guard conditions).
func NewRule(pattern, rewrite atom.Atom, guards []atom.Atom, rulesetNames []string, synthetic bool) *Rule {
	return &Rule{Pattern: pattern, Rewrite: rewrite, Guards: guards, RulesetNames: rulesetNames, Synthetic: synthetic}
}

// headKey classifies a rule's left-hand-side head for the library's
// pre-filter (spec section 4.7, "cheap pre-filter by variant and, for
// operator applies, by operator name").
func headKey(a atom.Atom) string {
	switch p := a.(type) {
	case atom.ApplyAtom:
		if opRef, ok := atom.ApplyOperator(p).(*atom.OperatorRef); ok {
			return "apply:" + opRef.Name
		}
		return "apply:*"
	case *atom.Variable, *atom.MetaVariable:
		return "var"
	default:
		return kindKey(a.Kind())
	}
}

func kindKey(k atom.Kind) string { return "kind:" + k.String() }
