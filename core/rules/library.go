package rules

import (
	"sync"

	"github.com/elision/elision-sub001/core/atom"
)

// Library holds every registered rule in declared order, plus a grouping by
// ruleset name for introspection; GetRules filters the declared-order list
// rather than re-bucketing by head, so a rule's position relative to other
// rules of a different head shape is never disturbed (spec section 5,
// "rules are tried in declared order").
type Library struct {
	mu        sync.RWMutex
	all       []*Rule
	byRuleset map[string][]*Rule
}

// NewLibrary returns an empty rule library.
func NewLibrary() *Library {
	return &Library{byRuleset: make(map[string][]*Rule)}
}

// Add registers r under every ruleset name it declares, appending to the
// declared-order list.
func (l *Library) Add(r *Rule) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.all = append(l.all, r)
	for _, name := range r.RulesetNames {
		l.byRuleset[name] = append(l.byRuleset[name], r)
	}
}

// Rulesets returns the names currently carrying at least one rule.
func (l *Library) Rulesets() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.byRuleset))
	for n := range l.byRuleset {
		names = append(names, n)
	}
	return names
}

// GetRules returns, in declared order, every rule belonging to one of names
// whose head is compatible with subject's head (spec section 4.7's "cheap
// pre-filter by variant and, for operator applies, by operator name"): an
// exact head-key match, or a bindable-variable pattern, which can match any
// subject.
func (l *Library) GetRules(subject atom.Atom, names []string) []*Rule {
	l.mu.RLock()
	defer l.mu.RUnlock()

	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}

	key := headKey(subject)
	out := make([]*Rule, 0, len(l.all))
	for _, r := range l.all {
		if !ruleInAnyRuleset(r, allowed) {
			continue
		}
		rk := headKey(r.Pattern)
		if rk != key && rk != "var" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func ruleInAnyRuleset(r *Rule, allowed map[string]bool) bool {
	for _, n := range r.RulesetNames {
		if allowed[n] {
			return true
		}
	}
	return false
}
