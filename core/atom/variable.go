package atom

import "strings"

// Variable is a bindable name occurrence: ordinary pattern variables match
// and bind like any other variable, "by-name" variables only match another
// variable sharing their name (spec section 4.5, "by-name" dispatch).
type Variable struct {
	base
	Name    string
	Guard   Atom // defaults to literal true if not supplied
	Labels  map[string]struct{}
	ByName  bool
}

// MetaVariable is a Variable that additionally makes any atom containing it
// a meta-term (IsTerm() == false), blocking operator-handler invocation
// until the metavariable is rewritten away.
type MetaVariable struct {
	base
	Name   string
	Guard  Atom
	Labels map[string]struct{}
	ByName bool
}

func cloneLabels(labels []string) map[string]struct{} {
	m := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		m[l] = struct{}{}
	}
	return m
}

func sortedLabelKeys(labels map[string]struct{}) []string {
	out := make([]string, 0, len(labels))
	for l := range labels {
		out = append(out, l)
	}
	// simple insertion sort; label sets are small and this keeps String()
	// deterministic without pulling in sort for one call site.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// NewVariable constructs an ordinary (bindable, non-meta) variable. guard
// may be nil, meaning the default guard of literal true.
func NewVariable(name string, typ, guard Atom, labels []string, byName bool) *Variable {
	v := &Variable{
		base:   base{kind: KindVariable, typ: typ, depth: 0, isConstant: false, isTerm: true},
		Name:   name,
		Guard:  guard,
		Labels: cloneLabels(labels),
		ByName: byName,
	}
	if guard != nil {
		v.isTerm = v.isTerm && guard.IsTerm()
		if d := guard.Depth(); d > v.depth {
			v.depth = d
		}
	}
	acc := newHashAccumulator(KindVariable)
	acc.writeString(name)
	acc.writeBool(byName)
	acc.writeAtom(typ)
	v.hash, v.otherHash = acc.sums()
	return v
}

// NewMetaVariable constructs a metavariable: bindable, and marks any
// containing atom as a meta-term.
func NewMetaVariable(name string, typ, guard Atom, labels []string, byName bool) *MetaVariable {
	v := &MetaVariable{
		base:   base{kind: KindMetaVariable, typ: typ, depth: 0, isConstant: false, isTerm: false},
		Name:   name,
		Guard:  guard,
		Labels: cloneLabels(labels),
		ByName: byName,
	}
	acc := newHashAccumulator(KindMetaVariable)
	acc.writeString(name)
	acc.writeBool(byName)
	acc.writeAtom(typ)
	v.hash, v.otherHash = acc.sums()
	return v
}

// WithType returns a variable with the same name/guard/labels/by-name flag
// but a different type (used by the rewriter when a variable's type
// itself rewrites).
func (v *Variable) WithType(typ Atom) *Variable {
	return NewVariable(v.Name, typ, v.Guard, sortedLabelKeys(v.Labels), v.ByName)
}

// WithType is MetaVariable's analogue of Variable.WithType.
func (v *MetaVariable) WithType(typ Atom) *MetaVariable {
	return NewMetaVariable(v.Name, typ, v.Guard, sortedLabelKeys(v.Labels), v.ByName)
}

func (v *Variable) String() string {
	return variableString("$", v.Name, v.Guard, v.Labels, v.typ)
}

func (v *MetaVariable) String() string {
	return variableString("$$", v.Name, v.Guard, v.Labels, v.typ)
}

func variableString(sigil, name string, guard Atom, labels map[string]struct{}, typ Atom) string {
	var sb strings.Builder
	sb.WriteString(sigil)
	sb.WriteString(name)
	if guard != nil {
		if lit, ok := guard.(*Literal); !ok || lit.LitKind() != LitBoolean || !lit.BooleanValue() {
			sb.WriteString("{")
			sb.WriteString(guard.String())
			sb.WriteString("}")
		}
	}
	if typ != nil {
		sb.WriteString(":")
		sb.WriteString(typ.String())
	}
	for _, l := range sortedLabelKeys(labels) {
		sb.WriteString("@")
		sb.WriteString(l)
	}
	return sb.String()
}
