package trace

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/elision/elision-sub001/core/atom"
)

// event is a flattened, comparable record of a single Observer call, so a
// recordingObserver's call log can be diffed with go-cmp instead of
// asserting against the atom.Atom interface's unexported fields directly.
type event struct {
	Kind   string
	Parent string
	Child  string
}

type recordingObserver struct {
	events []event
}

func (r *recordingObserver) Push(_ uuid.UUID, parent, child atom.Atom) {
	r.events = append(r.events, event{Kind: "push", Parent: parent.String(), Child: child.String()})
}

func (r *recordingObserver) Pop(_ uuid.UUID, parent, result atom.Atom) {
	r.events = append(r.events, event{Kind: "pop", Parent: parent.String(), Child: result.String()})
}

func (r *recordingObserver) NodeCreated(_ uuid.UUID, a atom.Atom) {
	r.events = append(r.events, event{Kind: "node-created", Child: a.String()})
}

func (r *recordingObserver) RewriteStep(_ uuid.UUID, before, after atom.Atom, rule string) {
	r.events = append(r.events, event{Kind: "rewrite-step:" + rule, Parent: before.String(), Child: after.String()})
}

func TestRecordingObserverCapturesPushPopPair(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", nil)
	parent := atom.NewInteger(big.NewInt(1), typ)
	child := atom.NewInteger(big.NewInt(2), typ)
	session := uuid.New()

	var obs Observer = &recordingObserver{}
	obs.Push(session, parent, child)
	obs.Pop(session, parent, child)

	got := obs.(*recordingObserver).events
	want := []event{
		{Kind: "push", Parent: parent.String(), Child: child.String()},
		{Kind: "pop", Parent: parent.String(), Child: child.String()},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("observer event log mismatch (-want +got):\n%s", diff)
	}
}

func TestNoopObserverDiscardsEverything(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", nil)
	a := atom.NewInteger(big.NewInt(1), typ)
	session := uuid.New()

	var obs Observer = NoopObserver{}
	require.NotPanics(t, func() {
		obs.Push(session, a, a)
		obs.Pop(session, a, a)
		obs.NodeCreated(session, a)
		obs.RewriteStep(session, a, a, "noop")
	})
}
