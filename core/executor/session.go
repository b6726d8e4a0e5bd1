package executor

import (
	"context"
	"time"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/rewrite"
	"github.com/google/uuid"
)

// Session is a single logical rewrite task (spec section 5's "Single
// rewrite session per logical task"): its own engine handle, its own
// ruleset scope, its own deadline, sharing the Executor's registries and
// memo cache with every other session.
type Session struct {
	executor     *Executor
	engine       *rewrite.Engine
	rulesetNames []string
	session      uuid.UUID
	timeout      time.Duration
}

// ID returns this session's trace-correlation UUID.
func (s *Session) ID() uuid.UUID { return s.session }

// Rewrite rewrites a under binds (nil means no bindings) to quiescence
// against this session's ruleset scope, applying the configured timeout as
// a context deadline (0 disables, per spec section 4.8's rewrite_timeout).
func (s *Session) Rewrite(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
	if binds == nil {
		binds = atom.NewBindings()
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.engine.Rewrite(ctx, a, binds, s.rulesetNames, s.session)
}

// Engine exposes the underlying rewrite engine, for callers (e.g.
// cmd/elisionctl) that need to build operator strategies scoped to this
// session.
func (s *Session) Engine() *rewrite.Engine { return s.engine }
