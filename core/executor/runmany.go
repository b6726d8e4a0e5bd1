package executor

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"golang.org/x/sync/errgroup"
)

// RunMany fans atoms out over independent rewrite sessions, one per atom,
// running concurrently via errgroup (spec section 5: "multiple sessions
// may run in parallel on disjoint tasks"). Each session gets its own
// deadline and trace-correlation ID while sharing the Executor's registries
// and memo cache. The returned slice preserves atoms' order. A session
// never reports an error here (each returns its best-effort result), so
// the error result is always nil.
func (e *Executor) RunMany(ctx context.Context, atoms []atom.Atom, rulesetNames []string) ([]atom.Atom, error) {
	results := make([]atom.Atom, len(atoms))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range atoms {
		i, a := i, a
		g.Go(func() error {
			sess := e.NewSession(rulesetNames...)
			result, _ := sess.Rewrite(gctx, a, nil)
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
