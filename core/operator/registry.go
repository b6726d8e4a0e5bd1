package operator

import (
	"errors"
	"fmt"
	"log"

	"github.com/agnivade/levenshtein"
	"github.com/emirpasic/gods/v2/sets/linkedhashset"

	"github.com/elision/elision-sub001/core/atom"
)

// Operator is the interface the registry stores: every registered value
// must at least be inspectable by name. CaseOperator and SymbolicOperator
// both satisfy it.
type Operator interface {
	OperatorName() string
}

func (o *CaseOperator) OperatorName() string     { return o.Name }
func (o *SymbolicOperator) OperatorName() string { return o.Name }

// ErrOperatorConflict is returned by Register when AllowRedefinition is
// false and name is already registered.
var ErrOperatorConflict = errors.New("operator: name already registered")

// ErrOperatorNotFound is returned by Get when name isn't registered.
var ErrOperatorNotFound = errors.New("operator: not found")

// ErrInvalidOperatorName is returned by Register when the name fails
// atom.ValidIdentifier.
var ErrInvalidOperatorName = errors.New("operator: invalid name")

// suggestionFloor is the minimum similarity score (1 - distance/maxlen) an
// unknown name's nearest registered neighbor must clear before it's
// offered as a suggestion.
const suggestionFloor = 0.5

// Registry is the named operator registry (spec section 4.9): string ->
// Operator, insertion-ordered for deterministic serialization.
type Registry struct {
	AllowRedefinition bool

	names *linkedhashset.Set[string]
	byName map[string]Operator
	logger *log.Logger
}

// NewRegistry builds a registry with MAP, xx, and LIST pre-registered
// (spec section 4.9). logger may be nil to use the standard logger.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{
		AllowRedefinition: true,
		names:             linkedhashset.New[string](),
		byName:            make(map[string]Operator),
		logger:            logger,
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) registerBuiltins() {
	_ = r.Register(NewSymbolicOperator("MAP", []string{"f", "xs"}, nil, nil))
	_ = r.Register(NewSymbolicOperator("xx", []string{"a", "b"}, nil, nil))
	_ = r.Register(NewSymbolicOperator("LIST", nil, nil, nil))
}

// Register adds op under op.OperatorName(). If the name is already taken,
// behavior depends on AllowRedefinition: warn-and-overwrite (default true)
// or ErrOperatorConflict.
func (r *Registry) Register(op Operator) error {
	name := op.OperatorName()
	if !atom.ValidIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidOperatorName, name)
	}
	if _, exists := r.byName[name]; exists {
		if !r.AllowRedefinition {
			return fmt.Errorf("%w: %q", ErrOperatorConflict, name)
		}
		r.logger.Printf("operator: redefining %q", name)
	}
	r.byName[name] = op
	r.names.Add(name)
	return nil
}

// Get resolves name, enriching a miss with a levenshtein-nearest-name
// suggestion when one scores above suggestionFloor (spec.md doesn't
// require this, but a complete operator library naturally wants it).
func (r *Registry) Get(name string) (Operator, error) {
	if op, ok := r.byName[name]; ok {
		return op, nil
	}
	if suggestion, ok := r.nearest(name); ok {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrOperatorNotFound, name, suggestion)
	}
	return nil, fmt.Errorf("%w: %q", ErrOperatorNotFound, name)
}

func (r *Registry) nearest(name string) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, candidate := range r.names.Values() {
		dist := levenshtein.ComputeDistance(name, candidate)
		maxLen := len(name)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}
		score := 1 - float64(dist)/float64(maxLen)
		if score > bestScore {
			bestScore, best = score, candidate
		}
	}
	if bestScore >= suggestionFloor {
		return best, true
	}
	return "", false
}

// Names returns every registered operator name in insertion order.
func (r *Registry) Names() []string {
	return r.names.Values()
}
