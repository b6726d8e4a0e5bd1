// Package executor implements the process-wide handle (spec component,
// Design Notes "Global state"): the shared registries, the memo cache, and
// the rewrite-session factory, so that nothing in core/atom, core/rules,
// core/operator, or core/rewrite relies on ambient package-level globals.
package executor

import (
	"sync"
	"time"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/cache"
	"github.com/elision/elision-sub001/core/operator"
	"github.com/elision/elision-sub001/core/rewrite"
	"github.com/elision/elision-sub001/core/rules"
	"github.com/elision/elision-sub001/core/trace"
	"github.com/google/uuid"
)

// Config mirrors the Executor's configuration surface (spec section 4.8's
// "Configurable properties" table / section 6's "To an executor").
type Config struct {
	Cache              bool
	MaxCacheSize       int
	CachePolicy        cache.Policy
	MaxCacheDepth      int // -1 for unbounded
	RewriteTimeout     time.Duration
	RiskyEqualityCheck bool
	CustomEqualityCheck bool
}

// DefaultConfig mirrors the spec's stated defaults.
func DefaultConfig() Config {
	return Config{
		Cache:         true,
		MaxCacheSize:  4096,
		CachePolicy:   cache.FIFO,
		MaxCacheDepth: -1,
	}
}

// Executor owns every shared, process-wide collaborator: the operator
// registry, the ruleset bit registry, the named-root-type registry
// (including the Type Universe singleton), the memo cache, and Config.
// Constructing a second Executor in the same process (e.g. in a test) gets
// an entirely independent Type Universe and registry set.
type Executor struct {
	mu sync.Mutex

	cfg       Config
	operators *operator.Registry
	rulesets  *rules.RulesetRegistry
	rules     *rules.Library
	cache     *cache.Cache
	trace     trace.Observer

	typeUniverse *atom.NamedRootType
	rootTypes    map[string]*atom.NamedRootType
}

// New builds an Executor from cfg. observer may be nil.
func New(cfg Config, observer trace.Observer) *Executor {
	if observer == nil {
		observer = trace.NoopObserver{}
	}
	e := &Executor{
		cfg:       cfg,
		operators: operator.NewRegistry(nil),
		rulesets:  rules.NewRulesetRegistry(),
		rules:     rules.NewLibrary(),
		cache:     cache.New(cacheConfig(cfg)),
		trace:     observer,
		rootTypes: make(map[string]*atom.NamedRootType),
	}
	e.typeUniverse = atom.NewNamedRootType(atom.TypeUniverseName, nil)
	e.rootTypes[atom.TypeUniverseName] = e.typeUniverse
	e.rootTypes[atom.AnyTypeName] = atom.NewNamedRootType(atom.AnyTypeName, e.typeUniverse)
	e.rootTypes[atom.NoneTypeName] = atom.NewNamedRootType(atom.NoneTypeName, e.typeUniverse)
	return e
}

func cacheConfig(cfg Config) cache.Config {
	return cache.Config{
		Enabled:       cfg.Cache,
		MaxSize:       cfg.MaxCacheSize,
		Policy:        cfg.CachePolicy,
		MaxCacheDepth: cfg.MaxCacheDepth,
	}
}

// RootType returns the named root type for name (spec section 3's
// "singleton-by-name"), interning a fresh one under the Type Universe on
// first request.
func (e *Executor) RootType(name string) *atom.NamedRootType {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.rootTypes[name]; ok {
		return t
	}
	t := atom.NewNamedRootType(name, e.typeUniverse)
	e.rootTypes[name] = t
	return t
}

// TypeUniverse returns the self-typed sentinel every root type's Type()
// ultimately resolves to.
func (e *Executor) TypeUniverse() *atom.NamedRootType { return e.typeUniverse }

// Any returns the ANY wildcard root type.
func (e *Executor) Any() *atom.NamedRootType { return e.RootType(atom.AnyTypeName) }

// Operators returns the shared operator registry.
func (e *Executor) Operators() *operator.Registry { return e.operators }

// Rulesets returns the shared ruleset bit registry.
func (e *Executor) Rulesets() *rules.RulesetRegistry { return e.rulesets }

// Rules returns the shared rule library.
func (e *Executor) Rules() *rules.Library { return e.rules }

// Cache returns the shared memo cache.
func (e *Executor) Cache() *cache.Cache { return e.cache }

// Configure applies cfg as the Executor's new configuration; changes take
// effect immediately for subsequent operations (spec section 4.8).
func (e *Executor) Configure(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	e.cache = cache.New(cacheConfig(cfg))
}

func (e *Executor) engine() *rewrite.Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	eng := rewrite.NewEngine(e.operators, e.rulesets, e.rules, e.cache, e.typeUniverse, e.trace)
	eng.RiskyEquality = e.cfg.RiskyEqualityCheck
	eng.CustomEquality = e.cfg.CustomEqualityCheck
	return eng
}

// NewSession starts a rewrite session scoped to rulesetNames, with a
// deadline derived from Config.RewriteTimeout (spec section 5: "a rewrite
// session begins by computing a wall-clock deadline from rewrite_timeout").
func (e *Executor) NewSession(rulesetNames ...string) *Session {
	return &Session{
		executor:     e,
		engine:       e.engine(),
		rulesetNames: rulesetNames,
		session:      uuid.New(),
		timeout:      e.cfg.RewriteTimeout,
	}
}
