// Package main provides elisionctl, a small inspection CLI over an
// executor.Executor: it builds a couple of illustrative rulesets and atoms
// directly via the core/atom factory functions (there is no parser here —
// parsing is an external collaborator), runs a rewrite session, and
// exposes the operator registry and cache statistics for inspection.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/executor"
	"github.com/elision/elision-sub001/core/rules"
)

func main() {
	exec := executor.New(executor.DefaultConfig(), nil)

	if err := rootCommand(exec).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// rootCommand builds the elisionctl command tree over exec, split out from
// main so tests can inspect and execute it without going through os.Args.
func rootCommand(exec *executor.Executor) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "elisionctl",
		Short:         "Inspect and demo an Elision rewrite executor",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newDemoCmd(exec))
	rootCmd.AddCommand(newOperatorsCmd(exec))
	rootCmd.AddCommand(newCacheStatsCmd(exec))
	return rootCmd
}

// isTTY reports whether stdout is a terminal; the operators table wraps
// long cell text only when it is not.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newDemoCmd(exec *executor.Executor) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Rewrite a small built-in example and print before/after",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(exec)
		},
	}
}

// runDemo builds Apply("foo", "bar") directly (scenario 1 of spec section
// 8: string-literal concatenation under the Apply smart constructor) and a
// second Apply matched against a user-declared "demo" ruleset rule, runs
// both through one session, and prints before/after plus cache hit/miss
// counters. Neither case needs a parser: every atom is built via the
// core/atom factory functions.
func runDemo(exec *executor.Executor) error {
	stringType := exec.RootType("STRING")
	concat := atom.NewSimpleApply(atom.NewString("foo", stringType), atom.NewString("bar", stringType), stringType)

	sess := exec.NewSession("demo")
	ctx := context.Background()
	concatAfter, concatChanged := sess.Rewrite(ctx, concat, nil)

	fmt.Printf("concat before: %s\n", concat.String())
	fmt.Printf("concat after:  %s (changed=%v)\n", concatAfter.String(), concatChanged)

	// unwrap(n) -> n: a one-rule "demo" ruleset showing variable capture and
	// substitution, independent of the Apply smart constructor exercised
	// above.
	intType := exec.RootType("INTEGER")
	n := atom.NewVariable("n", intType, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), n, intType)

	lib := exec.Rules()
	lib.Add(rules.NewRule(pattern, n, nil, []string{"demo"}, false))

	arg := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), atom.NewInteger(big.NewInt(21), intType), intType)
	ruleAfter, ruleChanged := sess.Rewrite(ctx, arg, nil)

	fmt.Printf("rule before: %s\n", arg.String())
	fmt.Printf("rule after:  %s (changed=%v)\n", ruleAfter.String(), ruleChanged)

	stats := exec.Cache().Stats()
	fmt.Printf("cache: normal hits=%d misses=%d, cache hits=%d misses=%d\n",
		stats.NormalHits, stats.NormalMisses, stats.CacheHits, stats.CacheMisses)
	return nil
}

func newOperatorsCmd(exec *executor.Executor) *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List registered operators",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name"})
			table.SetAutoWrapText(!isTTY())
			for _, name := range exec.Operators().Names() {
				table.Append([]string{name})
			}
			table.Render()
			return nil
		},
	}
}

func newCacheStatsCmd(exec *executor.Executor) *cobra.Command {
	return &cobra.Command{
		Use:   "cache-stats",
		Short: "Print memo cache hit/miss counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := exec.Cache().Stats()
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Store", "Hits", "Misses"})
			table.Append([]string{"normal", itoa(stats.NormalHits), itoa(stats.NormalMisses)})
			table.Append([]string{"cache", itoa(stats.CacheHits), itoa(stats.CacheMisses)})
			table.Render()
			return nil
		},
	}
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }
