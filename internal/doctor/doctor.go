// Package doctor validates a viewyard installation and repairs what it
// safely can. Checks run in a fixed order, all problems are collected
// before any fix runs, and fixed checks are re-run to confirm the fix
// actually took.
package doctor

import (
	"context"
	"os/exec"

	"github.com/dheater/viewyard/internal/env"
	"github.com/dheater/viewyard/internal/git"
)

// Result is one finding from one check. A nil Fix means the problem
// needs the user; FixDescription then tells them what to do.
type Result struct {
	Check          string
	Passed         bool
	Message        string
	Fix            func(ctx context.Context) error
	FixDescription string

	// FixError records a fix that was attempted and itself failed, so
	// the user learns why the repair did not happen.
	FixError error
}

// Check is a named, independent validation. Run produces fresh results
// every time; nothing is cached between runs.
type Check struct {
	Name string
	Run  func(ctx context.Context, s *Session) []Result
}

// Session carries the environment and the injectable probes so checks
// are testable without network or installed tools.
type Session struct {
	Env env.Environment

	// Probe tests whether a repository URL answers. Defaults to
	// git ls-remote with a short timeout.
	Probe func(ctx context.Context, url string) error

	// LookPath resolves a tool on PATH. Defaults to exec.LookPath.
	LookPath func(name string) (string, error)
}

func (s *Session) probe(ctx context.Context, url string) error {
	if s.Probe != nil {
		return s.Probe(ctx, url)
	}
	return git.LsRemote(ctx, url, git.DefaultProbeTimeout)
}

func (s *Session) lookPath(name string) (string, error) {
	if s.LookPath != nil {
		return s.LookPath(name)
	}
	return exec.LookPath(name)
}

// Basic is the fast check set behind the validate command.
func Basic() []Check {
	return []Check{
		configCheck(),
		directoryCheck(),
		toolsCheck(),
	}
}

// Comprehensive is the full check set, including the slower identity
// and network probes.
func Comprehensive() []Check {
	return []Check{
		configCheck(),
		directoryCheck(),
		justfileCheck(),
		repoListCheck(),
		contextCheck(),
		identityCheck(),
		toolsCheck(),
		reachabilityCheck(),
	}
}

// Report is the outcome of one validation pass.
type Report struct {
	Results []Result
	// Fixed names checks that failed, were repaired, and passed on
	// re-run.
	Fixed []string
}

// Passed reports whether every result passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failing results.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Fixable counts failures that carry an automatic fix.
func (r *Report) Fixable() int {
	n := 0
	for _, res := range r.Failures() {
		if res.Fix != nil {
			n++
		}
	}
	return n
}

// Run executes the checks and collects every result without fixing
// anything.
func Run(ctx context.Context, s *Session, checks []Check) *Report {
	report := &Report{}
	for _, c := range checks {
		report.Results = append(report.Results, c.Run(ctx, s)...)
	}
	return report
}

// RunAndFix executes the checks, applies every available fix, then
// re-runs each check that had a fixable failure and reports the
// verified state. A fix that does not survive its re-run stays a
// failure in the final report.
func RunAndFix(ctx context.Context, s *Session, checks []Check) *Report {
	first := Run(ctx, s, checks)

	rerun := map[string]bool{}
	for i := range first.Results {
		res := &first.Results[i]
		if res.Passed || res.Fix == nil {
			continue
		}
		if err := res.Fix(ctx); err != nil {
			// The fix failed; the check stays failed and the error is
			// carried so later fixes still run.
			res.FixError = err
			continue
		}
		rerun[res.Check] = true
	}
	if len(rerun) == 0 {
		return first
	}

	final := &Report{}
	for _, c := range checks {
		results := []Result{}
		fresh := false
		for _, res := range first.Results {
			if res.Check == c.Name {
				results = append(results, res)
			}
		}
		if rerun[c.Name] {
			results = c.Run(ctx, s)
			fresh = true
		}
		final.Results = append(final.Results, results...)
		if fresh {
			verified := true
			for _, res := range results {
				if !res.Passed {
					verified = false
				}
			}
			if verified {
				final.Fixed = append(final.Fixed, c.Name)
			}
		}
	}
	return final
}

func pass(check, message string) Result {
	return Result{Check: check, Passed: true, Message: message}
}

func fail(check, message, fixDesc string, fix func(ctx context.Context) error) Result {
	return Result{Check: check, Message: message, Fix: fix, FixDescription: fixDesc}
}
