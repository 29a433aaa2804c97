// Package litscan wraps a rune-based Aho-Corasick automaton as a
// correctness-preserving skip-ahead accelerator for the simulator's
// unanchored outer loop.
//
// It is consulted only when pattern.ExtractLiterals succeeded for the
// whole compiled pattern — meaning the pattern has no Any, CharRange, or
// Repeated node anywhere and therefore reduces to a finite set of exact
// literal strings. In that case a successful unanchored match can only
// begin where one of those literals occurs in the subject, so the
// automaton is used to jump the outer loop's start cursor forward instead
// of probing every intervening position.
//
// Grounded on other_examples/8bebb1c4_itgcl-ahocorasick__ahocorasick.go.go
// (rune-keyed trie, ContainsString existence query) for the automaton
// itself, and the teacher's meta/compile.go "ahoCorasick, built once at
// compile time, consulted only as a fast-path accelerator" wiring shape.
package litscan

import (
	"github.com/itgcl/ahocorasick"

	"github.com/dermesser/rex/matcher"
)

// Scanner advances a search cursor to the next subject position at which
// any of a fixed set of literals could begin.
type Scanner struct {
	ac            *ahocorasick.Matcher
	maxLiteralLen int
}

// New builds a Scanner over literals. literals must be non-empty and each
// entry non-empty; callers (compile) are responsible for deciding whether
// building one is worthwhile (see Config.MinPrefilterLiteralLen).
func New(literals [][]rune) *Scanner {
	dict := make([]string, len(literals))
	maxLen := 0
	for i, lit := range literals {
		dict[i] = string(lit)
		if len(lit) > maxLen {
			maxLen = len(lit)
		}
	}
	return &Scanner{ac: ahocorasick.NewStringMatcher(dict), maxLiteralLen: maxLen}
}

// Advance returns the smallest position >= from at which some literal
// might begin, or len(s) if no literal occurs anywhere in s[from:] (in
// which case no unanchored attempt starting at or after from can
// possibly succeed).
//
// The automaton's public API reports only whether a literal occurs
// within a given window, not where — so Advance locates the earliest
// occurrence by binary-searching the smallest window length that
// contains one, then conservatively backs off by the longest literal's
// length. This never overshoots a real occurrence: the true match start
// is at most maxLiteralLen codepoints before the window's right edge, so
// backing off by exactly that much can only underestimate the jump, never
// skip past a valid start.
func (sc *Scanner) Advance(s matcher.Subject, from int) int {
	if from >= len(s) {
		return len(s)
	}
	remaining := s[from:]
	if !sc.ac.ContainsString(string(remaining)) {
		return len(s)
	}

	lo, hi := 0, len(remaining)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sc.ac.ContainsString(string(remaining[:mid])) {
			hi = mid
		} else {
			lo = mid
		}
	}

	candidate := from + hi - sc.maxLiteralLen
	if candidate < from {
		candidate = from
	}
	return candidate
}
