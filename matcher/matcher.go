// Package matcher provides the stateless predicate objects evaluated at a
// single position of the subject during simulation.
//
// Grounded on original_source/src/matcher.rs (Matcher trait, CharMatcher,
// CharRangeMatcher, CharSetMatcher, AnyMatcher, AnchorMatcher), extended
// with the Str matcher spec.md's matcher table adds over that snapshot of
// the original implementation.
package matcher

// Subject is a random-access, codepoint-indexed view of the string being
// matched against. All positions handled throughout this engine are
// codepoint positions into a Subject, never byte offsets.
type Subject []rune

// NewSubject converts a Go string into a Subject once, up front, so every
// later positional index is a codepoint index.
func NewSubject(s string) Subject {
	return Subject([]rune(s))
}

// Matcher is a predicate evaluated against a single position of a Subject.
//
// Match reports whether the matcher accepts the subject at pos, and how
// many codepoints it consumes. consumed is meaningful even when ok is
// false, so that callers retrying at a fixed start position can learn how
// far a failed attempt probed.
type Matcher interface {
	Match(s Subject, pos int) (ok bool, consumed int)
	String() string
}

// Char matches a single codepoint exactly.
type Char struct{ C rune }

func (m Char) Match(s Subject, pos int) (bool, int) {
	if pos < len(s) && s[pos] == m.C {
		return true, 1
	}
	return false, 1
}

func (m Char) String() string { return "Char(" + string(m.C) + ")" }

// Str matches a run of codepoints exactly, in order.
type Str struct{ S []rune }

func (m Str) Match(s Subject, pos int) (bool, int) {
	n := len(m.S)
	if pos+n > len(s) {
		return false, n
	}
	for i := 0; i < n; i++ {
		if s[pos+i] != m.S[i] {
			return false, n
		}
	}
	return true, n
}

func (m Str) String() string { return "Str(" + string(m.S) + ")" }

// CharRange matches any codepoint in the inclusive range [Lo, Hi].
type CharRange struct{ Lo, Hi rune }

func (m CharRange) Match(s Subject, pos int) (bool, int) {
	if pos < len(s) && s[pos] >= m.Lo && s[pos] <= m.Hi {
		return true, 1
	}
	return false, 1
}

func (m CharRange) String() string { return "CharRange(" + string(m.Lo) + "-" + string(m.Hi) + ")" }

// CharSet matches any codepoint contained in the set.
type CharSet struct{ Set []rune }

func (m CharSet) Match(s Subject, pos int) (bool, int) {
	if pos >= len(s) {
		return false, 1
	}
	for _, c := range m.Set {
		if s[pos] == c {
			return true, 1
		}
	}
	return false, 1
}

func (m CharSet) String() string { return "CharSet(" + string(m.Set) + ")" }

// Any matches any single codepoint. It reports false, not true, once the
// subject is exhausted — there is no codepoint left to consume.
type Any struct{}

func (Any) Match(s Subject, pos int) (bool, int) {
	if pos < len(s) {
		return true, 1
	}
	return false, 1
}

func (Any) String() string { return "Any" }

// AnchorBegin matches only at position 0; it consumes no input.
type AnchorBegin struct{}

func (AnchorBegin) Match(s Subject, pos int) (bool, int) { return pos == 0, 0 }

func (AnchorBegin) String() string { return "AnchorBegin" }

// AnchorEnd matches only at position len(s); it consumes no input.
type AnchorEnd struct{}

func (AnchorEnd) Match(s Subject, pos int) (bool, int) { return pos == len(s), 0 }

func (AnchorEnd) String() string { return "AnchorEnd" }
