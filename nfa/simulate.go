package nfa

import (
	"sort"

	"github.com/dermesser/rex/matcher"
)

// Span is a half-open range [Start, End) of codepoint positions into a
// Subject.
type Span struct {
	Start, End int
}

// Captures is the flattened capture map: one Span per start position whose
// submatch actually closed, sorted by Start. There is no per-group index —
// a submatch's identity is the subject position it started at, per
// spec.md's capture model. The whole match is just another entry: its
// SubmatchStart/SubmatchEnd bracket the entire graph, so it closes (and
// therefore appears) like any other submatch, ordinarily first because its
// start position is never later than any nested submatch's.
type Captures []Span

// openCaptures is the live capture state threaded through one walk: a map
// from a submatch's start position to the end position most recently
// recorded there, plus a stack of currently-open start positions. This is
// original_source's matching.rs MatchState, ported directly: submatches:
// Vec<Option<usize>> indexed by start position, and submatches_todo, a
// stack of starts pushed on SubmatchStart and popped on SubmatchEnd. Two
// submatches opening at the same start position push the same value
// twice; whichever closes last simply overwrites the other's entry in
// ends. That clobbering is not a bug here — it is the documented,
// preserved limitation of a capture map keyed solely by start position.
type openCaptures struct {
	ends  map[int]int
	stack []int
}

func newOpenCaptures() *openCaptures {
	return &openCaptures{ends: make(map[int]int)}
}

func (c *openCaptures) clone() *openCaptures {
	ends := make(map[int]int, len(c.ends))
	for k, v := range c.ends {
		ends[k] = v
	}
	return &openCaptures{ends: ends, stack: append([]int(nil), c.stack...)}
}

func (c *openCaptures) push(pos int) {
	c.stack = append(c.stack, pos)
}

// pop closes the most recently opened submatch, recording end against its
// start position. A well-formed graph never calls pop with an empty stack:
// every SubmatchEnd node is reached only after its matching SubmatchStart.
func (c *openCaptures) pop(end int) {
	if len(c.stack) == 0 {
		return
	}
	start := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ends[start] = end
}

// flatten produces the Captures spec.md describes: for each start position
// whose end is set, emit (start, end), in start order.
func (c *openCaptures) flatten() Captures {
	if len(c.ends) == 0 {
		return nil
	}
	out := make(Captures, 0, len(c.ends))
	for start, end := range c.ends {
		out = append(out, Span{start, end})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Advancer lets an external accelerator pick the next unanchored start
// position to try, in place of the default "furthest position any thread
// reached, else +1" rule. litscan.Scanner satisfies this interface
// structurally; nfa does not import litscan; so pulling in literal
// prefiltering never depends on this package knowing the automaton
// exists.
type Advancer interface {
	// Advance returns the next position >= from worth an anchored
	// attempt, or len(s) if none remains.
	Advance(s matcher.Subject, from int) int
}

// Search runs the leftmost-longest unanchored search original_source's
// matching.rs and spec.md's simulator describe: try an anchored match at
// increasing start positions, taking the first start position — scanned
// left to right — that admits any match, and at that start position the
// single longest match available.
//
// A failed anchored attempt reports furthest, the rightmost position any
// thread reached before dying; since nothing short of that position was
// left unexplored, the next attempt can jump straight to it instead of
// retrying one codepoint at a time (the furthest_partial skip-ahead).
func Search(g *Graph, s matcher.Subject) (ok bool, caps Captures) {
	return SearchWithAdvancer(g, s, nil)
}

// SearchWithAdvancer is Search, but after each failed anchored attempt the
// next start position is chosen by adv.Advance rather than the default
// furthest_partial rule, whenever adv.Advance names a later position.
// adv may be nil, in which case this is exactly Search.
func SearchWithAdvancer(g *Graph, s matcher.Subject, adv Advancer) (ok bool, caps Captures) {
	for start := 0; start <= len(s); {
		visited := make(map[uint64]struct{})
		furthest := start
		_, found, resultCaps := walk(g, s, start, g.Start, newOpenCaptures(), visited, &furthest)
		if found {
			return true, resultCaps.flatten()
		}
		next := furthest
		if next <= start {
			next = start + 1
		}
		if adv != nil {
			if skip := adv.Advance(s, start); skip > next {
				next = skip
			}
		}
		start = next
	}
	return false, nil
}

// MatchOnce runs a single anchored attempt at exactly pos, without the
// unanchored outer loop. It is Search's building block, exposed directly
// for callers that already know where a match must begin.
func MatchOnce(g *Graph, s matcher.Subject, pos int) (ok bool, end int, caps Captures) {
	visited := make(map[uint64]struct{})
	furthest := pos
	endPos, found, resultCaps := walk(g, s, pos, g.Start, newOpenCaptures(), visited, &furthest)
	if !found {
		return false, 0, nil
	}
	return true, endPos, resultCaps.flatten()
}

func visitKey(pos int, id NodeID) uint64 {
	return uint64(pos)<<32 | uint64(id)
}

// walk explores the subgraph rooted at id starting from pos, returning the
// position and capture state of the longest match reachable from here. It
// shares one visited set across the whole attempt — not just one round —
// so that a node already fully explored at a given position is never
// explored again. That's what keeps patterns like (x+x+)+y polynomial
// instead of exponential: without it, the two nested unbounded quantifiers
// would re-derive the same sub-results along exponentially many paths.
//
// Capture state is copy-on-write: a Split's two branches share their
// parent's state, and only a SubmatchStart/SubmatchEnd node copies it
// before writing, so writes down one branch never leak into a sibling.
// When two branches both reach a match, the longer one wins; a
// tie keeps whichever was explored first (Out before Out1).
func walk(g *Graph, s matcher.Subject, pos int, id NodeID, oc *openCaptures, visited map[uint64]struct{}, furthest *int) (end int, found bool, result *openCaptures) {
	if pos > *furthest {
		*furthest = pos
	}

	n := g.Node(id)

	next := oc
	switch n.Sub {
	case SubmatchStart:
		next = oc.clone()
		next.push(pos)
	case SubmatchEnd:
		next = oc.clone()
		next.pop(pos)
	}

	// n's own Sub tag must be processed above before this check, or a
	// terminal node that is itself a SubmatchEnd — the outer bracket
	// closing the whole match — would never get an entry recorded.
	if n.IsLast() {
		return pos, true, next
	}

	key := visitKey(pos, id)
	if _, seen := visited[key]; seen {
		return 0, false, nil
	}
	visited[key] = struct{}{}

	if n.Matcher != nil {
		ok, consumed := n.Matcher.Match(s, pos)
		if !ok {
			return 0, false, nil
		}
		return walk(g, s, pos+consumed, n.Out, next, visited, furthest)
	}

	if n.Out1 == InvalidNode {
		return walk(g, s, pos, n.Out, next, visited, furthest)
	}

	endA, okA, ocA := walk(g, s, pos, n.Out, next, visited, furthest)
	endB, okB, ocB := walk(g, s, pos, n.Out1, next, visited, furthest)

	switch {
	case okA && okB:
		if endA >= endB {
			return endA, true, ocA
		}
		return endB, true, ocB
	case okA:
		return endA, true, ocA
	case okB:
		return endB, true, ocB
	default:
		return 0, false, nil
	}
}
