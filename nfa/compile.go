package nfa

import (
	"github.com/dermesser/rex/matcher"
	"github.com/dermesser/rex/pattern"
)

// DefaultMaxCompileDepth bounds recursion over the pattern tree, guarding
// against stack overflow on deeply nested patterns. The compiler counts a
// level for every Concat item, Submatch and repetition it descends into,
// so a parsed pattern within the parser's own nesting limit can still
// exceed this one and fail with a *BuildError. See SPEC_FULL.md §4.1.
const DefaultMaxCompileDepth = 1000

// Compile lowers an optimized pattern.Pattern into a Graph using
// DefaultMaxCompileDepth.
//
// The result always begins with a SubmatchStart node and ends at a
// SubmatchEnd node bracketing the whole match, mirroring
// original_source's start_compile wrapping every compiled pattern in an
// implicit outer capture.
func Compile(p pattern.Pattern) (*Graph, error) {
	return CompileWithDepthLimit(p, DefaultMaxCompileDepth)
}

// CompileWithDepthLimit is Compile with an explicit recursion bound.
func CompileWithDepthLimit(p pattern.Pattern, maxDepth int) (*Graph, error) {
	c := &compiler{b: NewBuilder(), maxDepth: maxDepth}

	// Added first so the outer SubmatchStart sits at index 0; its successor
	// is patched once the body's entry node is known.
	beforeID := c.b.AddSubmatchStart(InvalidNode)

	start, loose, err := c.compile(p, 0)
	if err != nil {
		return nil, err
	}

	if err := c.b.Patch(beforeID, start); err != nil {
		return nil, err
	}
	endID := c.b.AddSubmatchEnd()
	if err := c.b.PatchAll(loose, endID); err != nil {
		return nil, err
	}

	return c.b.Build(beforeID, WithValidation(), WithAccept(endID))
}

type compiler struct {
	b        *Builder
	maxDepth int
}

// compile returns the entry node for p's subgraph and the list of nodes
// with a loose successor slot the caller must patch once it knows what
// follows. This is exactly original_source's Compile::to_state contract,
// translated from an owned-tree-of-Rc<RefCell<State>> into index-based
// nodes inside a shared Builder.
func (c *compiler) compile(p pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	if depth > c.maxDepth {
		return InvalidNode, nil, buildErr(InvalidNode, "pattern nested too deeply")
	}

	switch v := p.(type) {
	case *pattern.Concat:
		return c.compileConcat(v.Items, depth)

	case *pattern.Alternate:
		return c.compileAlternate(v.Items, depth)

	case *pattern.Submatch:
		inner, loose, err := c.compile(v.Inner, depth+1)
		if err != nil {
			return InvalidNode, nil, err
		}
		before := c.b.AddSubmatchStart(inner)
		after := c.b.AddSubmatchEnd()
		if err := c.b.PatchAll(loose, after); err != nil {
			return InvalidNode, nil, err
		}
		return before, []NodeID{after}, nil

	case *pattern.Repeated:
		return c.compileRepetition(v.Rep, depth)

	case *pattern.Char:
		id := c.b.AddMatcher(matcher.Char{C: v.C})
		return id, []NodeID{id}, nil

	case *pattern.Str:
		id := c.b.AddMatcher(matcher.Str{S: v.S})
		return id, []NodeID{id}, nil

	case *pattern.Any:
		id := c.b.AddMatcher(matcher.Any{})
		return id, []NodeID{id}, nil

	case *pattern.CharRange:
		id := c.b.AddMatcher(matcher.CharRange{Lo: v.Lo, Hi: v.Hi})
		return id, []NodeID{id}, nil

	case *pattern.CharSet:
		id := c.b.AddMatcher(matcher.CharSet{Set: v.Set})
		return id, []NodeID{id}, nil

	case *pattern.Anchor:
		var m matcher.Matcher
		if v.Location == pattern.Begin {
			m = matcher.AnchorBegin{}
		} else {
			m = matcher.AnchorEnd{}
		}
		id := c.b.AddMatcher(m)
		return id, []NodeID{id}, nil

	default:
		return InvalidNode, nil, buildErr(InvalidNode, "unknown pattern node %T", p)
	}
}

func (c *compiler) compileConcat(items []pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	if len(items) == 0 {
		return InvalidNode, nil, buildErr(InvalidNode, "empty Concat")
	}
	if len(items) == 1 {
		return c.compile(items[0], depth+1)
	}

	init, loose, err := c.compile(items[0], depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	for _, item := range items[1:] {
		next, nextLoose, err := c.compile(item, depth+1)
		if err != nil {
			return InvalidNode, nil, err
		}
		if err := c.b.PatchAll(loose, next); err != nil {
			return InvalidNode, nil, err
		}
		loose = nextLoose
	}
	return init, loose, nil
}

// compileAlternate builds a balanced binary tree of split nodes, matching
// original_source's alternate() helper: recursing on halves rather than a
// single n-way split keeps any one split node's fan-out at two, which is
// all the Node representation supports.
func (c *compiler) compileAlternate(items []pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	if len(items) == 0 {
		return InvalidNode, nil, buildErr(InvalidNode, "empty Alternate")
	}
	if len(items) == 1 {
		return c.compile(items[0], depth+1)
	}

	mid := len(items) / 2
	left, leftLoose, err := c.compileAlternate(items[:mid], depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	right, rightLoose, err := c.compileAlternate(items[mid:], depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	split := c.b.AddSplit(left, right)
	loose := append(leftLoose, rightLoose...)
	return split, loose, nil
}
