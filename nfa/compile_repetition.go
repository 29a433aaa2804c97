package nfa

import "github.com/dermesser/rex/pattern"

// compileRepetition dispatches on the four Repetition variants, following
// original_source/src/compile.rs's Compile impl for Repetition node for
// node.
func (c *compiler) compileRepetition(rep pattern.Repetition, depth int) (NodeID, []NodeID, error) {
	switch r := rep.(type) {
	case pattern.ZeroOrOnce:
		return c.compileZeroOrOnce(r.P, depth)
	case pattern.ZeroOrMore:
		return c.compileZeroOrMore(r.P, depth)
	case pattern.OnceOrMore:
		return c.compileOnceOrMore(r.P, depth)
	case pattern.Specific:
		return c.compileSpecific(r, depth)
	default:
		return InvalidNode, nil, buildErr(InvalidNode, "unknown repetition %T", rep)
	}
}

// compileZeroOrOnce builds: before branches to (body, after); body's loose
// ends also feed into after.
func (c *compiler) compileZeroOrOnce(p pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	s, loose, err := c.compile(p, depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	after := c.b.AddEpsilon()
	before := c.b.AddSplit(s, after)
	if err := c.b.PatchAll(loose, after); err != nil {
		return InvalidNode, nil, err
	}
	return before, []NodeID{after}, nil
}

// compileZeroOrMore builds a loop: before branches to (body, after); the
// body's loose ends, and before's skip-over branch, both land on after,
// which itself branches back into the body — after's second slot is left
// for the caller to patch to whatever follows the whole repetition.
func (c *compiler) compileZeroOrMore(p pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	s, loose, err := c.compile(p, depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	after := c.b.AddSplit(s, InvalidNode)
	before := c.b.AddSplit(s, after)
	if err := c.b.PatchAll(loose, after); err != nil {
		return InvalidNode, nil, err
	}
	return before, []NodeID{after}, nil
}

// compileOnceOrMore is ZeroOrMore without the skip-over branch: the body
// must run at least once, so the subgraph's entry point is the body's own
// entry point rather than a separate branch node.
func (c *compiler) compileOnceOrMore(p pattern.Pattern, depth int) (NodeID, []NodeID, error) {
	s, loose, err := c.compile(p, depth+1)
	if err != nil {
		return InvalidNode, nil, err
	}
	after := c.b.AddSplit(s, InvalidNode)
	if err := c.b.PatchAll(loose, after); err != nil {
		return InvalidNode, nil, err
	}
	return s, []NodeID{after}, nil
}

// compileSpecific lowers {min,max} into a Concat of simpler repetitions
// and compiles that instead of giving Specific its own NFA shape —
// exactly original_source's approach, including the {n} quirk spec.md §9
// documents: when Max is nil, the min required copies are followed not by
// a hard stop but by a single ZeroOrMore of the same sub-pattern.
func (c *compiler) compileSpecific(r pattern.Specific, depth int) (NodeID, []NodeID, error) {
	var items []pattern.Pattern
	for i := 0; i < r.Min; i++ {
		items = append(items, r.P)
	}
	if r.Max != nil {
		for i := 0; i < *r.Max-r.Min; i++ {
			items = append(items, &pattern.Repeated{Rep: pattern.ZeroOrOnce{P: r.P}})
		}
	} else {
		items = append(items, &pattern.Repeated{Rep: pattern.ZeroOrMore{P: r.P}})
	}
	if len(items) == 0 {
		// {0,0}-style specs repeat nothing: compiles to a zero-length
		// match, same as an empty parsed group.
		items = append(items, &pattern.Str{S: []rune{}})
	}
	return c.compileConcat(items, depth+1)
}
