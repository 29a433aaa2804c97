package nfa

import "github.com/dermesser/rex/internal/conv"

// Builder constructs a Graph incrementally: each Add* call appends one
// node and returns its NodeID, and Patch wires a loose successor to a
// target once it is known. This mirrors original_source's State::patch
// (first free out-slot wins; a patch onto a node whose two out-slots are
// both set is a bug) and the teacher's nfa/builder.go Add*/Build(opts...)
// shape.
type Builder struct {
	nodes []Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make([]Node, 0, 16)}
}

// AddMatcher appends a leaf node that consumes input via m. Both
// successors start unpatched.
func (b *Builder) AddMatcher(m Matcher) NodeID {
	return b.add(Node{Matcher: m, Out: InvalidNode, Out1: InvalidNode})
}

// AddEpsilon appends a node that consumes no input and forwards to a
// single, initially unpatched successor.
func (b *Builder) AddEpsilon() NodeID {
	return b.add(Node{Out: InvalidNode, Out1: InvalidNode})
}

// AddSplit appends a branch node with both successors set up front. The
// simulator explores Out before Out1 and keeps the longer of the two
// matches; the order only decides which branch's captures are kept when
// both matches end at the same position.
func (b *Builder) AddSplit(out, out1 NodeID) NodeID {
	return b.add(Node{Out: out, Out1: out1})
}

// AddSubmatchStart appends an epsilon node marking the start of a capture,
// immediately patched to next. Which capture this is isn't decided here:
// the simulator identifies a submatch by the subject position this node
// fires at, not by an index assigned during compilation.
func (b *Builder) AddSubmatchStart(next NodeID) NodeID {
	return b.add(Node{Out: next, Out1: InvalidNode, Sub: SubmatchStart})
}

// AddSubmatchEnd appends an epsilon node marking the end of the innermost
// still-open capture. Its successor is left unpatched for the caller to
// wire.
func (b *Builder) AddSubmatchEnd() NodeID {
	return b.add(Node{Out: InvalidNode, Out1: InvalidNode, Sub: SubmatchEnd})
}

func (b *Builder) add(n Node) NodeID {
	// A graph with more than 2^32 nodes would otherwise wrap silently
	// into a small NodeID and corrupt the graph instead of failing
	// loudly; conv.IntToUint32 turns that into an immediate panic.
	id := NodeID(conv.IntToUint32(len(b.nodes)))
	b.nodes = append(b.nodes, n)
	return id
}

// Patch wires id's first unset successor to next. It fails if id already
// has both successors set — the same "both out-slots full" bug
// original_source's State::patch treats as unimplemented!().
func (b *Builder) Patch(id NodeID, next NodeID) error {
	n := &b.nodes[id]
	switch {
	case n.Out == InvalidNode:
		n.Out = next
	case n.Out1 == InvalidNode:
		n.Out1 = next
	default:
		return buildErr(id, "both successors already set")
	}
	return nil
}

// PatchAll patches every id in ids to next, stopping at the first error.
func (b *Builder) PatchAll(ids []NodeID, next NodeID) error {
	for _, id := range ids {
		if err := b.Patch(id, next); err != nil {
			return err
		}
	}
	return nil
}

// BuildOption configures Build's finalization step.
type BuildOption func(*buildConfig)

type buildConfig struct {
	validate bool
	accept   NodeID
}

// WithValidation enables a post-build sanity pass that rejects a graph
// containing a reachable node with an unpatched successor — a sign some
// loose end was never wired during compilation. Use together with
// WithAccept to tell the pass which terminal node is the legitimate one;
// without it, every node with both successors unset is assumed terminal.
func WithValidation() BuildOption {
	return func(c *buildConfig) { c.validate = true }
}

// WithAccept names the single node the graph is expected to terminate
// at. Any other reachable node with both successors unset is reported as
// a dangling loose end rather than a match state.
func WithAccept(id NodeID) BuildOption {
	return func(c *buildConfig) { c.accept = id }
}

// Build finalizes the graph with the given start node.
func (b *Builder) Build(start NodeID, opts ...BuildOption) (*Graph, error) {
	cfg := buildConfig{accept: InvalidNode}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph{Nodes: b.nodes, Start: start}
	if cfg.validate {
		if err := validate(g, cfg.accept); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func validate(g *Graph, accept NodeID) error {
	seen := make([]bool, len(g.Nodes))
	stack := []NodeID{g.Start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		n := &g.Nodes[id]
		if n.Out == InvalidNode && n.Out1 == InvalidNode && accept != InvalidNode && id != accept {
			return buildErr(id, "dangling successor: node is unpatched, not the graph's accept node")
		}
		if n.Out == InvalidNode && n.Out1 != InvalidNode {
			return buildErr(id, "dangling Out successor")
		}
		if n.Out != InvalidNode {
			stack = append(stack, n.Out)
		}
		if n.Out1 != InvalidNode {
			stack = append(stack, n.Out1)
		}
	}
	return nil
}
