// Package nfa defines the flat, append-only state graph produced by
// compiling a pattern.Pattern, and the Thompson-style compiler that
// produces one.
//
// Grounded on original_source/src/state.rs (State/StateGraph: an
// append-only Vec<State> addressed by index rather than by pointer, so
// that cyclic automata — required for *, +, and bounded repetition — can
// be represented without Rc/RefCell-style shared ownership), generalized
// to idiomatic Go the way the teacher's nfa/nfa.go generalizes its own
// State/StateID pair (NodeID as a distinct index type, with InvalidNode as
// the "no successor" sentinel).
package nfa

import (
	"fmt"

	"github.com/dermesser/rex/matcher"
)

// NodeID indexes a Node within a Graph; the first node added has ID 0. Use
// InvalidNode to mean "no successor".
type NodeID uint32

// InvalidNode marks an unset successor link.
const InvalidNode NodeID = 0xFFFFFFFF

// SubmatchEdge tells the simulator to record the start or end of a
// submatch span when a thread passes through the owning Node.
type SubmatchEdge uint8

const (
	// NoSubmatch means this node carries no submatch bookkeeping.
	NoSubmatch SubmatchEdge = iota
	// SubmatchStart records the current position as a capture's start.
	SubmatchStart
	// SubmatchEnd records the current position as a capture's end.
	SubmatchEnd
)

func (s SubmatchEdge) String() string {
	switch s {
	case SubmatchStart:
		return "Start"
	case SubmatchEnd:
		return "End"
	default:
		return ""
	}
}

// Node is a single vertex of the state graph. If Matcher is nil, the node
// is an empty (epsilon) node: it consumes no input and simply forwards
// control to its successors. A node with both Out and Out1 set is a
// branch (used for alternation and quantifiers); the simulator explores
// Out before Out1 and keeps the longer match, so the order only decides
// which branch's captures win when both matches have the same length.
type Node struct {
	Matcher Matcher
	Out     NodeID
	Out1    NodeID
	Sub     SubmatchEdge
}

// Matcher is the predicate a leaf Node evaluates against the subject.
// It is exactly matcher.Matcher; Node depends on the interface rather
// than importing concrete matcher types so any Matcher implementation
// can sit in a Node.
type Matcher = matcher.Matcher

// IsEpsilon reports whether n consumes no input.
func (n *Node) IsEpsilon() bool { return n.Matcher == nil }

// IsLast reports whether n has no successors at all.
func (n *Node) IsLast() bool { return n.Out == InvalidNode && n.Out1 == InvalidNode }

func (n *Node) String() string {
	m := "_"
	if n.Matcher != nil {
		m = n.Matcher.String()
	}
	if n.Sub == NoSubmatch {
		return fmt.Sprintf("m:%s", m)
	}
	return fmt.Sprintf("m:%s sub:%s", m, n.Sub)
}

// Graph is the flat, append-only state graph: a compiled pattern.Pattern.
// Start is the entry node for matching; every Graph produced by Compile
// begins with a SubmatchStart node (the whole match, implicit) and ends at
// a SubmatchEnd node, mirroring original_source's start_compile. There is
// no per-group index anywhere in the graph: a submatch's identity is the
// subject position its SubmatchStart fires at, recorded by the simulator,
// not a number assigned at compile time.
type Graph struct {
	Nodes []Node
	Start NodeID
}

// Node returns the node at id.
func (g *Graph) Node(id NodeID) *Node { return &g.Nodes[id] }

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.Nodes) }
