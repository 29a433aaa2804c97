// Package dot renders a compiled state graph as Graphviz dot source, for
// inspecting or visualizing what a pattern compiled to.
//
// Grounded on original_source/src/state.rs's dot() (breadth-first walk
// from node 0 with a visited set and a work queue, one
// "id label" -> "id label"; edge line per successor), ported to a
// slice-backed queue and strings.Builder.
package dot

import (
	"fmt"
	"strings"

	"github.com/dermesser/rex/internal/sparse"
	"github.com/dermesser/rex/nfa"
)

// RenderGraph walks g breadth-first from its start node and returns a
// Graphviz digraph: one edge line per (node, successor) pair inside a
// "digraph { ... }" block, labeled with each node's matcher/submatch
// description via Node.String().
func RenderGraph(g *nfa.Graph) string {
	var out strings.Builder
	out.WriteString("digraph {\n")

	visited := sparse.NewSparseSet(uint32(g.Len()))
	queue := []nfa.NodeID{g.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Contains(uint32(current)) {
			continue
		}
		visited.Insert(uint32(current))

		node := g.Node(current)
		for _, next := range []nfa.NodeID{node.Out, node.Out1} {
			if next == nfa.InvalidNode {
				continue
			}
			fmt.Fprintf(&out, "%q -> %q;\n",
				fmt.Sprintf("%d %s", current, node.String()),
				fmt.Sprintf("%d %s", next, g.Node(next).String()),
			)
			if !visited.Contains(uint32(next)) {
				queue = append(queue, next)
			}
		}
	}

	out.WriteString("}\n")
	return out.String()
}
