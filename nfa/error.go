package nfa

import "fmt"

// BuildError reports a pattern the compiler cannot lower. One case can be
// reached from parsed input: a pattern nested deeper than the compiler's
// recursion limit (see CompileWithDepthLimit). The others (an empty
// Concat or Alternate, an unknown node type, a Patch onto a full node, a
// dangling successor) indicate a bug in this package, not a malformed user
// pattern (those are rejected earlier, by the parser, as a
// *parser.ParseError).
//
// Grounded on the teacher's nfa/error.go split between CompileError
// (user-facing) and BuildError (internal-invariant) typed structs.
type BuildError struct {
	Message string
	Node    NodeID
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: %s (node %d)", e.Message, e.Node)
}

func buildErr(id NodeID, format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...), Node: id}
}
