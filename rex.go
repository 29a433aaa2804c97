// Package rex implements a Thompson-NFA regex engine over Unicode
// codepoints, with POSIX-style leftmost-longest matching semantics.
//
// The public surface mirrors the pipeline parser -> optimizer -> compiler
// -> simulator: Parse exposes the AST, Compile produces a reusable
// *CompiledRegex, Match runs it against a subject, MatchOnce is a
// single-shot convenience, and RenderGraph dumps the compiled state graph
// as Graphviz dot source for debugging.
//
// Grounded on the teacher's root regex.go for the Compile/MustCompile/
// CompileWithConfig/DefaultConfig shape and doc-comment register.
package rex

import (
	"github.com/dermesser/rex/dot"
	"github.com/dermesser/rex/internal/litscan"
	"github.com/dermesser/rex/matcher"
	"github.com/dermesser/rex/nfa"
	"github.com/dermesser/rex/parser"
	"github.com/dermesser/rex/pattern"
)

// Config tunes engine performance and pathological-input handling. It
// never changes what matches, only how fast the engine gets there or how
// it reports input that would otherwise recurse the process to death.
type Config struct {
	// EnableLiteralPrefilter turns on the Aho-Corasick skip-ahead
	// accelerator when the optimizer can extract a useful literal set
	// from the whole pattern (see pattern.ExtractLiterals).
	EnableLiteralPrefilter bool
	// MaxRecursionDepth bounds parser and compiler recursion over nested
	// groups and quantifiers, turning a stack-overflow-prone pathological
	// pattern into a reported error.
	MaxRecursionDepth int
	// MinPrefilterLiteralLen gates prefiltering on the whole extracted
	// literal set: if any literal is shorter than this, the set isn't
	// considered useful and the engine runs unfiltered. Partial filtering
	// would be unsound — every extracted literal must stay eligible, or
	// skip-ahead could jump past a valid match equal to a short literal
	// excluded from the scan.
	MinPrefilterLiteralLen int
}

// DefaultConfig returns the configuration Compile uses implicitly: literal
// prefiltering on, a generous recursion bound, and no minimum literal
// length beyond non-empty.
func DefaultConfig() Config {
	return Config{
		EnableLiteralPrefilter: true,
		MaxRecursionDepth:      parser.DefaultMaxDepth,
		MinPrefilterLiteralLen: 1,
	}
}

// CompiledRegex is an immutable compiled pattern, safe for concurrent use
// across goroutines: each Match call runs its own simulator walk against
// its own scratch state, touching nothing shared beyond the read-only
// graph and prefilter automaton.
type CompiledRegex struct {
	source  string
	graph   *nfa.Graph
	scanner *litscan.Scanner
}

// String returns the original source this regex was compiled from.
func (re *CompiledRegex) String() string { return re.source }

// Parse parses source into its AST without optimizing or compiling it,
// for callers that want to inspect the parse tree directly.
func Parse(source string) (pattern.Pattern, error) {
	return parser.Parse(source)
}

// Compile parses, optimizes, and compiles source using DefaultConfig.
func Compile(source string) (*CompiledRegex, error) {
	return CompileWithConfig(source, DefaultConfig())
}

// MustCompile is Compile, but panics instead of returning an error. Meant
// for regexes fixed at init time, not ones derived from untrusted input.
func MustCompile(source string) *CompiledRegex {
	re, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig is Compile with explicit tuning.
func CompileWithConfig(source string, cfg Config) (*CompiledRegex, error) {
	ast, err := parser.ParseWithDepthLimit(source, cfg.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}
	ast = pattern.Optimize(ast)

	g, err := nfa.CompileWithDepthLimit(ast, cfg.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}

	var sc *litscan.Scanner
	if cfg.EnableLiteralPrefilter {
		if set := pattern.ExtractLiterals(ast, pattern.DefaultExtractConfig()); set.Ok {
			sc = prefilterFor(set, cfg.MinPrefilterLiteralLen)
		}
	}

	return &CompiledRegex{source: source, graph: g, scanner: sc}, nil
}

// prefilterFor builds a Scanner over set's literals, or returns nil if any
// of them is too short to trust: the set only guarantees soundness as a
// whole, so it is all-or-nothing, never a partially filtered subset.
func prefilterFor(set pattern.LiteralSet, minLen int) *litscan.Scanner {
	for _, lit := range set.Literals {
		if len(lit) < minLen {
			return nil
		}
	}
	if len(set.Literals) == 0 {
		return nil
	}
	return litscan.New(set.Literals)
}

// Match runs compiled against subject and returns whether it matched and,
// if so, the flattened capture map: one Span per start position whose
// submatch closed, in start order. The whole match is ordinarily the
// first entry, since its start can never be later than any nested
// submatch's — except when a nested submatch opens at that very same
// position, in which case the two collide and only one entry survives
// (spec.md's documented start-keyed capture limitation; see
// nfa.Captures). End is one past the last included codepoint position,
// per spec's positional convention.
func Match(compiled *CompiledRegex, subject string) (matched bool, submatches []nfa.Span) {
	s := matcher.NewSubject(subject)
	// compiled.scanner, being a *litscan.Scanner, must not be passed
	// directly as the nfa.Advancer interface when nil: that would wrap a
	// nil pointer in a non-nil interface value, and SearchWithAdvancer's
	// nil check would then call Advance on it. Only assign the interface
	// when there is a real Scanner behind it.
	var adv nfa.Advancer
	if compiled.scanner != nil {
		adv = compiled.scanner
	}
	ok, caps := nfa.SearchWithAdvancer(compiled.graph, s, adv)
	if !ok {
		return false, nil
	}
	return true, []nfa.Span(caps)
}

// MatchOnce compiles source with DefaultConfig and matches it against
// subject in one call — a convenience for single-shot use where the
// regex isn't reused.
func MatchOnce(source, subject string) (matched bool, submatches []nfa.Span, err error) {
	re, err := Compile(source)
	if err != nil {
		return false, nil, err
	}
	matched, submatches = Match(re, subject)
	return matched, submatches, nil
}

// RenderGraph parses, optimizes, and compiles source, then returns its
// compiled state graph as a Graphviz digraph. Intended for offline
// inspection, not a hot-path operation.
func RenderGraph(source string) (string, error) {
	re, err := Compile(source)
	if err != nil {
		return "", err
	}
	return dot.RenderGraph(re.graph), nil
}
