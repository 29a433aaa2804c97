// Package parser turns a regex source string into a pattern.Pattern tree.
//
// The grammar and the stack-machine shape of the recursive descent are
// grounded on original_source/src/parse.rs (ParseStack/ParseState,
// find_closing_paren), generalized to the fuller token table spec.md §4.1
// describes: positional anchors, bounded repetition, and character
// classes, none of which the original snapshot implements.
package parser

import "github.com/dermesser/rex/pattern"

// DefaultMaxDepth bounds the parser's recursion depth before parsing fails
// with a recursion-limit error, guarding against stack overflow on
// adversarial input. Each group and each '|' adds one level, since both
// recurse into parseWindow. See SPEC_FULL.md §4.1.
const DefaultMaxDepth = 1000

// Parse parses source using DefaultMaxDepth.
func Parse(source string) (pattern.Pattern, error) {
	return ParseWithDepthLimit(source, DefaultMaxDepth)
}

// ParseWithDepthLimit parses source, failing with an *ParseError once the
// recursion depth exceeds maxDepth. Group nesting and each '|' count
// toward the depth, so a long chain of alternatives hits the limit too.
func ParseWithDepthLimit(source string, maxDepth int) (pattern.Pattern, error) {
	p := &parser{src: []rune(source), maxDepth: maxDepth}
	return p.parseWindow(0, len(p.src), 0)
}

type parser struct {
	src      []rune
	maxDepth int
}

// parseWindow parses the slice src[lo:hi] as a complete alternation of
// concatenations, in the style of the original's recursive parse_re: a
// local stack accumulates one Pattern per token, postfix operators pop
// and rewrap the top, and '|' recurses on the remainder before folding
// the two halves into an Alternate.
func (p *parser) parseWindow(lo, hi, depth int) (pattern.Pattern, error) {
	if depth > p.maxDepth {
		return nil, errAt(lo, "regex too deeply nested")
	}

	var stack []pattern.Pattern
	i := lo
	for i < hi {
		c := p.src[i]
		switch c {
		case '.':
			stack = append(stack, &pattern.Any{})
			i++

		case '^':
			if i == 0 {
				stack = append(stack, &pattern.Anchor{Location: pattern.Begin})
			} else {
				stack = append(stack, &pattern.Char{C: '^'})
			}
			i++

		case '$':
			if i == len(p.src)-1 {
				stack = append(stack, &pattern.Anchor{Location: pattern.End})
			} else {
				stack = append(stack, &pattern.Char{C: '$'})
			}
			i++

		case '+', '*', '?':
			if len(stack) == 0 {
				return nil, errAt(i, "nothing to repeat")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var rep pattern.Repetition
			switch c {
			case '+':
				rep = pattern.OnceOrMore{P: top}
			case '*':
				rep = pattern.ZeroOrMore{P: top}
			case '?':
				rep = pattern.ZeroOrOnce{P: top}
			}
			stack = append(stack, &pattern.Repeated{Rep: rep})
			i++

		case '|':
			rest, err := p.parseWindow(i+1, hi, depth+1)
			if err != nil {
				return nil, err
			}
			return &pattern.Alternate{Items: []pattern.Pattern{stackToPattern(stack), rest}}, nil

		case '(':
			close, ok := findClosing(p.src, i, hi, '(', ')')
			if !ok {
				return nil, errAt(i, "unclosed group")
			}
			inner, err := p.parseWindow(i+1, close, depth+1)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &pattern.Submatch{Inner: inner})
			i = close + 1

		case ')':
			return nil, errAt(i, "unopened )")

		case '[':
			close, ok := findClosing(p.src, i, hi, '[', ']')
			if !ok {
				return nil, errAt(i, "unclosed character class")
			}
			cls, err := parseCharClass(p.src[i+1:close], i+1)
			if err != nil {
				return nil, err
			}
			stack = append(stack, cls)
			i = close + 1

		case ']':
			return nil, errAt(i, "unopened ]")

		case '{':
			close, ok := findClosing(p.src, i, hi, '{', '}')
			if !ok {
				return nil, errAt(i, "unclosed repetition")
			}
			if len(stack) == 0 {
				return nil, errAt(i, "nothing to repeat")
			}
			top := stack[len(stack)-1]
			rep, err := parseBoundedRepetition(p.src[i+1:close], i+1, top)
			if err != nil {
				return nil, err
			}
			stack[len(stack)-1] = rep
			i = close + 1

		case '}':
			return nil, errAt(i, "unopened }")

		default:
			stack = append(stack, &pattern.Char{C: c})
			i++
		}
	}
	return stackToPattern(stack), nil
}

// stackToPattern folds an accumulated stack into a single Pattern. An
// empty stack — the whole source, or an empty group "()" — yields a
// zero-length Str, which matches at every position without consuming
// input. Treating "empty" this way, rather than as a parse error, is the
// resolution spec.md §9's open question calls for (see SPEC_FULL.md §9).
func stackToPattern(stack []pattern.Pattern) pattern.Pattern {
	switch len(stack) {
	case 0:
		return &pattern.Str{S: []rune{}}
	case 1:
		return stack[0]
	default:
		return &pattern.Concat{Items: stack}
	}
}

// findClosing scans src[start:limit] for the bracket balancing the one at
// start, tracking only the given pair — other bracket families are
// invisible to it, matching spec.md's per-family bracket-balancing rule.
func findClosing(src []rune, start, limit int, open, close rune) (int, bool) {
	depth := 0
	for i := start; i < limit; i++ {
		switch src[i] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth == 0 {
			return i, true
		}
	}
	return -1, false
}
