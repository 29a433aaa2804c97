// Package pattern defines the abstract syntax tree produced by the parser
// and consumed by the compiler, along with the optimizer that simplifies it.
//
// A Pattern is an immutable tagged variant tree. Each concrete type below
// implements the Pattern interface as a marker; the compiler and optimizer
// switch on concrete type with a type switch, the idiomatic Go analog of
// exhaustive case analysis over a closed sum type.
package pattern

import "fmt"

// Pattern is the common interface implemented by every AST node.
//
// The interface has no methods beyond the marker and String; all behavior
// lives in the optimizer and compiler, which type-switch over concrete
// Patterns.
type Pattern interface {
	isPattern()
	String() string
}

// Concat is an ordered sequence of patterns. It must have at least one
// child; an empty Concat is never produced by the parser or optimizer.
type Concat struct {
	Items []Pattern
}

func (*Concat) isPattern() {}

func (c *Concat) String() string {
	return fmt.Sprintf("Concat%v", c.Items)
}

// Alternate is an unordered choice between two or more patterns. After
// optimization no Alternate has fewer than two children and no child is
// itself an Alternate.
type Alternate struct {
	Items []Pattern
}

func (*Alternate) isPattern() {}

func (a *Alternate) String() string {
	return fmt.Sprintf("Alternate%v", a.Items)
}

// Repeated wraps a Repetition, making it a Pattern in its own right so it
// can appear as a Concat/Alternate child or be wrapped in a Submatch.
type Repeated struct {
	Rep Repetition
}

func (*Repeated) isPattern() {}

func (r *Repeated) String() string {
	return fmt.Sprintf("Repeated(%s)", r.Rep.String())
}

// Submatch marks a capture group: the span consumed by Inner is reported
// to the caller as a submatch.
type Submatch struct {
	Inner Pattern
}

func (*Submatch) isPattern() {}

func (s *Submatch) String() string {
	return fmt.Sprintf("Submatch(%s)", s.Inner.String())
}

// Char matches a single codepoint exactly.
type Char struct {
	C rune
}

func (*Char) isPattern() {}

func (c *Char) String() string { return fmt.Sprintf("Char(%q)", c.C) }

// Str matches a run of codepoints exactly, in order. The parser emits only
// the empty Str (for an empty source, group or alternative); non-empty Str
// values come from the optimizer's literal-fusion pass.
type Str struct {
	S []rune
}

func (*Str) isPattern() {}

func (s *Str) String() string { return fmt.Sprintf("Str(%q)", string(s.S)) }

// Any matches any single codepoint; it does not match once no codepoint is
// left to consume (see matcher package for the exact boundary semantics).
type Any struct{}

func (*Any) isPattern() {}

func (*Any) String() string { return "Any" }

// CharRange matches any codepoint in the inclusive range [Lo, Hi].
type CharRange struct {
	Lo, Hi rune
}

func (*CharRange) isPattern() {}

func (r *CharRange) String() string { return fmt.Sprintf("CharRange(%q-%q)", r.Lo, r.Hi) }

// CharSet matches any codepoint contained in the set.
type CharSet struct {
	Set []rune
}

func (*CharSet) isPattern() {}

func (s *CharSet) String() string { return fmt.Sprintf("CharSet(%q)", string(s.Set)) }

// AnchorLocation discriminates between the two positional anchors.
type AnchorLocation uint8

const (
	// Begin anchors to position 0 of the subject.
	Begin AnchorLocation = iota
	// End anchors to the final position (len) of the subject.
	End
)

func (l AnchorLocation) String() string {
	if l == Begin {
		return "Begin"
	}
	return "End"
}

// Anchor matches a zero-width position in the subject.
type Anchor struct {
	Location AnchorLocation
}

func (*Anchor) isPattern() {}

func (a *Anchor) String() string { return fmt.Sprintf("Anchor(%s)", a.Location) }

// Repetition is the tagged variant describing how a sub-pattern repeats.
// Like Pattern, it is a closed sum type dispatched via type switch.
type Repetition interface {
	isRepetition()
	String() string
	// Sub returns the repeated sub-pattern common to every variant.
	Sub() Pattern
}

// ZeroOrOnce repeats P zero or one times ("?").
type ZeroOrOnce struct{ P Pattern }

func (ZeroOrOnce) isRepetition()    {}
func (z ZeroOrOnce) Sub() Pattern   { return z.P }
func (z ZeroOrOnce) String() string { return fmt.Sprintf("ZeroOrOnce(%s)", z.P) }

// ZeroOrMore repeats P zero or more times ("*").
type ZeroOrMore struct{ P Pattern }

func (ZeroOrMore) isRepetition()    {}
func (z ZeroOrMore) Sub() Pattern   { return z.P }
func (z ZeroOrMore) String() string { return fmt.Sprintf("ZeroOrMore(%s)", z.P) }

// OnceOrMore repeats P one or more times ("+").
type OnceOrMore struct{ P Pattern }

func (OnceOrMore) isRepetition()    {}
func (o OnceOrMore) Sub() Pattern   { return o.P }
func (o OnceOrMore) String() string { return fmt.Sprintf("OnceOrMore(%s)", o.P) }

// Specific repeats P between Min and Max times. Max of nil means "no upper
// bound stated by the user" — see the compiler for how this interacts with
// Min to reproduce the source engine's documented {n} quirk (spec.md §9).
type Specific struct {
	P        Pattern
	Min      int
	Max      *int
}

func (Specific) isRepetition()  {}
func (s Specific) Sub() Pattern { return s.P }
func (s Specific) String() string {
	if s.Max == nil {
		return fmt.Sprintf("Specific(%s, %d, None)", s.P, s.Min)
	}
	return fmt.Sprintf("Specific(%s, %d, Some(%d))", s.P, s.Min, *s.Max)
}
