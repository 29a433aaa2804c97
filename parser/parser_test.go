package parser

import (
	"reflect"
	"testing"

	"github.com/dermesser/rex/pattern"
)

func TestParseLiteralConcat(t *testing.T) {
	got, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Char{C: 'a'}, &pattern.Char{C: 'b'}, &pattern.Char{C: 'c'},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(abc) = %v, want %v", got, want)
	}
}

func TestParseEmptySource(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if _, ok := got.(*pattern.Str); !ok {
		t.Fatalf("Parse(\"\") = %v, want empty Str", got)
	}
}

func TestParseEmptyGroup(t *testing.T) {
	got, err := Parse("a()b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Char{C: 'a'},
		&pattern.Submatch{Inner: &pattern.Str{S: []rune{}}},
		&pattern.Char{C: 'b'},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a()b) = %v, want %v", got, want)
	}
}

func TestParseDot(t *testing.T) {
	got, err := Parse(".")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := got.(*pattern.Any); !ok {
		t.Fatalf("Parse(.) = %v, want Any", got)
	}
}

func TestParseAnchors(t *testing.T) {
	got, err := Parse("^a$")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Anchor{Location: pattern.Begin},
		&pattern.Char{C: 'a'},
		&pattern.Anchor{Location: pattern.End},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(^a$) = %v, want %v", got, want)
	}
}

func TestParseAnchorsLiteralMidString(t *testing.T) {
	got, err := Parse("a^b$c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Char{C: 'a'}, &pattern.Char{C: '^'}, &pattern.Char{C: 'b'},
		&pattern.Char{C: '$'}, &pattern.Char{C: 'c'},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a^b$c) = %v, want %v", got, want)
	}
}

func TestParsePostfixOperators(t *testing.T) {
	cases := []struct {
		src  string
		want pattern.Repetition
	}{
		{"a+", pattern.OnceOrMore{P: &pattern.Char{C: 'a'}}},
		{"a*", pattern.ZeroOrMore{P: &pattern.Char{C: 'a'}}},
		{"a?", pattern.ZeroOrOnce{P: &pattern.Char{C: 'a'}}},
	}
	for _, c := range cases {
		got, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%s): %v", c.src, err)
		}
		want := &pattern.Repeated{Rep: c.want}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Parse(%s) = %v, want %v", c.src, got, want)
		}
	}
}

func TestParseNothingToRepeat(t *testing.T) {
	if _, err := Parse("+"); err == nil {
		t.Fatalf("Parse(+) should fail")
	}
	if _, err := Parse("(a)*+"); err != nil {
		t.Fatalf("Parse((a)*+) should succeed, got %v", err)
	}
}

func TestParseAlternate(t *testing.T) {
	got, err := Parse("ab|cd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Alternate{Items: []pattern.Pattern{
		&pattern.Concat{Items: []pattern.Pattern{&pattern.Char{C: 'a'}, &pattern.Char{C: 'b'}}},
		&pattern.Concat{Items: []pattern.Pattern{&pattern.Char{C: 'c'}, &pattern.Char{C: 'd'}}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(ab|cd) = %v, want %v", got, want)
	}
}

func TestParseGroupSubmatch(t *testing.T) {
	got, err := Parse("a(bc)d")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Char{C: 'a'},
		&pattern.Submatch{Inner: &pattern.Concat{Items: []pattern.Pattern{
			&pattern.Char{C: 'b'}, &pattern.Char{C: 'c'},
		}}},
		&pattern.Char{C: 'd'},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a(bc)d) = %v, want %v", got, want)
	}
}

func TestParseUnopenedAndUnclosed(t *testing.T) {
	cases := []string{"a)", "(a", "a]", "[a", "a}", "{a"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Fatalf("Parse(%s) should fail", c)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("ab)")
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Pos != 2 {
		t.Fatalf("Pos = %d, want 2", perr.Pos)
	}
}

func TestParseCharClassSingleChar(t *testing.T) {
	got, err := Parse("[a]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Char{C: 'a'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse([a]) = %v, want %v", got, want)
	}
}

func TestParseCharClassSingleRange(t *testing.T) {
	got, err := Parse("[a-z]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.CharRange{Lo: 'a', Hi: 'z'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse([a-z]) = %v, want %v", got, want)
	}
}

func TestParseCharClassMixed(t *testing.T) {
	got, err := Parse("[a-z_]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Alternate{Items: []pattern.Pattern{
		&pattern.CharRange{Lo: 'a', Hi: 'z'},
		&pattern.Char{C: '_'},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse([a-z_]) = %v, want %v", got, want)
	}
}

func TestParseCharClassTrailingDashLiteral(t *testing.T) {
	got, err := Parse("[a-]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Alternate{Items: []pattern.Pattern{
		&pattern.CharSet{Set: []rune{'a', '-'}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse([a-]) = %v, want %v", got, want)
	}
}

func TestParseCharClassEmpty(t *testing.T) {
	if _, err := Parse("[]"); err == nil {
		t.Fatalf("Parse([]) should fail")
	}
}

func TestParseBoundedRepetitionExact(t *testing.T) {
	got, err := Parse("a{3}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &pattern.Repeated{Rep: pattern.Specific{P: &pattern.Char{C: 'a'}, Min: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a{3}) = %v, want %v", got, want)
	}
	spec := got.(*pattern.Repeated).Rep.(pattern.Specific)
	if spec.Max != nil {
		t.Fatalf("Specific.Max = %v, want nil (spec.md §9 {n} quirk)", *spec.Max)
	}
}

func TestParseBoundedRepetitionRange(t *testing.T) {
	got, err := Parse("a{2,4}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := 4
	want := &pattern.Repeated{Rep: pattern.Specific{P: &pattern.Char{C: 'a'}, Min: 2, Max: &m}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a{2,4}) = %v, want %v", got, want)
	}
}

func TestParseBoundedRepetitionUpperOnly(t *testing.T) {
	got, err := Parse("a{,4}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := 4
	want := &pattern.Repeated{Rep: pattern.Specific{P: &pattern.Char{C: 'a'}, Min: 0, Max: &m}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a{,4}) = %v, want %v", got, want)
	}
}

func TestParseBoundedRepetitionLowerOnly(t *testing.T) {
	got, err := Parse("a{2,}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fixed := 2
	want := &pattern.Concat{Items: []pattern.Pattern{
		&pattern.Repeated{Rep: pattern.Specific{P: &pattern.Char{C: 'a'}, Min: 2, Max: &fixed}},
		&pattern.Repeated{Rep: pattern.ZeroOrMore{P: &pattern.Char{C: 'a'}}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(a{2,}) = %v, want %v", got, want)
	}
}

func TestParseBoundedRepetitionInvalid(t *testing.T) {
	cases := []string{"a{}", "a{,}", "a{x}", "a{4,2}"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Fatalf("Parse(%s) should fail", c)
		}
	}
}

func TestParseMaxRecursionDepth(t *testing.T) {
	src := ""
	for i := 0; i < 10; i++ {
		src = "(" + src + "a)"
	}
	if _, err := ParseWithDepthLimit(src, 3); err == nil {
		t.Fatalf("expected recursion-depth error with maxDepth=3")
	}
	if _, err := ParseWithDepthLimit(src, 100); err != nil {
		t.Fatalf("ParseWithDepthLimit with generous depth: %v", err)
	}
}
