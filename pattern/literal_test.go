package pattern

import "testing"

func TestExtractLiteralsConcat(t *testing.T) {
	p := &Concat{Items: []Pattern{&Char{C: 'a'}, &Str{S: []rune("bc")}}}
	set := ExtractLiterals(p, DefaultExtractConfig())
	if !set.Ok || len(set.Literals) != 1 || string(set.Literals[0]) != "abc" {
		t.Fatalf("unexpected extraction: %+v", set)
	}
}

func TestExtractLiteralsAlternate(t *testing.T) {
	p := &Alternate{Items: []Pattern{&Str{S: []rune("foo")}, &Str{S: []rune("bar")}}}
	set := ExtractLiterals(p, DefaultExtractConfig())
	if !set.Ok || len(set.Literals) != 2 {
		t.Fatalf("unexpected extraction: %+v", set)
	}
}

func TestExtractLiteralsGivesUpOnAny(t *testing.T) {
	p := &Concat{Items: []Pattern{&Char{C: 'a'}, &Any{}}}
	set := ExtractLiterals(p, DefaultExtractConfig())
	if set.Ok {
		t.Fatalf("expected extraction to give up on Any, got %+v", set)
	}
}

func TestExtractLiteralsGivesUpOnRepeated(t *testing.T) {
	p := &Repeated{Rep: OnceOrMore{P: &Char{C: 'a'}}}
	set := ExtractLiterals(p, DefaultExtractConfig())
	if set.Ok {
		t.Fatalf("expected extraction to give up on Repeated, got %+v", set)
	}
}

func TestExtractLiteralsThroughSubmatch(t *testing.T) {
	p := &Submatch{Inner: &Str{S: []rune("ok")}}
	set := ExtractLiterals(p, DefaultExtractConfig())
	if !set.Ok || len(set.Literals) != 1 || string(set.Literals[0]) != "ok" {
		t.Fatalf("unexpected extraction: %+v", set)
	}
}

func TestExtractLiteralsRespectsMaxLiterals(t *testing.T) {
	items := make([]Pattern, 0, 10)
	for _, c := range "abcdefghij" {
		items = append(items, &Char{C: c})
	}
	p := &Alternate{Items: items}
	set := ExtractLiterals(p, ExtractConfig{MaxLiterals: 5, MaxClassSize: 8})
	if set.Ok {
		t.Fatalf("expected extraction to abort past MaxLiterals, got %+v", set)
	}
}

func TestExtractLiteralsCharSetRespectsMaxClassSize(t *testing.T) {
	p := &CharSet{Set: []rune("abcdefghij")}
	set := ExtractLiterals(p, ExtractConfig{MaxLiterals: 64, MaxClassSize: 4})
	if set.Ok {
		t.Fatalf("expected extraction to abort on oversized CharSet, got %+v", set)
	}
}
