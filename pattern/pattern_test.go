package pattern

import "testing"

func TestStringers(t *testing.T) {
	cases := []struct {
		name string
		p    Pattern
	}{
		{"char", &Char{C: 'a'}},
		{"str", &Str{S: []rune("abc")}},
		{"any", &Any{}},
		{"range", &CharRange{Lo: 'a', Hi: 'z'}},
		{"set", &CharSet{Set: []rune("xyz")}},
		{"anchor-begin", &Anchor{Location: Begin}},
		{"anchor-end", &Anchor{Location: End}},
		{"concat", &Concat{Items: []Pattern{&Char{C: 'a'}, &Char{C: 'b'}}}},
		{"alternate", &Alternate{Items: []Pattern{&Char{C: 'a'}, &Char{C: 'b'}}}},
		{"submatch", &Submatch{Inner: &Char{C: 'a'}}},
		{"repeated-star", &Repeated{Rep: ZeroOrMore{P: &Char{C: 'a'}}}},
		{"repeated-plus", &Repeated{Rep: OnceOrMore{P: &Char{C: 'a'}}}},
		{"repeated-opt", &Repeated{Rep: ZeroOrOnce{P: &Char{C: 'a'}}}},
		{"repeated-specific", &Repeated{Rep: Specific{P: &Char{C: 'a'}, Min: 2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.p.String() == "" {
				t.Fatalf("expected non-empty String()")
			}
		})
	}
}

func TestRepetitionSub(t *testing.T) {
	inner := &Char{C: 'z'}
	max := 3
	reps := []Repetition{
		ZeroOrOnce{P: inner},
		ZeroOrMore{P: inner},
		OnceOrMore{P: inner},
		Specific{P: inner, Min: 1, Max: &max},
	}
	for _, r := range reps {
		if r.Sub() != Pattern(inner) {
			t.Fatalf("Sub() did not return the wrapped pattern for %v", r)
		}
	}
}
