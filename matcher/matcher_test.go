package matcher

import "testing"

func TestCharMatcher(t *testing.T) {
	s := NewSubject("abc")
	if ok, n := (Char{C: 'a'}).Match(s, 0); !ok || n != 1 {
		t.Fatalf("Char('a').Match(abc, 0) = (%v, %d), want (true, 1)", ok, n)
	}
	if ok, _ := (Char{C: 'a'}).Match(s, 1); ok {
		t.Fatalf("Char('a').Match(abc, 1) should not match")
	}
	if ok, _ := (Char{C: 'a'}).Match(s, 3); ok {
		t.Fatalf("Char('a').Match out of bounds should not match")
	}
}

func TestStrMatcher(t *testing.T) {
	s := NewSubject("hello world")
	m := Str{S: []rune("world")}
	if ok, n := m.Match(s, 6); !ok || n != 5 {
		t.Fatalf("Str.Match(hello world, 6) = (%v, %d), want (true, 5)", ok, n)
	}
	if ok, n := m.Match(s, 7); ok || n != 5 {
		t.Fatalf("Str.Match(hello world, 7) = (%v, %d), want (false, 5)", ok, n)
	}
	if ok, _ := m.Match(s, 100); ok {
		t.Fatalf("Str.Match beyond subject length should not match")
	}
}

func TestCharRangeMatcher(t *testing.T) {
	s := NewSubject("m")
	m := CharRange{Lo: 'a', Hi: 'z'}
	if ok, n := m.Match(s, 0); !ok || n != 1 {
		t.Fatalf("CharRange.Match = (%v, %d), want (true, 1)", ok, n)
	}
	if ok, _ := m.Match(NewSubject("M"), 0); ok {
		t.Fatalf("CharRange should not match uppercase")
	}
}

func TestCharSetMatcher(t *testing.T) {
	m := CharSet{Set: []rune("xyz")}
	if ok, _ := m.Match(NewSubject("y"), 0); !ok {
		t.Fatalf("CharSet should match member")
	}
	if ok, _ := m.Match(NewSubject("a"), 0); ok {
		t.Fatalf("CharSet should not match non-member")
	}
}

func TestAnyMatcher(t *testing.T) {
	s := NewSubject("a")
	if ok, n := (Any{}).Match(s, 0); !ok || n != 1 {
		t.Fatalf("Any.Match(a, 0) = (%v, %d), want (true, 1)", ok, n)
	}
	if ok, _ := (Any{}).Match(s, 1); ok {
		t.Fatalf("Any.Match should fail past the end of subject")
	}
}

func TestAnchors(t *testing.T) {
	s := NewSubject("ab")
	if ok, n := (AnchorBegin{}).Match(s, 0); !ok || n != 0 {
		t.Fatalf("AnchorBegin at 0 should match with 0 consumed")
	}
	if ok, _ := (AnchorBegin{}).Match(s, 1); ok {
		t.Fatalf("AnchorBegin at 1 should not match")
	}
	if ok, n := (AnchorEnd{}).Match(s, 2); !ok || n != 0 {
		t.Fatalf("AnchorEnd at len should match with 0 consumed")
	}
	if ok, _ := (AnchorEnd{}).Match(s, 1); ok {
		t.Fatalf("AnchorEnd at non-final position should not match")
	}
}
