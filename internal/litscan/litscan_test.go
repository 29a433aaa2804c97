package litscan

import (
	"testing"

	"github.com/dermesser/rex/matcher"
)

func TestAdvanceFindsFirstLiteral(t *testing.T) {
	sc := New([][]rune{[]rune("foo"), []rune("bar")})
	s := matcher.NewSubject("xxxxbarxxxfooxxx")
	pos := sc.Advance(s, 0)
	if pos > 4 {
		t.Fatalf("Advance should not overshoot the bar at 4, got %d", pos)
	}
}

func TestAdvanceNoOccurrenceReturnsLen(t *testing.T) {
	sc := New([][]rune{[]rune("zzz")})
	s := matcher.NewSubject("abcdef")
	pos := sc.Advance(s, 0)
	if pos != len(s) {
		t.Fatalf("Advance with no occurrence = %d, want %d", pos, len(s))
	}
}

func TestAdvanceFromMidway(t *testing.T) {
	sc := New([][]rune{[]rune("needle")})
	s := matcher.NewSubject("needle-needle")
	pos := sc.Advance(s, 3)
	if pos < 3 || pos > 7 {
		t.Fatalf("Advance(from=3) = %d, want within [3,7]", pos)
	}
}

func TestAdvanceNeverOvershoots(t *testing.T) {
	sc := New([][]rune{[]rune("ab"), []rune("abc")})
	s := matcher.NewSubject("xxxabcxxx")
	pos := sc.Advance(s, 0)
	if pos > 3 {
		t.Fatalf("Advance overshot the occurrence at 3, got %d", pos)
	}
}
