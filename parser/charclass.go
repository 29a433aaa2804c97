package parser

import "github.com/dermesser/rex/pattern"

// parseCharClass implements spec.md §4.1's character-class grammar over
// content, the codepoints strictly between the '[' and ']' delimiters.
// basePos is content's absolute position in the source, for error
// reporting.
//
// Repeatedly: if the next three codepoints form X-Y (a dash in the
// middle), emit a CharRange and advance three; otherwise accumulate the
// codepoint into a running loose set and advance one. A trailing or
// leading '-' never satisfies the three-codepoint lookahead, so it falls
// through to the loose set as a literal dash with no special-casing.
func parseCharClass(content []rune, basePos int) (pattern.Pattern, error) {
	if len(content) == 0 {
		return nil, errAt(basePos, "empty character class")
	}

	var ranges []pattern.Pattern
	var loose []rune

	i := 0
	for i < len(content) {
		if i+2 < len(content) && content[i+1] == '-' {
			ranges = append(ranges, &pattern.CharRange{Lo: content[i], Hi: content[i+2]})
			i += 3
			continue
		}
		loose = append(loose, content[i])
		i++
	}

	switch {
	case len(ranges) == 0 && len(loose) == 1:
		return &pattern.Char{C: loose[0]}, nil
	case len(ranges) == 1 && len(loose) == 0:
		return ranges[0], nil
	default:
		items := append([]pattern.Pattern{}, ranges...)
		if len(loose) == 1 {
			items = append(items, &pattern.Char{C: loose[0]})
		} else if len(loose) > 1 {
			items = append(items, &pattern.CharSet{Set: loose})
		}
		return &pattern.Alternate{Items: items}, nil
	}
}

// parseBoundedRepetition implements spec.md §4.1's bounded-repetition
// grammar over content, the codepoints strictly between '{' and '}', for
// the preceding pattern top.
//
//	{n}    -> Specific(top, n, None)       -- see spec.md §9's {n} quirk
//	{n,m}  -> Specific(top, n, Some(m))
//	{,m}   -> Specific(top, 0, Some(m))
//	{n,}   -> Concat[Specific(top, n, Some(n)), ZeroOrMore(top)]
func parseBoundedRepetition(content []rune, basePos int, top pattern.Pattern) (pattern.Pattern, error) {
	commaAt := -1
	commas := 0
	for idx, r := range content {
		if r == ',' {
			commas++
			commaAt = idx
		}
	}
	if commas > 1 {
		return nil, errAt(basePos, "invalid repetition: too many commas")
	}

	if commas == 0 {
		n, ok := parseNumber(content)
		if !ok {
			return nil, errAt(basePos, "invalid repetition bound")
		}
		return &pattern.Repeated{Rep: pattern.Specific{P: top, Min: n}}, nil
	}

	left, right := content[:commaAt], content[commaAt+1:]
	switch {
	case len(left) == 0 && len(right) == 0:
		return nil, errAt(basePos, "invalid repetition: empty bounds")

	case len(left) == 0:
		m, ok := parseNumber(right)
		if !ok {
			return nil, errAt(basePos, "invalid repetition upper bound")
		}
		return &pattern.Repeated{Rep: pattern.Specific{P: top, Min: 0, Max: &m}}, nil

	case len(right) == 0:
		n, ok := parseNumber(left)
		if !ok {
			return nil, errAt(basePos, "invalid repetition lower bound")
		}
		fixed := n
		return &pattern.Concat{Items: []pattern.Pattern{
			&pattern.Repeated{Rep: pattern.Specific{P: top, Min: n, Max: &fixed}},
			&pattern.Repeated{Rep: pattern.ZeroOrMore{P: top}},
		}}, nil

	default:
		n, ok1 := parseNumber(left)
		m, ok2 := parseNumber(right)
		if !ok1 || !ok2 {
			return nil, errAt(basePos, "invalid repetition bounds")
		}
		if m < n {
			return nil, errAt(basePos, "invalid repetition: upper bound below lower bound")
		}
		return &pattern.Repeated{Rep: pattern.Specific{P: top, Min: n, Max: &m}}, nil
	}
}

func parseNumber(digits []rune) (int, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	n := 0
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, false
		}
		n = n*10 + int(d-'0')
	}
	return n, true
}
