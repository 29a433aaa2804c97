package pattern

// Optimize rewrites p bottom-up into an equivalent, simpler tree.
//
// Children are optimized first; then two rewrites are applied, in order,
// at the current level:
//  1. concatLiterals fuses adjacent Char/Str children of a Concat into a
//     single Str (or Char, for a single leftover codepoint).
//  2. flattenAlternate replaces any Alternate child that is itself an
//     Alternate with its children, recursively.
//
// Optimize is idempotent: Optimize(Optimize(p)) and Optimize(p) produce
// structurally identical trees, because once a Concat contains no
// adjacent literals and no Alternate contains a nested Alternate, neither
// rewrite has anything left to do.
//
// Grounded on original_source/src/repr.rs optimize::optimize.
func Optimize(p Pattern) Pattern {
	p = optimizeChildren(p)
	p = concatLiterals(p)
	return flattenAlternate(p)
}

// optimizeChildren applies Optimize recursively to every child of every
// compound Pattern/Repetition variant.
func optimizeChildren(p Pattern) Pattern {
	switch v := p.(type) {
	case *Concat:
		items := make([]Pattern, len(v.Items))
		for i, c := range v.Items {
			items[i] = Optimize(c)
		}
		return &Concat{Items: items}
	case *Submatch:
		return &Submatch{Inner: Optimize(v.Inner)}
	case *Alternate:
		items := make([]Pattern, len(v.Items))
		for i, c := range v.Items {
			items[i] = Optimize(c)
		}
		return &Alternate{Items: items}
	case *Repeated:
		return &Repeated{Rep: optimizeRepetition(v.Rep)}
	default:
		return p
	}
}

func optimizeRepetition(r Repetition) Repetition {
	switch v := r.(type) {
	case ZeroOrOnce:
		return ZeroOrOnce{P: Optimize(v.P)}
	case ZeroOrMore:
		return ZeroOrMore{P: Optimize(v.P)}
	case OnceOrMore:
		return OnceOrMore{P: Optimize(v.P)}
	case Specific:
		return Specific{P: Optimize(v.P), Min: v.Min, Max: v.Max}
	default:
		return r
	}
}

// concatLiterals collapses runs of adjacent Char/Str children of a Concat
// into a single Str (or a Char, if exactly one codepoint remains in the
// run). Non-literal children break a run and are passed through as-is.
// If the rewritten Concat ends up with a single child, that child is
// returned unwrapped.
func concatLiterals(p Pattern) Pattern {
	c, ok := p.(*Concat)
	if !ok {
		return p
	}

	var newElems []Pattern
	var run []rune

	flushRun := func() {
		switch len(run) {
		case 0:
			return
		case 1:
			newElems = append(newElems, &Char{C: run[0]})
		default:
			s := make([]rune, len(run))
			copy(s, run)
			newElems = append(newElems, &Str{S: s})
		}
		run = nil
	}

	for _, item := range c.Items {
		switch v := item.(type) {
		case *Char:
			run = append(run, v.C)
		case *Str:
			run = append(run, v.S...)
		default:
			flushRun()
			newElems = append(newElems, item)
		}
	}
	flushRun()

	if len(newElems) == 1 {
		return newElems[0]
	}
	return &Concat{Items: newElems}
}

// flattenAlternate replaces Alternate[..., Alternate[...], ...] with the
// concatenation of the nested alternatives, recursively. If only one
// alternative remains after flattening, it is returned unwrapped.
func flattenAlternate(p Pattern) Pattern {
	a, ok := p.(*Alternate)
	if !ok {
		return p
	}

	flat := flattenAlternateItems(a.Items)
	if len(flat) == 1 {
		return flat[0]
	}
	return &Alternate{Items: flat}
}

func flattenAlternateItems(items []Pattern) []Pattern {
	var out []Pattern
	for _, it := range items {
		if nested, ok := it.(*Alternate); ok {
			out = append(out, flattenAlternateItems(nested.Items)...)
		} else {
			out = append(out, it)
		}
	}
	return out
}
