package pattern

// LiteralSet describes a finite set of codepoint strings such that every
// match of the originating pattern must contain at least one of them as a
// substring. It is reported by ExtractLiterals on a best-effort basis: an
// empty, Ok == false result means no useful literal set could be derived,
// not that the pattern never matches.
//
// This is consumed only by an optional prefilter accelerator (see
// internal/litscan); it must never be used to decide whether a match
// exists, only to pick candidate start positions faster.
type LiteralSet struct {
	Ok       bool
	Literals [][]rune
}

// ExtractConfig bounds how much work/memory ExtractLiterals may spend.
// Mirrors the shape of the teacher's literal.ExtractorConfig (MaxLiterals,
// MaxLiteralLen, MaxClassSize), trimmed to the knobs this engine's
// simpler, non-Unicode-property AST actually needs.
type ExtractConfig struct {
	// MaxLiterals caps the number of literal alternatives tracked before
	// extraction gives up (returns Ok == false) rather than growing
	// unboundedly for patterns like (a|b|c|...|z).
	MaxLiterals int
	// MaxClassSize caps how large a CharSet may be before it is treated as
	// "too broad to help a prefilter" and extraction aborts. A CharRange
	// aborts extraction whatever its size.
	MaxClassSize int
}

// DefaultExtractConfig returns the conservative defaults used by Compile.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{MaxLiterals: 64, MaxClassSize: 8}
}

// ExtractLiterals attempts to compute a LiteralSet for p. It succeeds only
// for patterns built entirely out of Char/Str/Concat/Alternate/Submatch
// and CharSets of at most cfg.MaxClassSize members (a Submatch is
// transparent to extraction) — the presence of Any, CharRange, Anchor, a
// wider CharSet, or any Repeated node anywhere in the tree makes exact
// literal-set extraction infeasible, and
// extraction reports Ok == false rather than approximate.
//
// Grounded on the teacher's literal.Extractor design (config-bounded,
// "ok, empty" result), adapted from regexp/syntax.Regexp traversal to
// this package's own Pattern AST.
func ExtractLiterals(p Pattern, cfg ExtractConfig) LiteralSet {
	set, ok := extract(p, cfg)
	if !ok || len(set) == 0 {
		return LiteralSet{}
	}
	return LiteralSet{Ok: true, Literals: set}
}

// extract returns the cross-product set of literal strings matched by p,
// or ok == false if p contains anything extraction cannot represent
// exactly as a finite literal set.
func extract(p Pattern, cfg ExtractConfig) (set [][]rune, ok bool) {
	switch v := p.(type) {
	case *Char:
		return [][]rune{{v.C}}, true

	case *Str:
		cp := make([]rune, len(v.S))
		copy(cp, v.S)
		return [][]rune{cp}, true

	case *Submatch:
		return extract(v.Inner, cfg)

	case *CharSet:
		if len(v.Set) == 0 || len(v.Set) > cfg.MaxClassSize {
			return nil, false
		}
		out := make([][]rune, len(v.Set))
		for i, c := range v.Set {
			out[i] = []rune{c}
		}
		return out, true

	case *Concat:
		cur := [][]rune{{}}
		for _, item := range v.Items {
			next, ok := extract(item, cfg)
			if !ok {
				return nil, false
			}
			cur = crossProduct(cur, next, cfg.MaxLiterals)
			if cur == nil {
				return nil, false
			}
		}
		return cur, true

	case *Alternate:
		var out [][]rune
		for _, item := range v.Items {
			sub, ok := extract(item, cfg)
			if !ok {
				return nil, false
			}
			out = append(out, sub...)
			if len(out) > cfg.MaxLiterals {
				return nil, false
			}
		}
		return out, true

	default:
		// Any, CharRange, Anchor, Repeated: no finite exact literal set.
		return nil, false
	}
}

// crossProduct concatenates every element of a with every element of b,
// bailing out to nil once the result would exceed limit entries.
func crossProduct(a, b [][]rune, limit int) [][]rune {
	if len(a)*len(b) > limit {
		return nil
	}
	out := make([][]rune, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			combined := make([]rune, 0, len(x)+len(y))
			combined = append(combined, x...)
			combined = append(combined, y...)
			out = append(out, combined)
		}
	}
	return out
}
