package prop

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genExpr draws a random expression together with its model truth value.
// Operands of binary connectives are always parenthesized, so the rendered
// source is unambiguous regardless of precedence.
func genExpr(t *rapid.T, label string, depth int) (string, bool) {
	kind := 0
	if depth < 6 {
		kind = rapid.IntRange(0, 4).Draw(t, label+"_kind")
	}
	switch kind {
	case 1: // negation
		src, val := genExpr(t, label+"_n", depth+1)
		return "~(" + src + ")", !val
	case 2: // conjunction
		left, lv := genExpr(t, label+"_l", depth+1)
		right, rv := genExpr(t, label+"_r", depth+1)
		return "(" + left + ") ^ (" + right + ")", lv && rv
	case 3: // disjunction
		left, lv := genExpr(t, label+"_l", depth+1)
		right, rv := genExpr(t, label+"_r", depth+1)
		return "(" + left + ") v (" + right + ")", lv || rv
	case 4: // implication
		left, lv := genExpr(t, label+"_l", depth+1)
		right, rv := genExpr(t, label+"_r", depth+1)
		return "(" + left + ") -> (" + right + ")", !lv || rv
	default: // atom
		if rapid.Bool().Draw(t, label+"_atom") {
			return "T", true
		}
		return "F", false
	}
}

func TestEvaluateMatchesTruthTable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src, want := genExpr(t, "expr", 0)

		got, err := Evaluate(src + ".")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", src, err)
		}
		if got != want {
			t.Errorf("Evaluate(%q) = %v, want %v", src, got, want)
		}
	})
}

func TestEvaluateIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src, _ := genExpr(t, "expr", 0)
		src += "."

		first, err1 := Evaluate(src)
		second, err2 := Evaluate(src)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected error for %q: %v, %v", src, err1, err2)
		}
		if first != second {
			t.Errorf("Evaluate(%q) flipped between %v and %v", src, first, second)
		}
	})
}

func TestEvaluateIgnoresWhitespace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src, want := genExpr(t, "expr", 0)
		src += "."

		// re-render the same expression with random spacing around every
		// token; the "->" digraph stays intact since '-' never ends a token
		spacing := rapid.SliceOfN(
			rapid.SampledFrom([]string{"", " ", "  ", "\t"}),
			len(src)+1, len(src)+1,
		).Draw(t, "spacing")
		var spaced strings.Builder
		for i, tok := range strings.Split(src, "") {
			if tok != ">" {
				spaced.WriteString(spacing[i])
			}
			spaced.WriteString(tok)
		}

		got, err := Evaluate(spaced.String())
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", spaced.String(), err)
		}
		if got != want {
			t.Errorf("Evaluate(%q) = %v, want %v", spaced.String(), got, want)
		}
	})
}

func TestEvaluateRejectsForeignRunes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src, _ := genExpr(t, "expr", 0)

		// insert a rune outside the token alphabet before the terminator
		bad := rapid.RuneFrom([]rune("#@!&|abcXYZ019?")).Draw(t, "bad")
		at := rapid.IntRange(0, len(src)).Draw(t, "at")
		mangled := src[:at] + string(bad) + src[at:] + "."

		if _, err := Evaluate(mangled); err == nil {
			t.Errorf("Evaluate(%q) succeeded, want an error", mangled)
		}
	})
}
