package rules

import (
	"testing"

	"github.com/avrophonetic/avrolit/internal/classify"
	"github.com/avrophonetic/avrolit/internal/pattern"
)

func TestEvaluateFirstMatchingRuleWins(t *testing.T) {
	sets := classify.Default()
	text := []rune("oi")

	rs := []pattern.ConditionalRule{
		{
			Matches: []pattern.MatchPredicate{
				{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Consonant}},
			},
			Replace: "consonant-before",
		},
		{
			Matches: []pattern.MatchPredicate{
				{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Punctuation}},
			},
			Replace: "punctuation-before",
		},
	}

	replace, ok := Evaluate(rs, text, 0, 2, sets)
	if !ok {
		t.Fatalf("Evaluate returned ok=false, want a firing rule")
	}
	if replace != "punctuation-before" {
		t.Errorf("Evaluate = %q, want %q (word start counts as punctuation)", replace, "punctuation-before")
	}
}

func TestEvaluateNoRuleFires(t *testing.T) {
	sets := classify.Default()
	text := []rune("koi")

	rs := []pattern.ConditionalRule{
		{
			Matches: []pattern.MatchPredicate{
				{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Vowel}},
			},
			Replace: "should-not-fire",
		},
	}

	_, ok := Evaluate(rs, text, 1, 3, sets)
	if ok {
		t.Fatalf("Evaluate fired a rule whose predicate should not hold")
	}
}

func TestHoldsPunctuationBoundaryAtStringEdges(t *testing.T) {
	sets := classify.Default()
	text := []rune("oi")

	prefixPunct := pattern.MatchPredicate{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Punctuation}}
	if !holds(prefixPunct, text, 0, 2, sets) {
		t.Errorf("prefix punctuation predicate should hold at cur == 0")
	}

	suffixPunct := pattern.MatchPredicate{Type: pattern.Suffix, Scope: pattern.Scope{Kind: pattern.Punctuation}}
	if !holds(suffixPunct, text, 0, 2, sets) {
		t.Errorf("suffix punctuation predicate should hold at cur_end == len(text)")
	}
}

func TestHoldsVowelConsonantFalseAtStringEdges(t *testing.T) {
	sets := classify.Default()
	text := []rune("oi")

	prefixVowel := pattern.MatchPredicate{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Vowel}}
	if holds(prefixVowel, text, 0, 2, sets) {
		t.Errorf("prefix vowel predicate should be false at cur == 0")
	}

	prefixConsonant := pattern.MatchPredicate{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Consonant}}
	if holds(prefixConsonant, text, 0, 2, sets) {
		t.Errorf("prefix consonant predicate should be false at cur == 0")
	}
}

func TestHoldsNegation(t *testing.T) {
	sets := classify.Default()
	text := []rune("koi")

	prefixConsonant := pattern.MatchPredicate{Type: pattern.Prefix, Scope: pattern.Scope{Kind: pattern.Consonant}, Negative: true}
	if holds(prefixConsonant, text, 1, 3, sets) {
		t.Errorf("negated prefix-consonant predicate should be false when the prefix is in fact a consonant")
	}
}

func TestExactHoldsRejectsSuffixTouchingStringEnd(t *testing.T) {
	text := []rune("boo")
	// "bo" occupies [0,2); the suffix window [2,3) holds the literal "o",
	// but it ends at len(text), which the strict bound (end < len(text))
	// rejects.
	if exactHolds("o", text, 0, 2, pattern.Suffix) {
		t.Errorf("exact suffix predicate should be false when it would include the last character")
	}
}

func TestExactHoldsPrefixWithinBounds(t *testing.T) {
	text := []rune("aboi")
	if !exactHolds("ab", text, 2, 2, pattern.Prefix) {
		t.Errorf("exact prefix predicate should hold for a literal match strictly inside the string")
	}
}
