// Package rules implements the conditional rule evaluator: given a
// matched rule-bearing pattern's predicates and the surrounding context,
// decide which replacement (if any) fires.
package rules

import (
	"github.com/avrophonetic/avrolit/internal/classify"
	"github.com/avrophonetic/avrolit/internal/pattern"
)

// Evaluate walks rules in order and returns the replacement of the first
// rule whose predicates all hold. ok is false if no rule fired, in which
// case the caller should fall back to the pattern's default replacement.
func Evaluate(rules []pattern.ConditionalRule, text []rune, cur, curEnd int, sets classify.Sets) (replace string, ok bool) {
	for _, rule := range rules {
		if all(rule.Matches, text, cur, curEnd, sets) {
			return rule.Replace, true
		}
	}
	return "", false
}

func all(matches []pattern.MatchPredicate, text []rune, cur, curEnd int, sets classify.Sets) bool {
	for _, m := range matches {
		if !holds(m, text, cur, curEnd, sets) {
			return false
		}
	}
	return true
}

// holds evaluates a single predicate against the window around
// [cur, curEnd). chk is the index of the neighboring character: cur-1 for
// a prefix check, curEnd for a suffix check.
func holds(m pattern.MatchPredicate, text []rune, cur, curEnd int, sets classify.Sets) bool {
	chk := cur - 1
	if m.Type == pattern.Suffix {
		chk = curEnd
	}

	var raw bool
	switch m.Scope.Kind {
	case pattern.Punctuation:
		// Out-of-bounds counts as punctuation: edges are word boundaries.
		switch {
		case chk < 0 && m.Type == pattern.Prefix:
			raw = true
		case chk >= len(text) && m.Type == pattern.Suffix:
			raw = true
		default:
			raw = sets.IsPunctuation(text[chk])
		}
	case pattern.Vowel:
		raw = inBounds(chk, m.Type, text) && sets.IsVowel(text[chk])
	case pattern.Consonant:
		raw = inBounds(chk, m.Type, text) && sets.IsConsonant(text[chk])
	case pattern.Exact:
		raw = exactHolds(m.Scope.Value, text, cur, curEnd, m.Type)
	}

	return raw != m.Negative
}

// inBounds reports whether chk names a real character to examine: unlike
// punctuation, vowel/consonant checks never treat an out-of-bounds
// position as satisfying the raw condition.
func inBounds(chk int, t pattern.PredicateType, text []rune) bool {
	if t == pattern.Prefix {
		return chk >= 0
	}
	return chk < len(text)
}

// exactHolds checks a literal window strictly inside the string. The
// suffix case intentionally uses a strict upper bound (end < len(text)),
// so an exact suffix match touching the very end of the string is
// rejected — this asymmetry is part of the reference contract, not a bug.
func exactHolds(value string, text []rune, cur, curEnd int, t pattern.PredicateType) bool {
	v := []rune(value)
	var start, end int
	if t == pattern.Prefix {
		start = cur - len(v)
		end = cur
	} else {
		start = curEnd
		end = curEnd + len(v)
	}

	if start < 0 || end >= len(text) {
		return false
	}
	for i, r := range v {
		if text[start+i] != r {
			return false
		}
	}
	return true
}
