// Package classify implements the character-class predicates the Avro
// phonetic convention is built on: vowel, consonant, digit, punctuation,
// and case-sensitivity.
package classify

import "unicode"

// Sets holds the four immutable character-class sets the engine is
// constructed with. The zero value is not usable; use Default.
type Sets struct {
	vowels         string
	consonants     string
	caseSensitives string
	digits         string
}

// Default returns the canonical Avro character-class sets.
func Default() Sets {
	return New("aeiou", "bcdfghjklmnpqrstvwxyz", "oiudgjnrstyz", "0123456789")
}

// New builds a Sets from explicit class strings, letting callers load an
// alternate convention alongside an alternate pattern table.
func New(vowels, consonants, caseSensitives, digits string) Sets {
	return Sets{
		vowels:         vowels,
		consonants:     consonants,
		caseSensitives: caseSensitives,
		digits:         digits,
	}
}

// IsVowel reports whether lowercase(c) is one of the vowel runes.
func (s Sets) IsVowel(c rune) bool {
	return containsFold(s.vowels, c)
}

// IsConsonant reports whether lowercase(c) is one of the consonant runes.
func (s Sets) IsConsonant(c rune) bool {
	return containsFold(s.consonants, c)
}

// IsDigit reports whether lowercase(c) is one of the digit runes.
func (s Sets) IsDigit(c rune) bool {
	return containsFold(s.digits, c)
}

// IsPunctuation reports whether c is neither a vowel nor a consonant.
// Digits and every other symbol count as punctuation.
func (s Sets) IsPunctuation(c rune) bool {
	return !s.IsVowel(c) && !s.IsConsonant(c)
}

// IsCaseSensitive reports whether c's case carries phonetic meaning and
// must be preserved by case normalization.
func (s Sets) IsCaseSensitive(c rune) bool {
	return containsFold(s.caseSensitives, c)
}

func containsFold(set string, c rune) bool {
	lc := unicode.ToLower(c)
	for _, r := range set {
		if r == lc {
			return true
		}
	}
	return false
}

// CountVowels counts vowel occurrences in text. Unused by the transducer
// itself; exposed for parity with the reference implementation, which
// carried the equivalent (unused) helper.
func (s Sets) CountVowels(text string) int {
	count := 0
	for _, r := range text {
		if s.IsVowel(r) {
			count++
		}
	}
	return count
}

// CountConsonants counts consonant occurrences in text. See CountVowels.
func (s Sets) CountConsonants(text string) int {
	count := 0
	for _, r := range text {
		if s.IsConsonant(r) {
			count++
		}
	}
	return count
}
