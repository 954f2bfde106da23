// Package normalize implements Avro's case-normalization step: characters
// whose case carries phonetic meaning keep it, everything else is folded
// to lowercase. This is the sole boundary between raw input and every
// downstream component — cursor arithmetic and context predicates only
// ever see normalized text.
package normalize

import (
	"unicode"

	"github.com/avrophonetic/avrolit/internal/classify"
)

// Case lowercases every rune in text that classify.Sets does not mark as
// case-sensitive, preserving the rest. The output has the same rune count
// as the input.
func Case(text string, sets classify.Sets) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if sets.IsCaseSensitive(r) {
			out = append(out, r)
		} else {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
