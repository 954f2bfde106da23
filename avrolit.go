// Package avrolit transliterates Roman-script phonetic input into
// Bengali Unicode script using the Avro phonetic convention: a greedy
// longest-prefix match against a data-driven pattern table, with a
// handful of patterns gated by context-sensitive rules.
//
// Parse is pure and total: every input, including the empty string and
// malformed UTF-8, produces deterministic output with no error return.
// Construction (New, NewWithSets) is the only place a bad rule table
// can fail.
package avrolit

import (
	"github.com/avrophonetic/avrolit/internal/classify"
	"github.com/avrophonetic/avrolit/internal/engine"
	"github.com/avrophonetic/avrolit/internal/registry"
)

// Engine is a validated, immutable transliteration engine. The zero
// value is not usable; obtain one via New, NewWithSets, or Default.
type Engine = engine.Engine

// Config controls optional, non-semantic engine behavior.
type Config = engine.Config

// DefaultConfig returns the configuration New uses when none is given
// explicitly by a caller constructing their own Engine.
func DefaultConfig() Config { return engine.DefaultConfig() }

// New builds an Engine from raw rule-table JSON using the canonical
// Avro character-class sets. It returns an error describing the first
// defective pattern if data is malformed.
func New(data []byte) (*Engine, error) {
	return engine.New(data, engine.DefaultConfig())
}

// NewWithSets is New, but lets a caller supply alternate vowel/
// consonant/case-sensitive/digit classes alongside an alternate table.
func NewWithSets(data []byte, vowels, consonants, caseSensitives, digits string) (*Engine, error) {
	sets := classify.New(vowels, consonants, caseSensitives, digits)
	return engine.NewWithSets(data, sets, engine.DefaultConfig())
}

// Default returns the process-wide shared Engine built from the
// embedded canonical rule table, constructing it on first use.
func Default() (*Engine, error) {
	return registry.Default()
}

// Parse transliterates text using the shared default Engine. It panics
// only if the embedded rule table itself is corrupt, which would also
// fail every other consumer of this module — see Default for a
// version that surfaces that condition as an error instead.
func Parse(text string) string {
	e, err := registry.Default()
	if err != nil {
		panic(err)
	}
	return e.Parse(text)
}

// CountVowels counts vowel occurrences in text under the canonical
// Avro character classes. Supplements the reference implementation's
// equivalent helper; unused by Parse itself.
func CountVowels(text string) int {
	return classify.Default().CountVowels(text)
}

// CountConsonants counts consonant occurrences in text under the
// canonical Avro character classes. See CountVowels.
func CountConsonants(text string) int {
	return classify.Default().CountConsonants(text)
}
