// Package pattern holds the Avro rule-table data model — Pattern,
// ConditionalRule, MatchPredicate — and the ordered, immutable table built
// from it.
package pattern

// PredicateType is which neighbor of the match span a predicate examines.
type PredicateType int

const (
	// Prefix examines the character immediately before the matched span.
	Prefix PredicateType = iota
	// Suffix examines the character immediately after the matched span.
	Suffix
)

// ScopeKind is the kind of context check a predicate performs.
type ScopeKind int

const (
	Punctuation ScopeKind = iota
	Vowel
	Consonant
	Exact
)

// Scope names the context check a predicate performs. Value is only
// meaningful when Kind == Exact, holding the literal window to compare.
type Scope struct {
	Kind  ScopeKind
	Value string
}

// MatchPredicate is a single context check about the character (or
// literal window) adjacent to a matched span. Negation is pre-compiled
// into Negative at load time rather than re-parsed from a "!"-prefixed
// scope string on every evaluation.
type MatchPredicate struct {
	Type     PredicateType
	Scope    Scope
	Negative bool
}

// ConditionalRule is a guarded alternative replacement: it fires only if
// every predicate in Matches holds.
type ConditionalRule struct {
	Matches []MatchPredicate
	Replace string
}

// Pattern is one entry of the ordered rule table: find is the input
// prefix it recognizes, Replace is the default output, and Rules (if
// non-empty) lists conditional alternatives evaluated in order before
// falling back to Replace.
type Pattern struct {
	Find    string
	Replace string
	Rules   []ConditionalRule
}

// HasRules reports whether p carries conditional sub-rules.
func (p Pattern) HasRules() bool {
	return len(p.Rules) > 0
}
