package pattern

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:embed data/patterns.json
var embeddedData embed.FS

// DefaultData returns the canonical, embedded rule-table JSON, reproduced
// verbatim and in original order from the reference implementation.
func DefaultData() []byte {
	data, err := embeddedData.ReadFile("data/patterns.json")
	if err != nil {
		// The embedded asset is part of the binary; a read failure here
		// means the build itself is broken, not a runtime condition.
		panic(fmt.Sprintf("pattern: embedded rule table missing: %v", err))
	}
	return data
}

// Sentinel errors a MalformedRuleTableError may wrap. Construction-time
// only — transduction never returns an error.
var (
	ErrEmptyFind          = errors.New("pattern: find is empty")
	ErrEmptyMatches       = errors.New("pattern: rule has no predicates")
	ErrMissingExactValue  = errors.New("pattern: exact scope missing value")
	ErrUnknownScope       = errors.New("pattern: unknown predicate scope")
	ErrUnknownType        = errors.New("pattern: unknown predicate type")
)

// MalformedRuleTableError reports a single defective entry found while
// building a Table from raw data.
type MalformedRuleTableError struct {
	Index int    // position of the offending pattern in the source list
	Find  string // that pattern's find string, for context
	Err   error  // one of the Err* sentinels above
}

func (e *MalformedRuleTableError) Error() string {
	return fmt.Sprintf("pattern[%d] (find=%q): %v", e.Index, e.Find, e.Err)
}

func (e *MalformedRuleTableError) Unwrap() error { return e.Err }

// rawPattern/rawRule/rawMatch mirror the on-disk JSON shape.
type rawPattern struct {
	Find    string    `json:"find"`
	Replace string    `json:"replace"`
	Rules   []rawRule `json:"rules,omitempty"`
}

type rawRule struct {
	Matches []rawMatch `json:"matches"`
	Replace string     `json:"replace"`
}

type rawMatch struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
	Value string `json:"value,omitempty"`
}

// Table is the immutable, ordered rule table, split at construction time
// into its non-rule and rule sub-tables. Both preserve the original
// relative order of patterns; the engine consults NonRule first.
type Table struct {
	NonRule []Pattern
	Rule    []Pattern

	nonRuleByFirst map[rune][]int
	ruleByFirst    map[rune][]int
}

// Load parses raw JSON pattern data into a validated, immutable Table.
// It returns a *MalformedRuleTableError (§7) on the first defective
// pattern found — an empty find, a rule with no predicates, an exact
// predicate missing its value, or an unrecognized scope/type.
func Load(data []byte) (*Table, error) {
	var raw []rawPattern
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pattern: decode rule table: %w", err)
	}

	t := &Table{
		nonRuleByFirst: make(map[rune][]int),
		ruleByFirst:    make(map[rune][]int),
	}

	for i, rp := range raw {
		if rp.Find == "" {
			return nil, &MalformedRuleTableError{Index: i, Find: rp.Find, Err: ErrEmptyFind}
		}

		p := Pattern{Find: rp.Find, Replace: rp.Replace}

		if len(rp.Rules) > 0 {
			rules := make([]ConditionalRule, 0, len(rp.Rules))
			for _, rr := range rp.Rules {
				if len(rr.Matches) == 0 {
					return nil, &MalformedRuleTableError{Index: i, Find: rp.Find, Err: ErrEmptyMatches}
				}
				matches := make([]MatchPredicate, 0, len(rr.Matches))
				for _, rm := range rr.Matches {
					mp, err := buildPredicate(rm)
					if err != nil {
						return nil, &MalformedRuleTableError{Index: i, Find: rp.Find, Err: err}
					}
					matches = append(matches, mp)
				}
				rules = append(rules, ConditionalRule{Matches: matches, Replace: rr.Replace})
			}
			p.Rules = rules
		}

		if p.HasRules() {
			idx := len(t.Rule)
			t.Rule = append(t.Rule, p)
			first := []rune(p.Find)[0]
			t.ruleByFirst[first] = append(t.ruleByFirst[first], idx)
		} else {
			idx := len(t.NonRule)
			t.NonRule = append(t.NonRule, p)
			first := []rune(p.Find)[0]
			t.nonRuleByFirst[first] = append(t.nonRuleByFirst[first], idx)
		}
	}

	return t, nil
}

func buildPredicate(rm rawMatch) (MatchPredicate, error) {
	var mp MatchPredicate

	switch rm.Type {
	case "prefix":
		mp.Type = Prefix
	case "suffix":
		mp.Type = Suffix
	default:
		return mp, ErrUnknownType
	}

	scope := rm.Scope
	if strings.HasPrefix(scope, "!") {
		mp.Negative = true
		scope = scope[1:]
	}

	switch scope {
	case "punctuation":
		mp.Scope = Scope{Kind: Punctuation}
	case "vowel":
		mp.Scope = Scope{Kind: Vowel}
	case "consonant":
		mp.Scope = Scope{Kind: Consonant}
	case "exact":
		if rm.Value == "" {
			return mp, ErrMissingExactValue
		}
		mp.Scope = Scope{Kind: Exact, Value: rm.Value}
	default:
		return mp, ErrUnknownScope
	}

	return mp, nil
}
