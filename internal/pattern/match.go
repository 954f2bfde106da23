package pattern

// Result reports the outcome of a single table lookup at a cursor
// position: whether a pattern matched, which one, and (for the rule
// sub-table) the rule list still to be evaluated.
type Result struct {
	Matched bool
	Pattern Pattern
}

// MatchNonRule returns the first pattern in the non-rule sub-table whose
// Find is a prefix of text[cur:], in original table order. A miss is
// reported via Result.Matched == false, never an error.
func (t *Table) MatchNonRule(text []rune, cur int) Result {
	return match(text, cur, t.NonRule, t.nonRuleByFirst)
}

// MatchRule returns the first pattern in the rule sub-table whose Find is
// a prefix of text[cur:], in original table order.
func (t *Table) MatchRule(text []rune, cur int) Result {
	return match(text, cur, t.Rule, t.ruleByFirst)
}

func match(text []rune, cur int, table []Pattern, byFirst map[rune][]int) Result {
	if cur >= len(text) {
		return Result{}
	}
	candidates, ok := byFirst[text[cur]]
	if !ok {
		return Result{}
	}
	// candidates holds indices into table in ascending order, which is
	// also their original relative order in the full pattern list — the
	// bucket index only narrows the scan, it never reorders entries.
	for _, idx := range candidates {
		p := table[idx]
		find := []rune(p.Find)
		end := cur + len(find)
		if end > len(text) {
			continue
		}
		if runesEqual(text[cur:end], find) {
			return Result{Matched: true, Pattern: p}
		}
	}
	return Result{}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
