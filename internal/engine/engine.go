// Package engine implements the transducer loop (spec §4.5): it drives a
// cursor across normalized input, consulting the non-rule pattern table
// first, then the rule table plus its conditional evaluator, falling back
// to verbatim identity when nothing matches.
package engine

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avrophonetic/avrolit/internal/classify"
	"github.com/avrophonetic/avrolit/internal/fingerprint"
	"github.com/avrophonetic/avrolit/internal/normalize"
	"github.com/avrophonetic/avrolit/internal/pattern"
	"github.com/avrophonetic/avrolit/internal/rules"
	"github.com/avrophonetic/avrolit/internal/sanitize"
)

// Config controls optional, non-semantic behavior of an Engine. The zero
// value is not DefaultConfig — use DefaultConfig for sensible defaults.
type Config struct {
	// ComputeFingerprint controls whether New stamps the engine with a
	// content hash of its rule table (see internal/fingerprint). Pure
	// bookkeeping; never affects Parse's output.
	ComputeFingerprint bool
}

// DefaultConfig returns the engine configuration used by Default/New when
// no explicit Config is supplied.
func DefaultConfig() Config {
	return Config{ComputeFingerprint: true}
}

// Engine holds an immutable, validated rule table and character-class
// sets. It is constructed once and is safe for concurrent use by
// multiple Parse calls: Parse takes no lock and mutates no field.
type Engine struct {
	table       *pattern.Table
	sets        classify.Sets
	config      Config
	fingerprint string
}

// New builds an Engine from raw rule-table JSON and the canonical Avro
// character-class sets. It returns a *pattern.MalformedRuleTableError if
// the table contains a defective entry (spec §7).
func New(data []byte, cfg Config) (*Engine, error) {
	return NewWithSets(data, classify.Default(), cfg)
}

// NewWithSets is New, but lets a caller supply alternate character-class
// sets alongside an alternate rule table (e.g. a different phonetic
// convention entirely).
func NewWithSets(data []byte, sets classify.Sets, cfg Config) (*Engine, error) {
	table, err := pattern.Load(data)
	if err != nil {
		logrus.WithError(err).Warn("avrolit: rejected malformed rule table")
		return nil, err
	}

	e := &Engine{table: table, sets: sets, config: cfg}
	if cfg.ComputeFingerprint {
		e.fingerprint = fingerprint.Of(data)
	}

	logrus.WithFields(logrus.Fields{
		"non_rule_patterns": len(table.NonRule),
		"rule_patterns":     len(table.Rule),
		"fingerprint":       e.fingerprint,
	}).Debug("avrolit: engine constructed")

	return e, nil
}

// Fingerprint returns the content hash of the rule table this engine was
// built from, or "" if Config.ComputeFingerprint was false.
func (e *Engine) Fingerprint() string { return e.fingerprint }

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.config }

// Sets returns the engine's character-class sets, e.g. for callers that
// want to classify characters the same way the engine does.
func (e *Engine) Sets() classify.Sets { return e.sets }

// Parse transduces text into Bengali script. It is total and
// deterministic: every string, including the empty string, produces a
// result, and repeated calls on the same input yield identical output.
func (e *Engine) Parse(text string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, seg := range sanitize.Split(text) {
		if !seg.Valid {
			// An undecodable byte can't be case-normalized or matched;
			// it passes through exactly as spec §4.6/§7 (EncodingFailure
			// recovery) requires.
			out.WriteString(seg.Text)
			continue
		}
		out.WriteString(e.transduce(seg.Text))
	}
	return out.String()
}

// transduce runs the match/rewrite loop of spec §4.5 over one segment of
// already-valid text.
func (e *Engine) transduce(text string) string {
	normalized := normalize.Case(text, e.sets)
	t := []rune(normalized)
	n := len(t)

	var out strings.Builder
	curEnd := 0

	for cur := 0; cur < n; cur++ {
		if cur < curEnd {
			continue // already consumed by a prior replacement
		}

		if res := e.table.MatchNonRule(t, cur); res.Matched {
			out.WriteString(res.Pattern.Replace)
			curEnd = cur + len([]rune(res.Pattern.Find))
			continue
		}

		if res := e.table.MatchRule(t, cur); res.Matched {
			findLen := len([]rune(res.Pattern.Find))
			curEnd = cur + findLen
			if replaced, ok := rules.Evaluate(res.Pattern.Rules, t, cur, curEnd, e.sets); ok {
				out.WriteString(replaced)
			} else {
				out.WriteString(res.Pattern.Replace)
			}
			continue
		}

		// Identity fallback: no pattern matched at all.
		out.WriteRune(t[cur])
		curEnd = cur + 1
	}

	return out.String()
}
