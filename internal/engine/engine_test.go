package engine

import (
	"errors"
	"testing"

	"github.com/avrophonetic/avrolit/internal/pattern"
)

func TestNewRejectsMalformedTable(t *testing.T) {
	_, err := New([]byte(`[{"find":"","replace":"x"}]`), DefaultConfig())
	var malformed *pattern.MalformedRuleTableError
	if !errors.As(err, &malformed) {
		t.Fatalf("New error = %v, want *pattern.MalformedRuleTableError", err)
	}
}

func TestNewComputesFingerprintWhenConfigured(t *testing.T) {
	data := []byte(`[{"find":"a","replace":"x"}]`)
	e, err := New(data, Config{ComputeFingerprint: true})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if e.Fingerprint() == "" {
		t.Errorf("Fingerprint() is empty, want a non-empty digest")
	}
}

func TestNewSkipsFingerprintWhenNotConfigured(t *testing.T) {
	data := []byte(`[{"find":"a","replace":"x"}]`)
	e, err := New(data, Config{ComputeFingerprint: false})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if e.Fingerprint() != "" {
		t.Errorf("Fingerprint() = %q, want empty when ComputeFingerprint is false", e.Fingerprint())
	}
}

func TestParseEmptyString(t *testing.T) {
	e, err := New([]byte(`[{"find":"a","replace":"x"}]`), DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := e.Parse(""); got != "" {
		t.Errorf("Parse(\"\") = %q, want empty", got)
	}
}

func TestParseNonRuleMatch(t *testing.T) {
	e, err := New([]byte(`[{"find":"bhl","replace":"X"}]`), DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := e.Parse("bhl"); got != "X" {
		t.Errorf("Parse(bhl) = %q, want %q", got, "X")
	}
}

func TestParseIdentityFallback(t *testing.T) {
	e, err := New([]byte(`[{"find":"z","replace":"Z"}]`), DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := e.Parse("xyz"); got != "xyz" {
		t.Errorf("Parse(xyz) = %q, want unmatched characters passed through", got)
	}
}

func TestParseNonRulePrecedesRuleMatch(t *testing.T) {
	data := `[
		{"find":"oi","replace":"NONRULE"},
		{"find":"oi","replace":"RULEDEFAULT","rules":[
			{"matches":[{"type":"prefix","scope":"punctuation"}],"replace":"RULEFIRED"}
		]}
	]`
	e, err := New([]byte(data), DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := e.Parse("oi"); got != "NONRULE" {
		t.Errorf("Parse(oi) = %q, want non-rule match to win regardless of order in its own sub-table", got)
	}
}

func TestParsePassesThroughInvalidUTF8(t *testing.T) {
	e, err := New([]byte(`[{"find":"a","replace":"A"}]`), DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	in := "a" + string([]byte{0xff}) + "a"
	got := e.Parse(in)
	if got != "A"+string([]byte{0xff})+"A" {
		t.Errorf("Parse with invalid UTF-8 = %q", got)
	}
}

func TestParseUsesDefaultTable(t *testing.T) {
	e, err := New(pattern.DefaultData(), DefaultConfig())
	if err != nil {
		t.Fatalf("New(DefaultData()) error: %v", err)
	}
	if got := e.Parse("ami banglay gan gai"); got != "আমি বাংলায় গান গাই" {
		t.Errorf("Parse(ami banglay gan gai) = %q", got)
	}
}
