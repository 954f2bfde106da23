package normalize

import (
	"testing"

	"github.com/avrophonetic/avrolit/internal/classify"
)

func TestCase(t *testing.T) {
	sets := classify.Default()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases plain consonants and vowels", "Kolkata", "kolkata"},
		{"preserves a case-sensitive letter", "Dhaka", "Dhaka"},
		{"preserves case-sensitive letters mid-word", "GOLD", "GOlD"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Case(tc.in, sets); got != tc.want {
				t.Errorf("Case(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCasePreservesRuneCount(t *testing.T) {
	sets := classify.Default()
	in := "MixedCASEtext123"
	got := Case(in, sets)
	if len([]rune(got)) != len([]rune(in)) {
		t.Errorf("Case(%q) changed rune count: got %q", in, got)
	}
}
