package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avrophonetic/avrolit/internal/engine"
	"github.com/avrophonetic/avrolit/internal/registry"
)

// scenario is one known input/output pair the validate subcommand
// checks the engine against. These mirror the reference implementation's
// own worked examples, not anything fetched over a network.
type scenario struct {
	name  string
	input string
	want  string
}

var scenarios = []scenario{
	{"sentence with word-initial and mid-word rules", "ami banglay gan gai", "আমি বাংলায় গান গাই"},
	{"non-rule exact hit", "bhl", "ভ্ল"},
	{"digit transliteration", "1234567890", "১২৩৪৫৬৭৮৯০"},
	{"literal run precedence", "...", "..."},
	{"rule fallback inside consonants", "kOI", "কৈ"},
	{"backtick suppresses word-initial vowel rule", "a`", "া"},
	{"prefix-consonant blocks suffix rule", "boo", "বু"},
	{"empty input", "", ""},
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "run the engine against a fixed set of known-good scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := defaultEngine()
			if err != nil {
				return fmt.Errorf("avrolit: %w", err)
			}
			return runValidate(cmd, e, scenarios)
		},
	}
}

func runValidate(cmd *cobra.Command, e *engine.Engine, cases []scenario) error {
	out := cmd.OutOrStdout()
	passed := 0

	for _, c := range cases {
		got := e.Parse(c.input)
		ok := got == c.want
		if ok {
			passed++
			fmt.Fprintf(out, "PASS %s: %q -> %q\n", c.name, c.input, got)
		} else {
			fmt.Fprintf(out, "FAIL %s: %q -> %q (want %q)\n", c.name, c.input, got, c.want)
		}
	}

	fmt.Fprintf(out, "\n%d/%d scenarios passed\n", passed, len(cases))
	if passed != len(cases) {
		return fmt.Errorf("avrolit: %d scenario(s) failed", len(cases)-passed)
	}
	return nil
}

func defaultEngine() (*engine.Engine, error) {
	e, err := registry.Default()
	if err != nil {
		logrus.WithError(err).Error("avrolit: failed to build default engine")
		return nil, err
	}
	return e, nil
}
