package intent

import (
	"strings"
)

// Rule maps a family of trigger substrings to a fixed instruction phrase.
type Rule struct {
	Name     string
	Triggers []string
	Phrase   string
}

func (r Rule) matches(normalized string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(normalized, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// Classifier resolves quick intents with an ordered, first-match-wins table.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Default returns a Classifier over DefaultRules.
func Default() *Classifier {
	return NewClassifier(DefaultRules...)
}

func (c *Classifier) Match(text string) (Rule, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Rule{}, false
	}
	for _, r := range c.rules {
		if r.matches(normalized) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns the phrase of the first matching rule, or text unchanged
// when no rule matches.
func (c *Classifier) Classify(text string) string {
	if r, ok := c.Match(text); ok {
		return r.Phrase
	}
	return text
}
