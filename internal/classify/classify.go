// Package classify maps free-text transaction descriptions to categories
// with an ordered keyword table.
package classify

import (
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Rule maps a case-insensitive keyword to a category.
type Rule struct {
	Keyword  string         `yaml:"keyword"`
	Category model.Category `yaml:"category"`
}

// Classifier evaluates rules in order; the first keyword found in the
// description wins.
type Classifier struct {
	rules []rule
}

type rule struct {
	needle   string // upper-cased keyword
	category model.Category
}

// New creates a Classifier from an ordered rule list.
func New(rules []Rule) *Classifier {
	compiled := make([]rule, 0, len(rules))
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		compiled = append(compiled, rule{needle: strings.ToUpper(r.Keyword), category: r.Category})
	}
	return &Classifier{rules: compiled}
}

// Default returns a Classifier over DefaultRules.
func Default() *Classifier {
	return New(DefaultRules())
}

// Classify returns the category of the first matching rule, or Other.
func (c *Classifier) Classify(description string) model.Category {
	upper := strings.ToUpper(description)
	for _, r := range c.rules {
		if strings.Contains(upper, r.needle) {
			return r.category
		}
	}
	return model.CategoryOther
}

// Len returns the number of active rules.
func (c *Classifier) Len() int { return len(c.rules) }
