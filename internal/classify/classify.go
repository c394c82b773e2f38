// Package classify implements keyword-based text classification against
// fixed label taxonomies. One table serves both the memory feature extractors
// and the CBT distortion detector, so new labels can be added without
// touching call sites.
//
// Matching is deliberately simple: case-insensitive substring containment,
// no stemming, no weighting. A label is emitted at most once no matter how
// often its keywords appear. This keeps classification deterministic and
// table-testable.
package classify

import "strings"

// Rule maps a label to the keywords that trigger it.
type Rule struct {
	Label    string
	Keywords []string
}

// Taxonomy is an ordered list of classification rules.
type Taxonomy struct {
	Name  string
	Rules []Rule
}

// Classify returns the labels whose keywords appear in text, in rule order,
// each at most once. Empty text yields no labels.
func (t *Taxonomy) Classify(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var labels []string
	for _, rule := range t.Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				labels = append(labels, rule.Label)
				break
			}
		}
	}
	return labels
}

// Labels returns all labels in the taxonomy, in rule order.
func (t *Taxonomy) Labels() []string {
	labels := make([]string, 0, len(t.Rules))
	for _, rule := range t.Rules {
		labels = append(labels, rule.Label)
	}
	return labels
}
