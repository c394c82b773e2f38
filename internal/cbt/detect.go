// Package cbt computes cognitive-behavioral-therapy analytics over thought
// records and CBT mood entries: distortion detection and frequency, practice
// streaks, weekly progress windows, technique effectiveness and
// recommendations.
package cbt

import (
	"github.com/mindwell/mindwell/internal/classify"
)

// DetectDistortions classifies free text against the fixed 12-label
// cognitive-distortion taxonomy. Each label appears at most once.
func DetectDistortions(text string) []string {
	return classify.Distortions.Classify(classify.PlainText(text))
}

const (
	maxChallengeQuestions  = 5
	maxBalancedSuggestions = 4
)

// challengeQuestions holds the thought-challenging prompts per distortion.
var challengeQuestions = map[string][]string{
	"all-or-nothing":             {"Is this truly all-or-nothing, or is there a middle ground?", "Can you think of a time when the outcome was partial rather than total?"},
	"catastrophizing":            {"What is the most likely outcome, not the worst one?", "If the worst did happen, how would you cope?"},
	"mind-reading":               {"What evidence do you have about what they actually think?", "Could there be another explanation for their behavior?"},
	"fortune-telling":            {"How often have your predictions like this come true?", "What would you tell a friend making this prediction?"},
	"should-statements":          {"Who set this rule, and does it serve you?", "What would change if you replaced 'should' with 'could'?"},
	"personalization":            {"What factors outside your control contributed to this?", "Would you hold a friend responsible for the same outcome?"},
	"mental-filter":              {"What went well that you might be filtering out?", "If you listed everything about the situation, how much is actually negative?"},
	"disqualifying-the-positive": {"Why doesn't the positive count?", "What would it mean to accept the compliment at face value?"},
	"jumping-to-conclusions":     {"What facts support this conclusion, and what facts don't?", "What other conclusions fit the same evidence?"},
	"magnification-minimization": {"How important will this be in a year?", "Are you weighing the negatives and positives on the same scale?"},
	"emotional-reasoning":        {"Is feeling this way proof that it is true?", "What do the facts say, separate from the feeling?"},
	"labeling":                   {"Does one event define who you are?", "How would you describe the behavior without labeling the person?"},
}

// balancedSuggestions holds balanced-thought starters per distortion.
var balancedSuggestions = map[string][]string{
	"all-or-nothing":             {"Parts of this went well and parts didn't; both can be true."},
	"catastrophizing":            {"The most likely outcome is manageable, and I have handled hard things before."},
	"mind-reading":               {"I don't actually know what they think; I can ask instead of assuming."},
	"fortune-telling":            {"I can't know the future; I can prepare without predicting the worst."},
	"should-statements":          {"I would prefer this, but it isn't a law I'm breaking."},
	"personalization":            {"Many factors contributed to this; my part is only one of them."},
	"mental-filter":              {"The negative detail is real, but it isn't the whole picture."},
	"disqualifying-the-positive": {"The positive things count as much as the negative ones."},
	"jumping-to-conclusions":     {"The evidence is incomplete; I can wait before deciding what it means."},
	"magnification-minimization": {"This matters, but in proportion; it is neither everything nor nothing."},
	"emotional-reasoning":        {"Feelings are information, not proof."},
	"labeling":                   {"One outcome does not define me; I can describe what happened instead."},
}

// ChallengeQuestions returns thought-challenging questions for the detected
// distortions, capped at 5, in detection order.
func ChallengeQuestions(distortions []string) []string {
	var questions []string
	for _, d := range distortions {
		for _, q := range challengeQuestions[d] {
			questions = append(questions, q)
			if len(questions) == maxChallengeQuestions {
				return questions
			}
		}
	}
	return questions
}

// BalancedSuggestions returns balanced-thought starters for the detected
// distortions, capped at 4, in detection order.
func BalancedSuggestions(distortions []string) []string {
	var suggestions []string
	for _, d := range distortions {
		for _, s := range balancedSuggestions[d] {
			suggestions = append(suggestions, s)
			if len(suggestions) == maxBalancedSuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}
