// Package emotions detects the emotional tone of a scenario with a hosted
// text classifier and derives the red/green/neutral classification from it.
package emotions

import (
	"cmp"
	"slices"
)

// TopN is the number of scores kept from a classifier response.
const TopN = 3

// Score is one emotion label with the classifier's confidence.
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Tone is the classification shown to users, derived from the top emotion.
type Tone string

const (
	ToneCautionary Tone = "🚨 Red Flag! Be cautious."
	ToneFavorable  Tone = "✅ Green Flag! Looks good."
	ToneNeutral    Tone = "⚖️ Neutral. Context matters."
)

var (
	cautionary = []string{"anger", "disgust", "fear", "sadness"}
	favorable  = []string{"joy", "love", "surprise"}
)

// Defaults returns the scores used whenever classification fails.
func Defaults() []Score {
	return []Score{
		{Label: "neutral", Score: 0.5},
		{Label: "joy", Score: 0.3},
		{Label: "surprise", Score: 0.2},
	}
}

// Derive classifies scores by the label of the first entry.
func Derive(scores []Score) Tone {
	if len(scores) == 0 {
		return ToneNeutral
	}
	return ToneFor(scores[0].Label)
}

// ToneFor maps a single emotion label to its Tone.
func ToneFor(label string) Tone {
	switch {
	case slices.Contains(cautionary, label):
		return ToneCautionary
	case slices.Contains(favorable, label):
		return ToneFavorable
	default:
		return ToneNeutral
	}
}

// Top returns the n highest scores in descending order. Equal scores keep
// their original relative order. The input is not modified.
func Top(scores []Score, n int) []Score {
	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, func(a, b Score) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Labels returns the label of each score in order.
func Labels(scores []Score) []string {
	labels := make([]string, len(scores))
	for i, s := range scores {
		labels[i] = s.Label
	}
	return labels
}
