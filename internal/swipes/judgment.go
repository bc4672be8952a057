package swipes

import (
	"fmt"

	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/pkg/formatting"
)

// Judgment is the model's verdict on a swipe session. DeluluRating is
// returned exactly as the model produced it.
type Judgment struct {
	Judgment     string  `json:"judgment"`
	DeluluRating float64 `json:"deluluRating"`
}

var (
	// UnparsableJudgment answers model output that is not JSON.
	UnparsableJudgment = Judgment{
		Judgment:     "🎭 Your dating intuition is... interesting! Some choices were spot-on, others had us raising eyebrows. You're walking the fine line between confidence and delusion!",
		DeluluRating: 5,
	}

	// IncompleteJudgment answers JSON missing a judgment or numeric rating.
	IncompleteJudgment = Judgment{
		Judgment:     "🎭 Your dating intuition is a mix of wisdom and wishful thinking! You've got some solid instincts but might be reading into things just a little too much.",
		DeluluRating: 6,
	}

	// UnavailableJudgment accompanies ErrGenerator responses.
	UnavailableJudgment = Judgment{
		Judgment:     "🤖 AI had a moment there! But based on your choices, you seem to have a good balance of romantic optimism and realistic expectations.",
		DeluluRating: 5,
	}
)

// ParseJudgment reads model output, tolerating a markdown code fence.
// It never fails: unusable output maps to one of the canned judgments and
// parsed reports whether the model's own values were used.
func ParseJudgment(text string) (j Judgment, parsed bool) {
	value, err := formatting.Parse[any](text)
	if err != nil {
		return UnparsableJudgment, false
	}

	// Valid JSON that is not an object is incomplete, not unparsable.
	obj, ok := value.(map[string]any)
	if !ok {
		return IncompleteJudgment, false
	}

	judgment, ok := obj["judgment"].(string)
	if !ok || judgment == "" {
		return IncompleteJudgment, false
	}
	rating, ok := obj["deluluRating"].(float64)
	if !ok {
		return IncompleteJudgment, false
	}

	return Judgment{Judgment: judgment, DeluluRating: rating}, true
}

// Record builds the log entry stored for a judged swipe session.
func (j Judgment) Record(swipes []responses.Swipe) responses.Record {
	rizz, risk := responses.Count(swipes)
	rating := responses.ClampRating(j.DeluluRating)

	return responses.Record{
		Scenario:       fmt.Sprintf("Swipe Game: %d cards (%d Rizz, %d Risk)", len(swipes), rizz, risk),
		Classification: fmt.Sprintf("🎮 Delulu Rating: %d/10", rating),
		Message:        j.Judgment,
		Emotions: []emotions.Score{
			{Label: "swipe-analysis", Score: float64(rating) / 10},
		},
		GameData: &responses.GameData{
			SwipeResults: swipes,
			DeluluRating: responses.Rating(rating),
		},
	}
}
