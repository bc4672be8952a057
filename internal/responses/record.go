// Package responses persists each user's verdict history as an
// append-only JSON array in Postgres.
package responses

import (
	"encoding/json"
	"math"
	"time"

	"github.com/rizzorrisk/rizz/internal/emotions"
)

// TimestampLayout renders record timestamps as ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Choice is a swipe direction in the card game.
type Choice string

const (
	ChoiceRizz Choice = "rizz"
	ChoiceRisk Choice = "risk"
)

// Valid reports whether c is a known choice.
func (c Choice) Valid() bool {
	return c == ChoiceRizz || c == ChoiceRisk
}

// Swipe is one card decision from the swipe game.
type Swipe struct {
	CardID   int    `json:"cardId"`
	Scenario string `json:"scenario"`
	Choice   Choice `json:"choice"`
}

// GameData is attached to records produced by the swipe game.
type GameData struct {
	SwipeResults []Swipe `json:"swipeResults"`
	DeluluRating Rating  `json:"deluluRating"`
}

// Rating is a stored delulu rating in 0..10. Fractional or out-of-range
// values in older records are normalized with ClampRating on decode.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rating(ClampRating(f))
	return nil
}

// Record is one stored verdict. Records are immutable once appended.
type Record struct {
	ID             string           `json:"id,omitempty"`
	Scenario       string           `json:"scenario"`
	Classification string           `json:"classification"`
	Message        string           `json:"message"`
	Emotions       []emotions.Score `json:"emotions"`
	Timestamp      string           `json:"timestamp"`
	AttachmentKey  string           `json:"attachmentKey,omitempty"`
	GameData       *GameData        `json:"gameData,omitempty"`
}

// Owner identifies the user a log belongs to.
type Owner struct {
	UserID string
	Email  string
}

// Timestamp formats t in TimestampLayout, UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ClampRating rounds a model rating to the nearest integer within 0..10.
func ClampRating(r float64) int {
	if math.IsNaN(r) {
		return 0
	}
	return int(math.Max(0, math.Min(10, math.Round(r))))
}

// Count tallies swipes by choice.
func Count(swipes []Swipe) (rizz, risk int) {
	for _, s := range swipes {
		switch s.Choice {
		case ChoiceRizz:
			rizz++
		case ChoiceRisk:
			risk++
		}
	}
	return rizz, risk
}
