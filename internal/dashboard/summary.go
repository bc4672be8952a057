// Package dashboard derives a user's dashboard from their response log.
// Every value is recomputed from the log on each request.
package dashboard

import (
	"slices"
	"strings"

	"github.com/rizzorrisk/rizz/internal/responses"
)

var (
	redMarkers   = []string{"red flag", "risk"}
	greenMarkers = []string{"green flag", "valid"}
)

// SwipeStats summarizes swipe game records in a log.
type SwipeStats struct {
	GamesPlayed  int    `json:"gamesPlayed"`
	LatestRating *int   `json:"latestRating,omitempty"`
	LatestLevel  string `json:"latestLevel,omitempty"`
}

// Summary is the dashboard overview of a response log.
type Summary struct {
	Total         int               `json:"total"`
	RedFlags      int               `json:"redFlags"`
	GreenFlags    int               `json:"greenFlags"`
	Milestones    []MilestoneStatus `json:"milestones"`
	NextMilestone *Milestone        `json:"nextMilestone,omitempty"`
	CanShareBadge bool              `json:"canShareBadge"`
	Swipes        SwipeStats        `json:"swipes"`
}

// Recent returns a reversed copy of records, newest first.
func Recent(records []responses.Record) []responses.Record {
	recent := make([]responses.Record, len(records))
	copy(recent, records)
	slices.Reverse(recent)
	return recent
}

// Summarize computes the dashboard summary of records in stored order.
func Summarize(records []responses.Record) Summary {
	total := len(records)
	s := Summary{
		Total:         total,
		Milestones:    Reached(total),
		NextMilestone: Next(total),
		CanShareBadge: CanShareBadge(total),
	}

	for _, r := range records {
		if IsRed(r.Classification) {
			s.RedFlags++
		}
		if IsGreen(r.Classification) {
			s.GreenFlags++
		}
		if r.GameData != nil {
			s.Swipes.GamesPlayed++
			rating := int(r.GameData.DeluluRating)
			s.Swipes.LatestRating = &rating
			s.Swipes.LatestLevel = DeluluLevel(rating)
		}
	}

	return s
}

// IsRed reports whether a classification carries a red flag marker.
func IsRed(classification string) bool {
	return containsAny(classification, redMarkers)
}

// IsGreen reports whether a classification carries a green flag marker.
func IsGreen(classification string) bool {
	return containsAny(classification, greenMarkers)
}

// DeluluLevel names the band a 0..10 delulu rating falls in.
func DeluluLevel(rating int) string {
	switch {
	case rating >= 8:
		return "Extremely Delulu 🤯"
	case rating >= 6:
		return "Pretty Delulu 😵‍💫"
	case rating >= 4:
		return "Mildly Delulu 🙃"
	default:
		return "Realistic 😎"
	}
}

func containsAny(s string, markers []string) bool {
	s = strings.ToLower(s)
	return slices.ContainsFunc(markers, func(m string) bool {
		return strings.Contains(s, m)
	})
}
