package dashboard

import "slices"

// Milestone is a response-count threshold that unlocks a badge.
type Milestone struct {
	Threshold   int    `json:"threshold"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var milestones = []Milestone{
	{Threshold: 3, Name: "Getting Started", Description: "Checked your first three scenarios"},
	{Threshold: 5, Name: "Delulu Detective", Description: "Five reality checks and counting"},
	{Threshold: 10, Name: "Reality Checker", Description: "Ten scenarios put to the test"},
	{Threshold: 25, Name: "Vibe Analyst", Description: "Twenty-five vibes analyzed"},
	{Threshold: 50, Name: "Rizz Scholar", Description: "Fifty verdicts deep in the research"},
	{Threshold: 100, Name: "Delulu Legend", Description: "One hundred scenarios. Legendary."},
}

// Milestones returns the milestone list in ascending threshold order.
func Milestones() []Milestone {
	return slices.Clone(milestones)
}

// MilestoneStatus is a milestone with whether a count has reached it.
type MilestoneStatus struct {
	Milestone
	Reached bool `json:"reached"`
}

// Reached reports each milestone's status for count.
func Reached(count int) []MilestoneStatus {
	status := make([]MilestoneStatus, len(milestones))
	for i, m := range milestones {
		status[i] = MilestoneStatus{Milestone: m, Reached: count >= m.Threshold}
	}
	return status
}

// Next returns the first milestone count has not reached, or nil when all
// are reached.
func Next(count int) *Milestone {
	for _, m := range milestones {
		if count < m.Threshold {
			return &m
		}
	}
	return nil
}

// CanShareBadge reports whether count unlocks the share badge, which
// happens on every third response.
func CanShareBadge(count int) bool {
	return count > 0 && count%3 == 0
}
