package prompts

import (
	"fmt"
	"strings"

	"github.com/rizzorrisk/rizz/internal/responses"
)

// Compose wraps data with the stage's instructions and output spec.
// Returns ErrInvalidStage if the stage is not recognized.
func Compose(stage Stage, data string) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", err
	}
	spec, err := Spec(stage)
	if err != nil {
		return "", err
	}

	sep := separators[stage]
	return instructions + sep + data + sep + spec, nil
}

// Analyze builds the verdict prompt for a scenario and its detected
// emotion labels.
func Analyze(scenario string, labels []string) (string, error) {
	data := fmt.Sprintf(
		`I just told you this crush scenario: "%s". Pick up on the emotions — %s — and give me a quick reality check. Is this delulu or realistic?`,
		scenario, strings.Join(labels, ", "),
	)
	return Compose(StageAnalyze, data)
}

// Judge builds the swipe judgment prompt enumerating every card decision.
func Judge(swipes []responses.Swipe) (string, error) {
	var sb strings.Builder
	sb.WriteString("Data:\n")

	for i, s := range swipes {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Card %d: %q → %s", i+1, s.Scenario, ChoiceLabel(s.Choice))
	}

	return Compose(StageJudge, sb.String())
}

// ChoiceLabel renders a swipe choice the way the judge prompt names it.
func ChoiceLabel(c responses.Choice) string {
	if c == responses.ChoiceRizz {
		return "Valid Rizz 💚"
	}
	return "Delulu Risk ❤️"
}
