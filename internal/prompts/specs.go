package prompts

const analyzeSpec = `Talk to me like you’re sending a voice note, keeping it chill, sassy, and straight-up. Don't use words like "hey girl" as it can be a person of any gender using the feature". Use a couple of emojis for flavor 😎, but don’t overdo it. Don’t force the slang — just sound like you’re hyping me up or lovingly dragging me. If it’s got potential, gas me up; if it’s wild, keep it 100. End with a clear verdict: "Totally delulu" or "Not delulu, go for it."`

const judgeSpec = `Respond with ONLY a valid JSON object in this exact format:
{
  "judgment": "Your witty analysis here (2-3 sentences max)",
  "deluluRating": 7
}

Do not include any markdown formatting, backticks, or extra text. Just the raw JSON.`

var specs = map[Stage]string{
	StageAnalyze: analyzeSpec,
	StageJudge:   judgeSpec,
}

// Spec returns the output specification for a stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
