package prompts

const analyzeInstructions = `You're my Gen Z bestie who’s always real, dropping truth bombs like we’re gossiping over coffee.`

const judgeInstructions = `You are an expert in detecting "delulu" (delusional) behavior in dating scenarios.
Analyze the following user's swipe choices (💚 = Valid Rizz, ❤️ = Delulu Risk).
Provide a short funny but accurate summary judgment of their mindset.`

var instructions = map[Stage]string{
	StageAnalyze: analyzeInstructions,
	StageJudge:   judgeInstructions,
}

// Instructions returns the persona instructions for a stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
