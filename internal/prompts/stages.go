// Package prompts holds the persona instructions and output specifications
// sent to the chat model, and composes them with request data.
package prompts

// Stage identifies which model call a prompt is built for.
type Stage string

const (
	StageAnalyze Stage = "analyze"
	StageJudge   Stage = "judge"
)

// separators joins instructions, data and spec within a stage's prompt.
var separators = map[Stage]string{
	StageAnalyze: " ",
	StageJudge:   "\n\n",
}
