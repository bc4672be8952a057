package prompts

import "errors"

var ErrInvalidStage = errors.New("stage must be analyze or judge")
