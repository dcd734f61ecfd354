package analysis

import "errors"

var (
	ErrPromptRequired = errors.New("prompt is required")
	ErrNoDataset      = errors.New("either a data file or a session_id is required")
)
