package engine

import "errors"

var (
	// ErrEmptyInput indicates the request contained no text.
	ErrEmptyInput = errors.New("empty input")

	// ErrTurnBudget indicates the model kept requesting tools past the
	// multi-turn limit.
	ErrTurnBudget = errors.New("turn budget exhausted")
)
