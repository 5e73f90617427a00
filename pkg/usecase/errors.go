package usecase

import "errors"

// Sentinel errors for the manager facade
var (
	ErrAnswerUnavailable = errors.New("answer generation is not configured")
	ErrEmptyQuestion     = errors.New("question must not be empty")
)
