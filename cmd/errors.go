package cmd

import "errors"

var (
	ErrNoQuizzesFound   = errors.New("no quiz files found")
	ErrInvalidSelection = errors.New("invalid choice")
)
