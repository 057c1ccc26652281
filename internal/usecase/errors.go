package usecase

import "errors"

var (
	ErrNoRenderer  = errors.New("pdf renderer not configured")
	ErrUnknownUser = errors.New("unknown user")
)
