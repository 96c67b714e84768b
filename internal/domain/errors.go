package domain

import "errors"

var (
	// ErrGameNotFound is returned when a game session does not exist or has ended.
	ErrGameNotFound = errors.New("game not found")
	// ErrUnknownMode is returned for mode names outside the fixed enumeration.
	ErrUnknownMode = errors.New("unknown game mode")
	// ErrCorpusEmpty indicates the language corpus could not supply any entries.
	ErrCorpusEmpty = errors.New("language corpus is empty")
	// ErrCorpusNotFound indicates corpus content could not be loaded.
	ErrCorpusNotFound = errors.New("language corpus not found")
	// ErrInvalidUsername is returned for usernames rejected by validation.
	ErrInvalidUsername = errors.New("invalid username")
)
