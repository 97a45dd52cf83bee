package main

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNoKeyTypes        = errors.New("no key types registered, use --manifest")
	ErrWatchRequiresFS   = errors.New("watch mode requires the fs catalog source")
	ErrUnknownFormatName = errors.New("unknown catalog format")
	ErrInterrupted       = errors.New("verification interrupted")
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFatal    = 2
)

// exitError carries a process exit code through cobra. A nil err means the
// outcome was already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }
