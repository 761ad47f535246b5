package core

import "errors"

// CommandError carries the HTTP status a failed request should be answered
// with alongside the underlying error.
type CommandError struct {
	Payload    error
	StatusCode int
	Reason     *string
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, payload error, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (r CommandError) Error() string {
	switch {
	case r.Payload != nil:
		return r.Payload.Error()
	case r.Reason != nil:
		return *r.Reason
	default:
		return "unknown error"
	}
}

func (r CommandError) Unwrap() error {
	return r.Payload
}

// StatusCode returns the status carried by err, or 500.
func StatusCode(err error) int {
	var commandErr CommandError
	if errors.As(err, &commandErr) && commandErr.StatusCode != 0 {
		return commandErr.StatusCode
	}

	return 500
}
