package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error whose message is safe to return to the caller.
// The error handler of each transport (http, cli) decides how to render it.
type PublicError struct {
	err     error
	message string
	code    string // optional, identifies the error type for clients
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

func NewPublicErrorWithCode(message string, code string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message, code: code}, 1)
}

// WithPublicMessage marks err as public. The message is err's text, prefixed if prefix is not empty.
func WithPublicMessage(err error, prefix string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: publicMessage(err, prefix)}, 1)
}

func WithPublicMessageCode(err error, prefix string, code string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: publicMessage(err, prefix), code: code}, 1)
}

func publicMessage(err error, prefix string) string {
	if prefix == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", prefix, err.Error())
}

// NewPublicErrorOf returns a public error with message that also matches kind with errors.Is.
func NewPublicErrorOf(kind error, message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.Wrap(kind, message), message: message}, 1)
}
