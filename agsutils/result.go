package agsutils

import (
	cerrors "github.com/cockroachdb/errors"
)

var codeSentinels = map[ReturnCode]error{
	Failure:               ErrFailure,
	InvalidArgs:           ErrInvalidArgs,
	ExtensionNotSupported: ErrExtensionNotSupported,
	LegacyDriver:          ErrLegacyDriver,
}

func sentinelFor(code ReturnCode) error {
	sentinel, ok := codeSentinels[code]
	if !ok {
		return ErrFailure
	}

	return sentinel
}

// codedError wraps a cause while also matching the sentinel of the code it was produced with
type codedError struct {
	cause    error
	sentinel error
}

func (e *codedError) Error() string {
	return e.cause.Error()
}

func (e *codedError) Unwrap() error {
	return e.cause
}

func (e *codedError) Is(target error) bool {
	return target == e.sentinel
}

// Fail pairs a non-success ReturnCode with an error wrapping that code's sentinel
func Fail(code ReturnCode, format string, args ...any) (ReturnCode, error) {
	return code, cerrors.Wrapf(sentinelFor(code), format, args...)
}

// FailWith pairs a non-success ReturnCode with cause. The returned error matches both cause and
// the code's sentinel, so errors.Is and CodeOf keep working.
func FailWith(code ReturnCode, cause error, format string, args ...any) (ReturnCode, error) {
	return code, &codedError{
		cause:    cerrors.Wrapf(cause, format, args...),
		sentinel: sentinelFor(code),
	}
}

// CodeOf recovers the ReturnCode an error was produced with. A nil error is Success, and
// errors that carry no known sentinel are Failure.
func CodeOf(err error) ReturnCode {
	if err == nil {
		return Success
	}

	for _, code := range []ReturnCode{InvalidArgs, ExtensionNotSupported, LegacyDriver, Failure} {
		if cerrors.Is(err, codeSentinels[code]) {
			return code
		}
	}

	return Failure
}
