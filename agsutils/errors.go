package agsutils

import "github.com/pkg/errors"

// ErrInvalidArgs is returned alongside InvalidArgs when a required argument is absent or the
// context is in the wrong lifecycle state for the call
var ErrInvalidArgs error = errors.New("invalid arguments")

// ErrFailure is returned alongside Failure when the native runtime or the backend declines a request
var ErrFailure error = errors.New("failure")

// ErrExtensionNotSupported is returned alongside ExtensionNotSupported when the attached backend
// does not provide the requested extension, or when no backend ever can
var ErrExtensionNotSupported error = errors.New("extension not supported")

// ErrLegacyDriver is returned alongside LegacyDriver by entry points for subsystems that are not
// implemented at all
var ErrLegacyDriver error = errors.New("legacy driver")
