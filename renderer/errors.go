package renderer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the outcome of a bootstrapper operation.
type ErrorKind int

const (
	ShaderError ErrorKind = iota
	// FileNotFound is reserved for shader and asset loading; nothing raises it yet.
	FileNotFound
	// LoaderError means the OpenGL function bindings could not be loaded.
	LoaderError
	WindowError
	Unknown
	Success
)

func (k ErrorKind) String() string {
	switch k {
	case ShaderError:
		return "SHADER_ERROR"
	case FileNotFound:
		return "FILE_NOT_FOUND"
	case LoaderError:
		return "GLEW"
	case WindowError:
		return "WINDOW"
	case Unknown:
		return "UNKNOWN"
	case Success:
		return "SUCCESS"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a failed bootstrapper operation. A nil error means Success.
type Error struct {
	Kind    ErrorKind
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind carried by err: Success for nil, Unknown for
// errors that did not come from this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
