package internal

import "github.com/pkg/errors"

// Threading errors up and down the triangulation loops would add a ton of
// noise for conditions that only arise from bad geometry. Instead, we panic,
// and the public build entry points recover to convert to an error.

// BuildError marks a panic raised by fatalf. Any other panic value, runtime
// errors included, is a bug and keeps unwinding.
type BuildError struct {
	error
}

func fatalf(format string, args ...interface{}) {
	panic(BuildError{errors.Errorf(format, args...)})
}

func HandleBuildPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if buildError, ok := r.(BuildError); ok {
		return buildError.error
	}
	panic(r)
}
