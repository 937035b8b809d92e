package backup

import (
	"errors"
	"fmt"

	"droscher.com/WhiskyShelf/pkg/portable"
)

var (
	ErrParse               = errors.New("unable to parse file")
	ErrValidation          = errors.New("file contains no usable data")
	ErrConflict            = errors.New("conflicts with an existing record")
	ErrUnresolvedReference = errors.New("bottle reference could not be resolved")
	ErrExternalService     = errors.New("store call failed")
)

// Issue is a non-fatal problem with a single imported record.
type Issue struct {
	Kind    portable.Kind `json:"kind"`
	Name    string        `json:"name"`
	Message string        `json:"message"`

	cause error
}

func newIssue(kind portable.Kind, name string, cause error) Issue {
	return Issue{Kind: kind, Name: name, Message: cause.Error(), cause: cause}
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s %q: %s", i.Kind, i.Name, i.Message)
}

func (i Issue) Unwrap() error {
	return i.cause
}

// PhaseError aborts an import. The summary holds whatever earlier phases committed.
type PhaseError struct {
	Phase   portable.Kind
	Err     error
	Summary *Summary
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("import aborted during %s phase: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
