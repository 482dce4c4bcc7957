package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/givers/site/internal/model"
)

// ContactService defines the contact form lifecycle.
type ContactService interface {
	// Change replaces a single field and returns the new state. Unknown field
	// names yield model.ErrUnknownField and the unchanged state.
	Change(state model.FormState, field, value string) (model.FormState, error)

	// Submit hands a complete form to the submission sink, notifies the user
	// and returns the reset state. An incomplete form is rejected with an
	// *IncompleteError and returned as-is.
	Submit(ctx context.Context, state model.FormState) (model.FormState, error)
}

// SubmissionSink receives completed forms.
type SubmissionSink interface {
	Submit(ctx context.Context, state model.FormState)
}

// Notifier shows transient feedback to the user.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
}

// IncompleteError lists the required fields that were blank at submit time.
type IncompleteError struct {
	Missing []model.Field
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%v: missing %s", model.ErrIncomplete, strings.Join(names, ", "))
}

func (e *IncompleteError) Unwrap() error { return model.ErrIncomplete }

// MissingFields extracts the blank fields from an error returned by Submit.
func MissingFields(err error) ([]model.Field, bool) {
	var ie *IncompleteError
	if errors.As(err, &ie) {
		return ie.Missing, true
	}
	return nil, false
}
