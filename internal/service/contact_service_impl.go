package service

import (
	"context"

	"github.com/givers/site/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sink     SubmissionSink
	notifier Notifier
}

// NewContactService creates a ContactService that emits to sink and reports
// success through notifier.
func NewContactService(sink SubmissionSink, notifier Notifier) ContactService {
	return &contactServiceImpl{sink: sink, notifier: notifier}
}

func (s *contactServiceImpl) Change(state model.FormState, field, value string) (model.FormState, error) {
	f, err := model.ParseField(field)
	if err != nil {
		return state, err
	}
	return state.With(f, value), nil
}

// Submit runs the sink and the notifier in that order, then resets the form.
func (s *contactServiceImpl) Submit(ctx context.Context, state model.FormState) (model.FormState, error) {
	if missing := state.Missing(); len(missing) > 0 {
		return state, &IncompleteError{Missing: missing}
	}
	s.sink.Submit(ctx, state)
	s.notifier.NotifySuccess(ctx, model.SuccessMessage)
	return state.Reset(), nil
}
