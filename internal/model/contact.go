package model

import (
	"errors"
	"fmt"
	"strings"
)

// SuccessMessage is the fixed text shown to the user after a submission.
const SuccessMessage = "Message sent successfully! We'll get back to you soon."

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("unknown form field")
	// ErrIncomplete is returned when a submission is attempted with empty fields.
	ErrIncomplete = errors.New("form incomplete")
)

// Field names one of the contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// ParseField converts a raw input name into a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// FormState holds the four contact form values. The zero value is the empty form.
type FormState struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmptyFormState returns a form with every field unset.
func EmptyFormState() FormState {
	return FormState{}
}

// With returns a copy of s with only the given field replaced.
// An unknown field leaves the state untouched.
func (s FormState) With(f Field, value string) FormState {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldSubject:
		s.Subject = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// Get returns the value of a single field.
func (s FormState) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Reset returns the empty form.
func (s FormState) Reset() FormState {
	return EmptyFormState()
}

// Missing returns the required fields that are blank, in display order.
func (s FormState) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if strings.TrimSpace(s.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every field holds a value.
func (s FormState) Complete() bool {
	return len(s.Missing()) == 0
}

// IsEmpty reports whether the form is in its initial state.
func (s FormState) IsEmpty() bool {
	return s == FormState{}
}
