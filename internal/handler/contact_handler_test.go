package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/givers/site/internal/config"
	"github.com/givers/site/internal/model"
	"github.com/givers/site/internal/service"
	"github.com/givers/site/internal/sink"
	"github.com/givers/site/pkg/flash"
)

var testFlashSecret = flash.SecretBytes("handler-test-secret")

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, state model.FormState) (model.FormState, error)
}

func (m *mockContactService) Change(state model.FormState, field, value string) (model.FormState, error) {
	f, err := model.ParseField(field)
	if err != nil {
		return state, err
	}
	return state.With(f, value), nil
}

func (m *mockContactService) Submit(ctx context.Context, state model.FormState) (model.FormState, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, state)
	}
	return model.EmptyFormState(), nil
}

func testPages() *PageHandler {
	return NewPageHandler(PageConfig{
		SiteName: "GIVErS",
		Contact: config.ContactInfo{
			Phone:       "+1 (555) 010-0199",
			Email:       "support@givers.example",
			Address:     []string{"123 Market Street"},
			Hours:       []string{"Mon - Fri: 9 - 6"},
			MapEmbedURL: "https://www.google.com/maps/embed?pb=1",
		},
		FlashSecret: testFlashSecret,
	})
}

// newRealContactHandler wires the production service to a recording sink.
func newRealContactHandler() (*ContactHandler, *sink.Recorder) {
	rec := &sink.Recorder{}
	svc := service.NewContactService(rec, flash.Notifier{})
	return NewContactHandler(svc, testPages(), testFlashSecret), rec
}

func postForm(h http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func fullForm() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hi"},
		"message": {"Test"},
	}
}

// ---------------------------------------------------------------------------
// POST /contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success_RedirectsWithFlash(t *testing.T) {
	h, recorder := newRealContactHandler()

	rec := postForm(h.Submit, fullForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/contact" {
		t.Errorf("expected redirect to /contact, got %q", loc)
	}

	got := recorder.Submissions()
	want := model.FormState{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Test"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected one submission %+v, got %+v", want, got)
	}

	var flashCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName() {
			flashCookie = c
		}
	}
	if flashCookie == nil {
		t.Fatal("expected flash cookie to be set")
	}
	msg, err := flash.Verify(flashCookie.Value, testFlashSecret)
	if err != nil {
		t.Fatalf("verify flash: %v", err)
	}
	if msg != model.SuccessMessage {
		t.Errorf("expected flash %q, got %q", model.SuccessMessage, msg)
	}
}

func TestContactHandler_Submit_MissingFields_KeepsValues(t *testing.T) {
	h, recorder := newRealContactHandler()

	rec := postForm(h.Submit, url.Values{"name": {"Ada"}})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="Ada"`) {
		t.Error("expected name value to be preserved in the re-rendered form")
	}
	for _, want := range []string{"Email is required", "Subject is required", "Message is required"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in body", want)
		}
	}
	if strings.Contains(body, "Name is required") {
		t.Error("name was provided and should not be flagged")
	}
	if strings.Contains(body, `class="toast`) {
		t.Error("no toast should be shown for a blocked submission")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no flash cookie should be set for a blocked submission")
	}
	if n := len(recorder.Submissions()); n != 0 {
		t.Errorf("expected no submissions, got %d", n)
	}
}

func TestContactHandler_Submit_WhitespaceOnlyIsMissing(t *testing.T) {
	h, recorder := newRealContactHandler()

	form := fullForm()
	form.Set("subject", "   ")
	rec := postForm(h.Submit, form)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Subject is required") {
		t.Error("expected subject error")
	}
	if len(recorder.Submissions()) != 0 {
		t.Error("expected no submissions")
	}
}

func TestContactHandler_Submit_MessageTooLong(t *testing.T) {
	h, recorder := newRealContactHandler()

	form := fullForm()
	form.Set("message", strings.Repeat("a", 5001))
	rec := postForm(h.Submit, form)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for message > 5000 chars, got %d", rec.Code)
	}
	if len(recorder.Submissions()) != 0 {
		t.Error("expected no submissions")
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, state model.FormState) (model.FormState, error) {
			return state, errors.New("sink unavailable")
		},
	}
	h := NewContactHandler(mock, testPages(), testFlashSecret)

	rec := postForm(h.Submit, fullForm())

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestContactHandler_SubmitJSON_Success(t *testing.T) {
	h, recorder := newRealContactHandler()

	rec := postJSON(h.SubmitJSON, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Test"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK != "true" || resp.Message != model.SuccessMessage {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(recorder.Submissions()) != 1 {
		t.Errorf("expected one submission, got %d", len(recorder.Submissions()))
	}
}

func TestContactHandler_SubmitJSON_MissingFields(t *testing.T) {
	h, recorder := newRealContactHandler()

	rec := postJSON(h.SubmitJSON, `{"name":"Ada"}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp missingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "fields_required" {
		t.Errorf("expected error=fields_required, got %q", resp.Error)
	}
	want := []model.Field{model.FieldEmail, model.FieldSubject, model.FieldMessage}
	if len(resp.Missing) != len(want) {
		t.Fatalf("expected missing %v, got %v", want, resp.Missing)
	}
	for i := range want {
		if resp.Missing[i] != want[i] {
			t.Errorf("missing[%d]: expected %q, got %q", i, want[i], resp.Missing[i])
		}
	}
	if len(recorder.Submissions()) != 0 {
		t.Error("expected no submissions")
	}
}

func TestContactHandler_SubmitJSON_InvalidJSON(t *testing.T) {
	h, _ := newRealContactHandler()

	rec := postJSON(h.SubmitJSON, "{bad json")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactHandler_SubmitJSON_MessageTooLong(t *testing.T) {
	h, _ := newRealContactHandler()

	body, _ := json.Marshal(model.FormState{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi",
		Message: strings.Repeat("a", 5001),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.SubmitJSON(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "message_too_long" {
		t.Errorf("expected error=message_too_long, got %q", resp["error"])
	}
}

func TestContactHandler_SubmitJSON_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, state model.FormState) (model.FormState, error) {
			return state, errors.New("sink unavailable")
		},
	}
	h := NewContactHandler(mock, testPages(), testFlashSecret)

	rec := postJSON(h.SubmitJSON, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Test"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
