package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/givers/site/internal/model"
	"github.com/givers/site/internal/nav"
	"github.com/givers/site/internal/service"
	"github.com/givers/site/internal/view"
	"github.com/givers/site/pkg/flash"
)

const (
	maxMessageLength = 5000
	maxBodyBytes     = 64 << 10
)

var fieldLabels = map[model.Field]string{
	model.FieldName:    "Name",
	model.FieldEmail:   "Email",
	model.FieldSubject: "Subject",
	model.FieldMessage: "Message",
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	pages          *PageHandler
	flashSecret    []byte
}

// NewContactHandler creates a ContactHandler. pages re-renders the form when
// a submission is rejected.
func NewContactHandler(contactService service.ContactService, pages *PageHandler, flashSecret []byte) *ContactHandler {
	return &ContactHandler{contactService: contactService, pages: pages, flashSecret: flashSecret}
}

// Submit handles POST /contact (form-encoded).
// A rejected submission re-renders the page with the posted values kept.
// A successful one sets the notification as a flash and redirects back to
// GET /contact, which shows it and an empty form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	state := model.EmptyFormState()
	for _, f := range model.Fields {
		var err error
		state, err = h.contactService.Change(state, string(f), r.PostForm.Get(string(f)))
		if err != nil {
			slog.ErrorContext(r.Context(), "apply form field", "field", f, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	if len([]rune(state.Message)) > maxMessageLength {
		h.rerender(w, r, state, map[string]string{
			string(model.FieldMessage): "Message must be 5000 characters or fewer",
		}, http.StatusBadRequest)
		return
	}

	ctx, slot := flash.WithSlot(r.Context())
	if _, err := h.contactService.Submit(ctx, state); err != nil {
		if missing, ok := service.MissingFields(err); ok {
			h.rerender(w, r, state, requiredErrors(missing), http.StatusUnprocessableEntity)
			return
		}
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if msg, ok := slot.Message(); ok {
		flash.Set(w, msg, h.flashSecret)
	}
	http.Redirect(w, r, nav.ContactPath, http.StatusSeeOther)
}

func (h *ContactHandler) rerender(w http.ResponseWriter, r *http.Request, state model.FormState, fieldErrors map[string]string, status int) {
	page := h.pages.contactPage(nav.ContactPath, state, fieldErrors, nil)
	renderComponent(w, r, view.Contact(page), status)
}

func requiredErrors(missing []model.Field) map[string]string {
	errs := make(map[string]string, len(missing))
	for _, f := range missing {
		errs[string(f)] = fieldLabels[f] + " is required"
	}
	return errs
}

type submitResponse struct {
	OK      string `json:"ok"`
	Message string `json:"message"`
}

type missingResponse struct {
	Error   string        `json:"error"`
	Missing []model.Field `json:"missing"`
}

// SubmitJSON handles POST /api/contact.
// All four fields are required; message max 5000 chars.
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var state model.FormState
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if len([]rune(state.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	ctx, slot := flash.WithSlot(r.Context())
	if _, err := h.contactService.Submit(ctx, state); err != nil {
		var ie *service.IncompleteError
		if errors.As(err, &ie) {
			writeJSON(w, http.StatusUnprocessableEntity, missingResponse{Error: "fields_required", Missing: ie.Missing})
			return
		}
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	msg, _ := slot.Message()
	writeJSON(w, http.StatusCreated, submitResponse{OK: "true", Message: msg})
}
