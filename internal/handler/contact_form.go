package handler

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/boisserenc/atelier/internal/catalog"
	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/view"
)

// contactSignals mirrors the data-bind fields of the contact form.
type contactSignals struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (s contactSignals) insert() domain.InsertContactMessage {
	return domain.InsertContactMessage{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   domain.Optional(&s.Phone),
		Service: domain.Optional(&s.Service),
		Message: s.Message,
	}
}

// ContactFormHandler handles datastar submissions of the contact form.
type ContactFormHandler struct {
	catalog catalog.Catalog
}

// NewContactFormHandler creates a new ContactFormHandler.
func NewContactFormHandler(c catalog.Catalog) *ContactFormHandler {
	return &ContactFormHandler{catalog: c}
}

// HandleSubmit stores the submission and patches the result fragment into
// the page. The form is cleared on success.
func (h *ContactFormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	logger := LoggerFromContext(r.Context())

	var signals contactSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := h.catalog.CreateContactMessage(r.Context(), signals.insert())
	ok, detail := err == nil, ""
	switch {
	case err == nil:
		logger.Info("contact message received", "service", signals.Service)
	case errors.Is(err, domain.ErrInvalidInput):
		detail = inputMessage(err, "")
	default:
		logger.Error("submit contact form", "error", err)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(
		view.ContactResult(p, ok, detail),
		datastar.WithSelectorID(view.ContactResultID),
		datastar.WithModeInner(),
	); err != nil {
		logger.Error("patch contact result", "error", err)
		return
	}
	if ok {
		if err := sse.MarshalAndPatchSignals(contactSignals{}); err != nil {
			logger.Error("reset contact signals", "error", err)
		}
	}
}
