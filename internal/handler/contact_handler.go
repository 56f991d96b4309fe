package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// ContactHandler handles contact form submission, listing and deletion.
type ContactHandler struct {
	responder
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler. exposeErrors echoes store
// diagnostics in 500 responses and must be off in production.
func NewContactHandler(contactService service.ContactService, exposeErrors bool) *ContactHandler {
	return &ContactHandler{responder: responder{exposeErrors: exposeErrors}, contactService: contactService}
}

// Submit handles POST /api/contact.
// name, email, subject and message are required; email must look like an address.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.contactService.Submit(r.Context(), in)
	if err != nil {
		if h.invalid(w, err) {
			return
		}
		h.serverError(w, r, "Failed to send contact message", err)
		return
	}

	h.ok(w, http.StatusCreated, msg, "Contact message sent successfully")
}

// List handles GET /api/contact. Messages are returned newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch contact messages", err)
		return
	}
	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	h.ok(w, http.StatusOK, messages, "")
}

// Delete handles DELETE /api/contact/{id}. Unknown ids still return 200.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid message ID")
		return
	}
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, "Failed to delete contact message", err)
		return
	}
	h.ok(w, http.StatusOK, nil, "Contact message deleted successfully")
}
