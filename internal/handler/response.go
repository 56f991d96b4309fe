package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/portfolio/backend/internal/validation"
)

// maxJSONBody caps request bodies decoded as JSON. Project bodies may carry a
// base64 image (5MB decoded, about 6.7MB encoded).
const maxJSONBody = 8 << 20

// envelope is the response shape shared by every /api endpoint.
type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// responder writes envelopes. Error diagnostics are echoed to the client
// only when exposeErrors is set.
type responder struct {
	exposeErrors bool
}

func (rs responder) ok(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func (rs responder) fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// serverError logs err and writes a 500 with a generic message.
func (rs responder) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.Error(message, "error", err, "method", r.Method, "path", r.URL.Path)
	env := envelope{Success: false, Message: message}
	if rs.exposeErrors {
		env.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, env)
}

// invalid writes a 400 for a *validation.Error and reports whether err was one.
func (rs responder) invalid(w http.ResponseWriter, err error) bool {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: verr.Message, Fields: verr.Fields})
	return true
}

// decodeJSON strictly decodes the request body into dst. Unknown fields,
// trailing data and wrong types are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// parseID reads the {id} path parameter as a base-10 int64.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

var errDirListing = errors.New("directory listing disabled")
