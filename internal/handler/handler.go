package handler

import (
	"net/http"
	"time"

	"github.com/portfolio/backend/internal/repository"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// Handler serves the process-level endpoints and the CORS policy.
type Handler struct {
	db          repository.DB
	frontendURL string
	started     time.Time
	now         func() time.Time
}

func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL, started: time.Now(), now: time.Now}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type rootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message:   "Portfolio API is running!",
		Version:   Version,
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

// NotFound is the fallback for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Route not found"})
}

// MethodNotAllowed reports a known route hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, envelope{Success: false, Message: "Method not allowed"})
}
