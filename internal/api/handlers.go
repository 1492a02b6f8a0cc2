// Package api exposes the cookbook over HTTP.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/engine"
	"github.com/hammamikhairi/cookbook/internal/logger"
	"github.com/hammamikhairi/cookbook/internal/normalize"
)

const maxBodyBytes = 1 << 20

// NewRouter wires up all routes with the provided engine. corsOrigins lists
// the origins allowed to call the API from a browser; nil allows any.
func NewRouter(eng *engine.Engine, log *logger.Logger, corsOrigins []string) http.Handler {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	h := &handlers{eng: eng, log: log}

	r.Get("/healthz", handleHealth)

	r.Post("/parse", h.parse)
	r.Post("/entry", h.createEntry)
	r.Get("/entries", h.listEntries)
	r.Get("/summary", h.summary)

	return r
}

type handlers struct {
	eng *engine.Engine
	log *logger.Logger
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- parse ---

type parseRequest struct {
	Input string `json:"input"`
}

type parseResponse struct {
	Msg string `json:"msg"`
}

func (h *handlers) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !h.decode(w, r, &req) {
		return
	}
	name, err := normalize.Name(req.Input)
	if err != nil {
		h.jsonError(w, "this string is cooked", http.StatusBadRequest, err)
		return
	}
	h.jsonOK(w, parseResponse{Msg: name})
}

// --- entry ---

func (h *handlers) createEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if _, err := h.eng.Register(r.Context(), req.draft()); err != nil {
		h.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.eng.Entries(r.Context())
	if err != nil {
		h.jsonError(w, "failed to list entries", http.StatusInternalServerError, err)
		return
	}
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	h.jsonOK(w, out)
}

// --- summary ---

func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.eng.Summarize(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.domainError(w, err)
		return
	}
	h.jsonOK(w, toSummaryResponse(s))
}

// --- helpers ---

var clientErrors = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrNotARecipe,
	domain.ErrMissingDependency,
	domain.ErrCyclicDependency,
	domain.ErrTooDeep,
	domain.ErrOverflow,
	domain.ErrNotRepresentable,
}

// domainError maps cookbook errors to 400 with their message as the reason.
// Anything else is a 500.
func (h *handlers) domainError(w http.ResponseWriter, err error) {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			h.jsonError(w, err.Error(), http.StatusBadRequest, err)
			return
		}
	}
	h.jsonError(w, "internal error", http.StatusInternalServerError, err)
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.jsonError(w, "invalid request body", http.StatusBadRequest, err)
		return false
	}
	return true
}

// jsonOK encodes v before touching the response, so an encoding failure
// still becomes a 500 instead of an empty 200.
func (h *handlers) jsonOK(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.jsonError(w, "failed to encode response", http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes()) //nolint:errcheck
}

func (h *handlers) jsonError(w http.ResponseWriter, msg string, status int, err error) {
	if status >= 500 {
		h.log.Error("%s: %v", msg, err)
	} else {
		h.log.Debug("rejected request (%d): %v", status, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
