// Package http exposes the localization use cases over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"authmsg/internal/domain"
	"authmsg/internal/domain/entities"
	"authmsg/internal/ports/input"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests for the localization API.
type Handler struct {
	localize  input.LocalizeUseCase
	unmatched input.UnmatchedUseCase
}

// RegisterRoutes registers the API routes on mux.
func RegisterRoutes(mux *http.ServeMux, localize input.LocalizeUseCase, unmatched input.UnmatchedUseCase) {
	h := &Handler{localize: localize, unmatched: unmatched}

	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("POST /v1/messages/resolve", h.handleResolve)
	mux.HandleFunc("POST /v1/messages/fields", h.handleFields)
	mux.HandleFunc("POST /v1/errors/localize", h.handleLocalizeError)
	mux.HandleFunc("GET /v1/messages/unmatched", h.handleListUnmatched)
	mux.HandleFunc("GET /v1/messages/unmatched/{message}", h.handleGetUnmatched)
	mux.HandleFunc("POST /v1/messages/unmatched/digest", h.handleSendDigest)
}

// Request/Response DTOs

type resolveRequest struct {
	Message string `json:"message"`
}

type resolveResponse struct {
	Locale  string `json:"locale"`
	Message string `json:"message"`
	Matched bool   `json:"matched"`
}

type fieldsRequest struct {
	Errors map[string][]string `json:"errors"`
}

type fieldsResponse struct {
	Locale string            `json:"locale"`
	Errors map[string]string `json:"errors"`
}

type localizedErrorResponse struct {
	Locale  string            `json:"locale"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type unmatchedResponse struct {
	Raw         string    `json:"raw"`
	Canonical   string    `json:"canonical"`
	Locale      string    `json:"locale"`
	Hits        int64     `json:"hits"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out := h.localize.Localize(r.Context(), h.locale(r), req.Message)
	w.Header().Set("Content-Language", out.Locale)
	writeJSON(w, http.StatusOK, resolveResponse{Locale: out.Locale, Message: out.Message, Matched: out.Matched})
}

func (h *Handler) handleFields(w http.ResponseWriter, r *http.Request) {
	var req fieldsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	locale, errs := h.localize.LocalizeFields(r.Context(), h.locale(r), req.Errors)
	w.Header().Set("Content-Language", locale)
	writeJSON(w, http.StatusOK, fieldsResponse{Locale: locale, Errors: errs})
}

func (h *Handler) handleLocalizeError(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.localize.LocalizeAPIError(r.Context(), h.locale(r), body)
	if err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Language", out.Locale)
	writeJSON(w, http.StatusOK, localizedErrorResponse{Locale: out.Locale, Message: out.Message, Errors: out.Errors})
}

func (h *Handler) handleListUnmatched(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	msgs, err := h.unmatched.ListUnmatched(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]unmatchedResponse, len(msgs))
	for i, m := range msgs {
		out[i] = toUnmatchedResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetUnmatched(w http.ResponseWriter, r *http.Request) {
	msg, err := h.unmatched.GetUnmatched(r.Context(), r.PathValue("message"))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUnmatchedResponse(*msg))
}

func (h *Handler) handleSendDigest(w http.ResponseWriter, r *http.Request) {
	if err := h.unmatched.SendDigest(r.Context(), 0); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helper functions

func toUnmatchedResponse(m entities.UnmatchedMessage) unmatchedResponse {
	return unmatchedResponse{
		Raw:         m.Raw,
		Canonical:   m.Canonical,
		Locale:      m.Locale,
		Hits:        m.Hits,
		FirstSeenAt: m.FirstSeenAt,
		LastSeenAt:  m.LastSeenAt,
	}
}

// locale negotiates from ?lang= first, then Accept-Language.
func (h *Handler) locale(r *http.Request) string {
	return h.localize.NegotiateLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnmatchedNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotifierDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
