package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wordpass/wordpass-go/internal/middleware"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/service"
)

// WordlistHandler handles HTTP requests for custom wordlist operations.
type WordlistHandler struct {
	service *service.WordlistService
}

// NewWordlistHandler creates a new WordlistHandler.
func NewWordlistHandler(svc *service.WordlistService) *WordlistHandler {
	return &WordlistHandler{service: svc}
}

// HandleCreate handles POST /api/v1/wordlists requests.
func (h *WordlistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateWordlistRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case isWordlistValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNameTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/wordlists requests.
func (h *WordlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	lists, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// HandleGet handles GET /api/v1/wordlists/{wordlist_id} requests.
func (h *WordlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := wordlistID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist id"))
		return
	}

	resp, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrWordlistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/wordlists/{wordlist_id} requests.
func (h *WordlistHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := wordlistID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist id"))
		return
	}

	var req model.UpdateWordlistRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		switch {
		case isWordlistValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNameTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/wordlists/{wordlist_id} requests.
func (h *WordlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := wordlistID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist id"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrWordlistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/wordlists/{wordlist_id}/generate
// requests. The passphrase is drawn from the named wordlist.
func (h *WordlistHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := wordlistID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist id"))
		return
	}

	var req model.GenerateRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordlistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isGenerationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// wordlistID extracts and validates the {wordlist_id} route parameter.
func wordlistID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "wordlist_id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func isWordlistValidationError(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrNameTooLong) ||
		errors.Is(err, service.ErrWordsRequired) ||
		errors.Is(err, service.ErrTooManyWords) ||
		errors.Is(err, service.ErrWordTooLong)
}
