package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/phrase"
	"github.com/wordpass/wordpass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the default settings.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDictionary handles GET /api/v1/dictionary requests.
func (h *GeneratorHandler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Info())
}

// isGenerationError reports whether err is a client-correctable generation failure.
func isGenerationError(err error) bool {
	return errors.Is(err, phrase.ErrInvalidDictionary) ||
		errors.Is(err, phrase.ErrInvalidBounds) ||
		errors.Is(err, phrase.ErrNoEligibleWords)
}

// decodeBody decodes a JSON request body into v, capped at maxBytes. An empty
// body is not an error; v keeps its zero values. On failure it writes the
// error response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		return false
	}

	writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
