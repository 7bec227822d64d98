package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/infra/http/middleware"
	"github.com/gordohq/lead-portal/internal/infra/store"
	"github.com/gordohq/lead-portal/internal/usecase"
)

type ErrorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Matches entity.Snapshot `json:"matches,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses: validation
// failures are 400 with the single failing reason, duplicates are 409
// carrying the conflicting rows, a bad row index is 404 (the index came from
// the client), a corrupt backing file is 500 and needs manual intervention.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		middleware.RecordLeadRejected("validation")
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
		return
	}

	var de *usecase.DuplicateLeadError
	if errors.As(err, &de) {
		middleware.RecordLeadRejected("duplicate")
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "DUPLICATE_LEAD",
			Message: "this lead looks like a duplicate, check the existing entries",
			Matches: de.Matches,
		})
		return
	}

	if errors.Is(err, store.ErrIndexOutOfRange) {
		writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", err.Error())
		return
	}

	if errors.Is(err, store.ErrCorrupt) {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_CORRUPT", err.Error())
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
