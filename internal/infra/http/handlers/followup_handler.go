package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gordohq/lead-portal/internal/infra/followup"
	"github.com/gordohq/lead-portal/internal/infra/http/middleware"
	"github.com/gordohq/lead-portal/internal/usecase"
)

type FollowUpHandler struct {
	generateUC *usecase.GenerateFollowUpUseCase
}

func NewFollowUpHandler(generateUC *usecase.GenerateFollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{generateUC: generateUC}
}

// Generate handles POST /leads/{index}/followup. The index is the row's
// position in the current load order; it shifts if rows ever get removed by
// hand, so the response echoes it back for the caller to re-check.
func (h *FollowUpHandler) Generate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_INDEX", "lead index must be a number")
		return
	}

	var body struct {
		Preset string `json:"preset"`
		Notes  string `json:"notes"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
			return
		}
	}

	output, err := h.generateUC.Execute(r.Context(), usecase.GenerateFollowUpInput{
		RowIndex: index,
		Preset:   body.Preset,
		Notes:    body.Notes,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordFollowUpGenerated()
	writeJSON(w, http.StatusOK, output)
}

// Presets handles GET /followup/presets so the form can offer the styles.
func (h *FollowUpHandler) Presets(w http.ResponseWriter, r *http.Request) {
	presets := make([]map[string]string, 0, len(followup.Presets()))
	for _, name := range followup.Presets() {
		presets = append(presets, map[string]string{
			"name":  name,
			"notes": followup.PresetNotes(name),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"presets": presets})
}
