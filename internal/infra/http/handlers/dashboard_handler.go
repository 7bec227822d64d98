package handlers

import (
	"net/http"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/usecase"
)

const recentActivityLimit = 10

type DashboardHandler struct {
	store entity.LeadStoreInterface
}

func NewDashboardHandler(store entity.LeadStoreInterface) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Summary handles GET /dashboard/summary: status counts plus the latest
// activity, newest first.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.LoadAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildDashboardSummary(snap, recentActivityLimit))
}
