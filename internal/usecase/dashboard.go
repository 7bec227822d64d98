package usecase

import (
	"github.com/gordohq/lead-portal/internal/entity"
)

// DashboardSummary is the portal landing-page rollup: one count per status
// plus the most recent rows, newest first.
type DashboardSummary struct {
	ActiveOrders   int            `json:"active_orders"`
	FollowUps      int            `json:"follow_ups"`
	HotLeads       int            `json:"hot_leads"`
	ClosedDeals    int            `json:"closed_deals"`
	TotalLeads     int            `json:"total_leads"`
	RecentActivity entity.Snapshot `json:"recent_activity"`
}

func BuildDashboardSummary(snap entity.Snapshot, recentLimit int) DashboardSummary {
	summary := DashboardSummary{TotalLeads: len(snap)}
	for _, lead := range snap {
		switch lead.Status {
		case entity.StatusPendingOrder:
			summary.ActiveOrders++
		case entity.StatusFollowUpNeeded:
			summary.FollowUps++
		case entity.StatusNewLead:
			summary.HotLeads++
		case entity.StatusClosedDeal:
			summary.ClosedDeals++
		}
	}

	if recentLimit <= 0 || recentLimit > len(snap) {
		recentLimit = len(snap)
	}
	recent := make(entity.Snapshot, 0, recentLimit)
	for i := len(snap) - 1; i >= len(snap)-recentLimit; i-- {
		recent = append(recent, snap[i])
	}
	summary.RecentActivity = recent
	return summary
}
