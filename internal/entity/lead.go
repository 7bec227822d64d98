package entity

import (
	"context"
)

// Status values a lead moves through. Fixed set; the submission flow only
// ever writes these.
const (
	StatusNewLead        = "New Lead"
	StatusFollowUpNeeded = "Follow-Up Needed"
	StatusPendingOrder   = "Pending Order"
	StatusClosedDeal     = "Closed Deal"
)

func AllStatuses() []string {
	return []string{StatusNewLead, StatusFollowUpNeeded, StatusPendingOrder, StatusClosedDeal}
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusNewLead, StatusFollowUpNeeded, StatusPendingOrder, StatusClosedDeal:
		return true
	}
	return false
}

type Lead struct {
	Date            string `json:"date"`
	Customer        string `json:"customer"`
	Company         string `json:"company"`
	ProductInterest string `json:"product_interest,omitempty"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	FollowUpMessage string `json:"followup_message,omitempty"`
	WhatsAppLink    string `json:"whatsapp_link,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LastContact     string `json:"last_contact,omitempty"`
}

// Snapshot is the full ordered set of leads as read from the backing file at
// one point in time. Row identity is positional: index i in the snapshot is
// row i in the file.
type Snapshot []Lead

// LeadStoreInterface is what the usecases depend on. Reads may be served from
// a short-lived cache; Invalidate forces the next LoadAll to hit the file.
type LeadStoreInterface interface {
	Initialize() error
	LoadAll(ctx context.Context) (Snapshot, error)
	Append(ctx context.Context, lead Lead) error
	UpdateFields(ctx context.Context, rowIndex int, fields map[string]string) error
	Invalidate()
}
