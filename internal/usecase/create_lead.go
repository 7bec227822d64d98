package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/infra/queue"
)

type CreateLeadInput struct {
	Date            string `json:"date"`
	Customer        string `json:"customer"`
	Company         string `json:"company"`
	ProductInterest string `json:"product_interest"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

type CreateLeadOutput struct {
	RowIndex int         `json:"row_index"`
	Lead     entity.Lead `json:"lead"`
}

type CreateLeadUseCase struct {
	Store  entity.LeadStoreInterface
	Events EventPublisherInterface
	Now    func() time.Time
}

func NewCreateLeadUseCase(store entity.LeadStoreInterface, events EventPublisherInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Store:  store,
		Events: events,
		Now:    time.Now,
	}
}

// Execute runs the submission gates in fixed order: required fields, contact
// method, email format, phone format, duplicate check. The first failing gate
// is the single reported reason and nothing is persisted. The duplicate check
// and the append both act on the same snapshot, so a submission cannot race
// itself.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	customer := strings.TrimSpace(input.Customer)
	company := strings.TrimSpace(input.Company)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	if customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "is required"}
	}
	if company == "" {
		return nil, &ValidationError{Field: "company", Message: "is required"}
	}
	status := input.Status
	if status == "" {
		status = entity.StatusNewLead
	}
	if !entity.IsValidStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "must be one of: " + strings.Join(entity.AllStatuses(), ", ")}
	}

	if !RequireContactMethod(email, phone) {
		return nil, &ValidationError{Field: "contact", Message: "provide at least one contact method (email or phone)"}
	}

	if !ValidateEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "address looks invalid"}
	}

	phoneDigits, phoneFormatted := "", ""
	if phone != "" {
		var ok bool
		phoneDigits, phoneFormatted, ok = NormalizePhone(phone)
		if !ok {
			return nil, &ValidationError{Field: "phone", Message: "looks invalid, expected 10 digits"}
		}
	}

	snap, err := uc.Store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if isDup, matches := FindDuplicates(snap, customer, company, email, phoneDigits); isDup {
		return nil, &DuplicateLeadError{Matches: matches}
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = uc.Now().Format("2006-01-02")
	}

	lead := entity.Lead{
		Date:            date,
		Customer:        titleCase(customer),
		Company:         titleCase(company),
		ProductInterest: strings.TrimSpace(input.ProductInterest),
		Status:          status,
		Notes:           strings.TrimSpace(input.Notes),
		Email:           email,
		Phone:           phoneFormatted,
	}

	if err := uc.Store.Append(ctx, lead); err != nil {
		return nil, err
	}
	rowIndex := len(snap)

	if uc.Events != nil {
		payload := queue.LeadEventPayload{
			EventID:    uuid.New().String(),
			RowIndex:   rowIndex,
			Customer:   lead.Customer,
			Company:    lead.Company,
			Status:     lead.Status,
			Email:      lead.Email,
			Phone:      lead.Phone,
			OccurredAt: uc.Now().Format(time.RFC3339),
		}
		if err := uc.Events.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("⚠️ queue: failed to publish lead.captured for %s: %v", lead.Customer, err)
		}
	}

	return &CreateLeadOutput{RowIndex: rowIndex, Lead: lead}, nil
}

// titleCase normalizes customer/company for display ("jane doe" -> "Jane
// Doe"); duplicate comparison stays case-insensitive regardless.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
