package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/infra/followup"
	"github.com/gordohq/lead-portal/internal/infra/queue"
	"github.com/gordohq/lead-portal/internal/infra/store"
)

type GenerateFollowUpInput struct {
	RowIndex int    `json:"row_index"`
	Preset   string `json:"preset"`
	Notes    string `json:"notes"`
}

type GenerateFollowUpOutput struct {
	RowIndex     int    `json:"row_index"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
	LastContact  string `json:"last_contact"`
}

type GenerateFollowUpUseCase struct {
	Store    entity.LeadStoreInterface
	Composer FollowUpComposer
	Links    LinkBuilder
	Email    EmailService
	Events   EventPublisherInterface
	Now      func() time.Time
}

func NewGenerateFollowUpUseCase(
	st entity.LeadStoreInterface,
	composer FollowUpComposer,
	links LinkBuilder,
	email EmailService,
	events EventPublisherInterface,
) *GenerateFollowUpUseCase {
	return &GenerateFollowUpUseCase{
		Store:    st,
		Composer: composer,
		Links:    links,
		Email:    email,
		Events:   events,
		Now:      time.Now,
	}
}

// Execute generates a follow-up message for the lead at RowIndex and persists
// it on the row (message, link, notes, last-contact). Notes default to the
// preset's seed text when the caller sends none. Mail and event fan-out are
// best-effort: failures are logged and never fail the request.
func (uc *GenerateFollowUpUseCase) Execute(ctx context.Context, input GenerateFollowUpInput) (*GenerateFollowUpOutput, error) {
	snap, err := uc.Store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if input.RowIndex < 0 || input.RowIndex >= len(snap) {
		return nil, &store.IndexOutOfRangeError{Index: input.RowIndex, Rows: len(snap)}
	}
	lead := snap[input.RowIndex]

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = followup.PresetNotes(input.Preset)
	}

	message := uc.Composer.Compose(lead.Customer, lead.Company, lead.ProductInterest, notes)
	link := uc.Links.BuildLink(message)
	lastContact := uc.Now().Format("2006-01-02 15:04")

	err = uc.Store.UpdateFields(ctx, input.RowIndex, map[string]string{
		"AI Follow-Up Message": message,
		"WhatsApp Link":        link,
		"Notes":                notes,
		"Last Contact":         lastContact,
	})
	if err != nil {
		return nil, err
	}

	if uc.Email != nil && lead.Email != "" {
		if err := uc.Email.SendFollowUp(lead.Email, lead.Customer, message); err != nil {
			log.Printf("⚠️ mail: failed to send follow-up to %s: %v", lead.Email, err)
		}
	}

	if uc.Events != nil {
		payload := queue.LeadEventPayload{
			EventID:    uuid.New().String(),
			RowIndex:   input.RowIndex,
			Customer:   lead.Customer,
			Company:    lead.Company,
			Status:     lead.Status,
			Email:      lead.Email,
			Phone:      lead.Phone,
			Message:    message,
			OccurredAt: uc.Now().Format(time.RFC3339),
		}
		if err := uc.Events.PublishFollowUpGenerated(ctx, payload); err != nil {
			log.Printf("⚠️ queue: failed to publish followup.generated for %s: %v", lead.Customer, err)
		}
	}

	return &GenerateFollowUpOutput{
		RowIndex:     input.RowIndex,
		Message:      message,
		WhatsAppLink: link,
		LastContact:  lastContact,
	}, nil
}
