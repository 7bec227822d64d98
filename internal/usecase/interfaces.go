package usecase

import (
	"context"

	"github.com/gordohq/lead-portal/internal/infra/queue"
)

// FollowUpComposer turns lead context into a plain-text follow-up message.
// Treated as an opaque pure function; any notes text (including empty) is
// accepted.
type FollowUpComposer interface {
	Compose(customer, company, product, notes string) string
}

// LinkBuilder turns a generated message into a shareable URI, used for
// display only.
type LinkBuilder interface {
	BuildLink(message string) string
}

type EmailService interface {
	SendFollowUp(to, customer, message string) error
}

type EventPublisherInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadEventPayload) error
	PublishFollowUpGenerated(ctx context.Context, payload queue.LeadEventPayload) error
}
