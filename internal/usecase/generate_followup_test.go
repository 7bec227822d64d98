package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/infra/followup"
	"github.com/gordohq/lead-portal/internal/infra/store"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendFollowUp(to, customer, message string) error {
	args := m.Called(to, customer, message)
	return args.Error(0)
}

func newFollowUpUC(st entity.LeadStoreInterface, email EmailService, events EventPublisherInterface) *GenerateFollowUpUseCase {
	uc := NewGenerateFollowUpUseCase(
		st,
		followup.NewComposer(),
		followup.NewWhatsAppLinkBuilder(),
		email,
		events,
	)
	uc.Now = fixedClock
	return uc
}

func TestGenerateFollowUpPersistsMessageAndLink(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockLeadStore)
	mockStore.On("LoadAll", ctx).Return(entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme", ProductInterest: "Espresso Blend", Status: entity.StatusFollowUpNeeded},
	}, nil)
	mockStore.On("UpdateFields", ctx, 0, mock.MatchedBy(func(fields map[string]string) bool {
		return fields["AI Follow-Up Message"] != "" &&
			fields["WhatsApp Link"] != "" &&
			fields["Last Contact"] == "2024-06-01 10:30"
	})).Return(nil)

	uc := newFollowUpUC(mockStore, nil, nil)

	output, err := uc.Execute(ctx, GenerateFollowUpInput{RowIndex: 0, Notes: "The sample shipped Monday."})

	assert.NoError(t, err)
	assert.Contains(t, output.Message, "Hey Jane Doe,")
	assert.Contains(t, output.Message, "Espresso Blend")
	assert.Contains(t, output.Message, "from Acme")
	assert.Contains(t, output.Message, "The sample shipped Monday.")
	assert.Contains(t, output.WhatsAppLink, "https://wa.me/?text=")
	assert.Equal(t, "2024-06-01 10:30", output.LastContact)
	mockStore.AssertExpectations(t)
}

func TestGenerateFollowUpUsesPresetNotesWhenEmpty(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockLeadStore)
	mockStore.On("LoadAll", ctx).Return(entity.Snapshot{
		{Customer: "Bob", Company: "Initech"},
	}, nil)
	mockStore.On("UpdateFields", ctx, 0, mock.MatchedBy(func(fields map[string]string) bool {
		return fields["Notes"] == followup.PresetNotes(followup.PresetReEngage)
	})).Return(nil)

	uc := newFollowUpUC(mockStore, nil, nil)

	output, err := uc.Execute(ctx, GenerateFollowUpInput{RowIndex: 0, Preset: followup.PresetReEngage})

	assert.NoError(t, err)
	assert.Contains(t, output.Message, followup.PresetNotes(followup.PresetReEngage))
}

func TestGenerateFollowUpRowOutOfRange(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockLeadStore)
	mockStore.On("LoadAll", ctx).Return(entity.Snapshot{{Customer: "Jane"}}, nil)

	uc := newFollowUpUC(mockStore, nil, nil)

	_, err := uc.Execute(ctx, GenerateFollowUpInput{RowIndex: 5})
	assert.ErrorIs(t, err, store.ErrIndexOutOfRange)
	mockStore.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateFollowUpEmailsLeadWithAddress(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockLeadStore)
	mockStore.On("LoadAll", ctx).Return(entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme", Email: "jane@acme.com"},
	}, nil)
	mockStore.On("UpdateFields", ctx, 0, mock.Anything).Return(nil)

	mockEmail := new(MockEmailService)
	mockEmail.On("SendFollowUp", "jane@acme.com", "Jane Doe", mock.Anything).Return(nil)

	uc := newFollowUpUC(mockStore, mockEmail, nil)

	_, err := uc.Execute(ctx, GenerateFollowUpInput{RowIndex: 0})

	assert.NoError(t, err)
	mockEmail.AssertExpectations(t)
}

func TestGenerateFollowUpMailFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockLeadStore)
	mockStore.On("LoadAll", ctx).Return(entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme", Email: "jane@acme.com"},
	}, nil)
	mockStore.On("UpdateFields", ctx, 0, mock.Anything).Return(nil)

	mockEmail := new(MockEmailService)
	mockEmail.On("SendFollowUp", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	uc := newFollowUpUC(mockStore, mockEmail, nil)

	output, err := uc.Execute(ctx, GenerateFollowUpInput{RowIndex: 0})

	assert.NoError(t, err)
	assert.NotNil(t, output)
}
