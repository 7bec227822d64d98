package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gordohq/lead-portal/internal/entity"
)

func TestNormalizePhoneFormatsTenDigits(t *testing.T) {
	digits, formatted, ok := NormalizePhone("555-123-4567")

	assert.True(t, ok)
	assert.Equal(t, "5551234567", digits)
	assert.Equal(t, "(555) 123-4567", formatted)
}

func TestNormalizePhoneStripsNoise(t *testing.T) {
	cases := []string{
		"(555) 123-4567",
		"555.123.4567",
		" 555 123 4567 ",
		"555-1-2-3-4567",
	}
	for _, raw := range cases {
		digits, formatted, ok := NormalizePhone(raw)
		assert.True(t, ok, "input %q", raw)
		assert.Equal(t, "5551234567", digits, "input %q", raw)
		assert.Equal(t, "(555) 123-4567", formatted, "input %q", raw)
	}
}

func TestNormalizePhoneEmptyIsAbsent(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		digits, formatted, ok := NormalizePhone(raw)
		assert.True(t, ok)
		assert.Empty(t, digits)
		assert.Empty(t, formatted)
	}
}

func TestNormalizePhoneRejectsWrongDigitCount(t *testing.T) {
	for _, raw := range []string{"123-45", "12345678901", "abc", "555-123-456"} {
		_, _, ok := NormalizePhone(raw)
		assert.False(t, ok, "input %q should be invalid", raw)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"", "  ", "jane@acme.com", "j.doe+leads@mail.acme.io"}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), "input %q", email)
	}

	invalid := []string{"not-an-email", "jane@acme", "@acme.com", "jane doe@acme.com", "jane@"}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), "input %q", email)
	}
}

func TestRequireContactMethod(t *testing.T) {
	assert.True(t, RequireContactMethod("jane@acme.com", ""))
	assert.True(t, RequireContactMethod("", "5551234567"))
	assert.True(t, RequireContactMethod("jane@acme.com", "5551234567"))
	assert.False(t, RequireContactMethod("", ""))
	assert.False(t, RequireContactMethod("   ", ""))
}

func TestFindDuplicatesByCustomerAndCompany(t *testing.T) {
	existing := entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme", Email: "jane@acme.com"},
		{Customer: "Bob Roy", Company: "Initech", Phone: "(111) 222-3333"},
	}

	// case/whitespace differences must still match
	isDup, matches := FindDuplicates(existing, "  jane doe ", "ACME", "", "")
	assert.True(t, isDup)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Jane Doe", matches[0].Customer)
}

func TestFindDuplicatesByEmail(t *testing.T) {
	existing := entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme", Email: "jane@acme.com"},
	}

	isDup, matches := FindDuplicates(existing, "Someone", "Else", "JANE@ACME.COM", "")
	assert.True(t, isDup)
	assert.Len(t, matches, 1)
}

func TestFindDuplicatesByPhoneDigits(t *testing.T) {
	existing := entity.Snapshot{
		{Customer: "Bob Roy", Company: "Initech", Phone: "(111) 222-3333"},
	}

	isDup, matches := FindDuplicates(existing, "Someone", "Else", "", "1112223333")
	assert.True(t, isDup)
	assert.Len(t, matches, 1)
}

func TestFindDuplicatesEmptyContactNeverMatchesEmpty(t *testing.T) {
	// Records without email/phone must not match a submission without them.
	existing := entity.Snapshot{
		{Customer: "Jane Doe", Company: "Acme"},
	}

	isDup, matches := FindDuplicates(existing, "Other", "Corp", "", "")
	assert.False(t, isDup)
	assert.Empty(t, matches)
}

func TestFindDuplicatesPreservesRowOrder(t *testing.T) {
	existing := entity.Snapshot{
		{Customer: "A", Company: "X", Email: "shared@acme.com"},
		{Customer: "B", Company: "Y"},
		{Customer: "C", Company: "Z", Email: "shared@acme.com"},
	}

	isDup, matches := FindDuplicates(existing, "nobody", "nowhere", "shared@acme.com", "")
	assert.True(t, isDup)
	assert.Len(t, matches, 2)
	assert.Equal(t, "A", matches[0].Customer)
	assert.Equal(t, "C", matches[1].Customer)
}
