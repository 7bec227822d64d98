package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gordohq/lead-portal/internal/entity"
)

var (
	nonDigit     = regexp.MustCompile(`\D`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NormalizePhone strips everything but digits from raw. Exactly 10 digits is
// the only accepted shape; the formatted form is "(DDD) DDD-DDDD". Empty (or
// whitespace-only) input means the phone is simply absent: ("", "", true).
// Any other digit count is invalid.
func NormalizePhone(raw string) (digits, formatted string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", true
	}

	digits = nonDigit.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return "", "", false
	}
	formatted = fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:])
	return digits, formatted, true
}

// ValidateEmail is a basic local@domain.tld sanity check. Empty is allowed
// (email is optional); no further RFC compliance is attempted.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// RequireContactMethod: a lead needs at least one way to reach it.
func RequireContactMethod(email, phoneDigits string) bool {
	return strings.TrimSpace(email) != "" || strings.TrimSpace(phoneDigits) != ""
}

// FindDuplicates checks a candidate submission against the existing records.
// A record matches when, case-insensitively after trimming, its customer AND
// company both match, OR it shares a non-empty email, OR it shares a
// non-empty phone (compared digits-only). The three predicates are
// independent; all matching rows come back in their original order.
func FindDuplicates(existing entity.Snapshot, customer, company, email, phoneDigits string) (bool, entity.Snapshot) {
	custNorm := normalize(customer)
	compNorm := normalize(company)
	emailNorm := normalize(email)

	var matches entity.Snapshot
	for _, r := range existing {
		match := normalize(r.Customer) == custNorm && normalize(r.Company) == compNorm
		if emailNorm != "" && normalize(r.Email) == emailNorm {
			match = true
		}
		if phoneDigits != "" && nonDigit.ReplaceAllString(r.Phone, "") == phoneDigits {
			match = true
		}
		if match {
			matches = append(matches, r)
		}
	}
	return len(matches) > 0, matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
