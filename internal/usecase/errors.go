package usecase

import (
	"errors"
	"fmt"

	"github.com/gordohq/lead-portal/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DuplicateLeadError carries the existing records that conflict with the
// submission, in their original row order.
type DuplicateLeadError struct {
	Matches entity.Snapshot
}

func (e *DuplicateLeadError) Error() string {
	return fmt.Sprintf("lead looks like a duplicate of %d existing record(s)", len(e.Matches))
}

func IsDuplicateLeadError(err error) bool {
	var de *DuplicateLeadError
	return errors.As(err, &de)
}
