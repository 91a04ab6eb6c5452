package booking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrBookingNotFound     = httperr.ErrBusiness("booking_not_found")
	ErrInvalidState        = httperr.ErrBusiness("invalid_state")
	ErrSlotUnavailable     = httperr.ErrBusiness("slot_unavailable")
	ErrSlotInPast          = httperr.ErrBusiness("slot_in_past")
	ErrCancellationTooLate = httperr.ErrBusiness("cancellation_too_late")
	ErrInvalidDate         = httperr.ErrBusiness("invalid_date_or_time")
)

// ConflictResolutionPartialFailure lists colliding requests that could not
// be moved to rejected after an accept. The accept itself stands.
type ConflictResolutionPartialFailure struct {
	Failed map[string]error
}

func (e *ConflictResolutionPartialFailure) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("failed to reject %d colliding booking(s): %s", len(ids), strings.Join(ids, ", "))
}

func (e *ConflictResolutionPartialFailure) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}
