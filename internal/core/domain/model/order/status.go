package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order line.
// It implements a state machine with defined transitions so lines follow
// the correct business workflow.
//
// State transitions:
//
//	Paid ──> Cancelled
//
// Cancelled is terminal; a cancelled line cannot be re-activated.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Paid is the initial status of a line: payment has been accepted
	// and stock has been reserved.
	Paid

	// Cancelled indicates the buyer cancelled the line and its stock
	// was released. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the valid states.
// Used when reconstructing lines from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value; invalid
// statuses render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Paid -> Cancelled
//
// Everything else is rejected: cancelling twice is an invalid transition,
// as is cancelling an uninitialized line.
func (s Status) Cancel() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
