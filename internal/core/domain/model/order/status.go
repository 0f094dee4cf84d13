package order

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// ErrOrderIsCompleted is the cause of every rejected transition out of Completed.
var ErrOrderIsCompleted = errors.New("order is already completed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	RECEIVED ──┬──> PROCESSING ──┬──> IN_TRANSIT ──┬──> COMPLETED
//	           │        ^        │        ^        │
//	           └────────┴────────┴────────┴────────┘
//	  (any non-terminal status may move to any other status)
//
// The zero value is invalid and helps catch uninitialized statuses.
type Status string

const (
	// Received is the initial status of every new order.
	Received Status = "RECEIVED"

	// Processing means the order is being assembled.
	Processing Status = "PROCESSING"

	// InTransit means a driver is on the way with the order.
	InTransit Status = "IN_TRANSIT"

	// Completed is the terminal status. Completing an order releases its driver.
	Completed Status = "COMPLETED"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Received:   {},
		Processing: {},
		InTransit:  {},
		Completed:  {},
	}
}

// ParseStatus converts external input into a Status. Matching is case-insensitive.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// TransitionTo validates the move from s to next and returns next.
//
// Returns:
//   - (next, nil) when s is not terminal and next is valid
//   - ("", ValueIsInvalidError) when next is not a defined status
//   - ("", ConflictError wrapping ErrOrderIsCompleted) when s is Completed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if s.IsTerminal() {
		return "", errs.NewConflictErrorWithCause("status", ErrOrderIsCompleted)
	}

	return next, nil
}
