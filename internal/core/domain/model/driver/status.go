package driver

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// Status is the availability state of a driver.
type Status string

const (
	// Free drivers can be assigned to a new order.
	Free Status = "FREE"

	// Delivery drivers are serving an order.
	Delivery Status = "DELIVERY"
)

// ParseStatus converts external input into a Status. Matching is case-insensitive.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that s is Free or Delivery.
func (s Status) Validate() error {
	if s != Free && s != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid driver status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
