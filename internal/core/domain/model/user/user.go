// Package user provides the User aggregate: an actor record of the back office.
// Users are unrelated to the order flow.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Status is the role of a user.
type Status string

const (
	Regular Status = "USER"
	Admin   Status = "ADMIN"
)

// ParseStatus converts external input into a Status. Empty input yields Regular.
func ParseStatus(raw string) (Status, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return Regular, nil
	}
	s := Status(raw)
	if s != Regular && s != Admin {
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid user status", raw))
	}
	return s, nil
}

// User is a back-office account.
type User struct {
	id        int64
	firstName string
	lastName  string
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser creates a user with the given role.
func NewUser(firstName, lastName string, status Status, now time.Time) (*User, error) {
	u := &User{
		status:        status,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	var errFirst, errLast, errStatus error
	if firstName == "" {
		errFirst = errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		errLast = errs.NewValueIsRequiredError("lastName")
	}
	if status != Regular && status != Admin {
		errStatus = errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid user status", string(status)))
	}
	if err := errors.Join(errFirst, errLast, errStatus); err != nil {
		return nil, err
	}

	u.firstName = firstName
	u.lastName = lastName
	return u, nil
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(id int64, firstName, lastName string, status Status, createdAt, updatedAt time.Time) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid user id", id))
	}
	u, err := NewUser(firstName, lastName, status, createdAt)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.updatedAt = updatedAt.UTC()
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// SetID assigns the identity generated by the database.
func (u *User) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid user id", id))
	}
	u.id = id
	return nil
}

func (u *User) ID() int64 { return u.id }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Status() Status { return u.status }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
