package queries

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
	ErrListDriversQueryIsNotConstructed = errors.New(
		"ListDriversQuery must be created via NewListDriversQuery constructor",
	)
	ErrGetDriverQueryIsNotConstructed = errors.New(
		"GetDriverQuery must be created via NewGetDriverQuery constructor",
	)
)

// ListUsersQuery retrieves a page of back-office users, newest first.
type ListUsersQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewListUsersQuery(page Page) ListUsersQuery {
	return ListUsersQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Page() Page { return q.page }

// GetUserQuery retrieves one user by ID.
type GetUserQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID int64) (GetUserQuery, error) {
	if userID <= 0 {
		return GetUserQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid user id", userID))
	}
	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() int64 { return q.userID }

// ListDriversQuery retrieves every driver sorted by name. The fleet is small
// and seeded out of band, so the list is not paged.
type ListDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewListDriversQuery() ListDriversQuery {
	return ListDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// GetDriverQuery retrieves one driver by ID.
type GetDriverQuery struct {
	driverID int64

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID int64) (GetDriverQuery, error) {
	if driverID <= 0 {
		return GetDriverQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid driver id", driverID))
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() int64 { return q.driverID }
