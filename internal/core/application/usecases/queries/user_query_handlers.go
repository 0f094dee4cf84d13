package queries

import (
	"context"

	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

const userColumns = "id, first_name, last_name, status, created_at, updated_at"

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)
	err := h.db.WithContext(ctx).
		Table("users").
		Select(userColumns).
		Order("created_at DESC").
		Order("id DESC").
		Limit(query.Page().Take).
		Offset(query.Page().Skip).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown user.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var user UserView
	result := h.db.WithContext(ctx).
		Table("users").
		Select(userColumns).
		Where("id = ?", query.UserID()).
		Limit(1).
		Scan(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("user", query.UserID())
	}

	return &user, nil
}

const driverColumns = "id, full_name, phone, status"

// ListDriversQueryHandler reads the driver fleet with current availability.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverView, 0)
	err := h.db.WithContext(ctx).
		Table("drivers").
		Select(driverColumns).
		Order("full_name").
		Scan(&drivers).Error
	if err != nil {
		return nil, err
	}

	return drivers, nil
}

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (*DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var d DriverView
	result := h.db.WithContext(ctx).
		Table("drivers").
		Select(driverColumns).
		Where("id = ?", query.DriverID()).
		Limit(1).
		Scan(&d)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("driver", query.DriverID())
	}

	return &d, nil
}
