// Package userrepo provides GORM persistence for back-office users.
package userrepo

import (
	"time"

	"commerce/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	status, err := user.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.FirstName, dto.LastName, status, dto.CreatedAt, dto.UpdatedAt)
}
