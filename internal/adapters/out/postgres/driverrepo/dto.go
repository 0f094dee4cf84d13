// Package driverrepo provides GORM persistence for drivers, including the
// compare-and-set status update that serializes driver assignment.
package driverrepo

import (
	"commerce/internal/core/domain/model/driver"
)

// DriverDTO represents the database structure for persisting drivers.
// FullName is unique because clients reference drivers by name.
type DriverDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	FullName string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone    string `gorm:"type:varchar(64)"`
	Status   string `gorm:"type:varchar(16);not null;default:FREE;index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// toDomain converts a database DTO to a driver using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(dto.ID, dto.FullName, dto.Phone, status)
}
