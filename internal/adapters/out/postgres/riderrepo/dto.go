// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(64)"`
	Username     string `gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Credit       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:           aggregate.ID().Int64(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Credit:       aggregate.Credit(),
	}
}

// toDomain converts a database row to a rider aggregate via RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Phone, dto.Username, dto.PasswordHash, dto.Credit)
}
