// Package clientrepo provides data transfer objects and mapping functions for
// client persistence. Client rows are written once at registration and never
// updated, so the repository has no update path.
package clientrepo

import (
	"time"

	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Fullname     string `gorm:"type:varchar(255)"`
	Address      string `gorm:"type:varchar(500)"`
	Phone        string `gorm:"type:varchar(64)"`
	Username     string `gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	ValidIDRef   string `gorm:"type:varchar(255)"`
	SelfieRef    string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID().Int64(),
		Fullname:     aggregate.Fullname(),
		Address:      aggregate.Address(),
		Phone:        aggregate.Phone(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		ValidIDRef:   aggregate.ValidIDRef(),
		SelfieRef:    aggregate.SelfieRef(),
	}
}

// toDomain converts a database row to a client aggregate via RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Fullname, dto.Address, dto.Phone,
		dto.Username, dto.PasswordHash,
		dto.ValidIDRef, dto.SelfieRef,
	)
}
