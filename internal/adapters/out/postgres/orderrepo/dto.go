// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is a bigserial: the database allocates it on insert, which is what
// makes order numbers strictly monotonic. Exactly one of ClientID and
// CustomerName is set, mirroring the origin variant.
type OrderDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	ClientID      *int64  `gorm:"index"`
	CustomerName  *string `gorm:"type:varchar(255)"`
	CustomerPhone *string `gorm:"type:varchar(64)"`
	Pickup        string  `gorm:"type:varchar(500)"`
	Dropoff       string  `gorm:"type:varchar(500)"`
	Distance      float64
	Fee           float64
	Category      string `gorm:"type:varchar(100)"`
	Notes         string
	Status        int     `gorm:"index"`
	RiderID       *int64  `gorm:"index"`
	PickupProof   *string `gorm:"type:varchar(255)"`
	DropoffProof  *string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// A zero aggregate id maps to a zero DTO id, which tells GORM to let the
// database sequence assign one.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:       aggregate.ID().Int64(),
		Pickup:   aggregate.Pickup().String(),
		Dropoff:  aggregate.Dropoff().String(),
		Distance: aggregate.Distance(),
		Fee:      aggregate.Fee(),
		Category: aggregate.Category(),
		Notes:    aggregate.Notes(),
		Status:   int(aggregate.Status()),
	}

	origin := aggregate.Origin()
	if clientID, ok := origin.ClientID(); ok {
		raw := clientID.Int64()
		dto.ClientID = &raw
	} else {
		name := origin.CustomerName()
		dto.CustomerName = &name
		if phone := origin.CustomerPhone(); phone != "" {
			dto.CustomerPhone = &phone
		}
	}

	if riderID := aggregate.Rider(); riderID != nil {
		raw := riderID.Int64()
		dto.RiderID = &raw
	}

	if proof := aggregate.PickupProof(); proof != nil {
		name := proof.String()
		dto.PickupProof = &name
	}
	if proof := aggregate.DropoffProof(); proof != nil {
		name := proof.String()
		dto.DropoffProof = &name
	}

	return dto
}

// toDomain converts a database row to an order aggregate using RestoreOrder,
// so every invariant is revalidated on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var origin order.Origin
	if dto.ClientID != nil {
		clientID, clientErr := kernel.NewID(*dto.ClientID)
		if clientErr != nil {
			return nil, clientErr
		}
		origin, err = order.NewClientOrigin(clientID)
	} else {
		var name, phone string
		if dto.CustomerName != nil {
			name = *dto.CustomerName
		}
		if dto.CustomerPhone != nil {
			phone = *dto.CustomerPhone
		}
		origin, err = order.NewManualOrigin(name, phone)
	}
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewAddress(dto.Pickup)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewAddress(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.ID
	if dto.RiderID != nil {
		rid, riderErr := kernel.NewID(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rid
	}

	var pickupProof, dropoffProof *order.ProofRef
	if dto.PickupProof != nil {
		ref, proofErr := order.NewProofRef(*dto.PickupProof)
		if proofErr != nil {
			return nil, proofErr
		}
		pickupProof = &ref
	}
	if dto.DropoffProof != nil {
		ref, proofErr := order.NewProofRef(*dto.DropoffProof)
		if proofErr != nil {
			return nil, proofErr
		}
		dropoffProof = &ref
	}

	return order.RestoreOrder(
		id, origin, pickup, dropoff,
		dto.Distance, dto.Fee, dto.Category, dto.Notes,
		order.Status(dto.Status), riderID, pickupProof, dropoffProof,
	)
}
