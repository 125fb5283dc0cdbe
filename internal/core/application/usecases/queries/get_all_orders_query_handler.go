package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// GetAllOrdersQueryHandler reads the full ledger for the admin dashboard.
// Joins both the client and rider directories so each row carries display
// names instead of bare foreign keys.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the admin ledger view.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.pickup,
			o.dropoff,
			o.distance,
			o.fee,
			o.category,
			o.notes,
			o.status,
			o.customer_name,
			o.customer_phone,
			c.fullname,
			c.phone,
			o.rider_id,
			r.name,
			o.pickup_proof,
			o.dropoff_proof,
			o.created_at
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN riders r ON r.id = o.rider_id
		ORDER BY o.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id int64
		var status int
		var riderID sql.NullInt64
		var manualName, manualPhone, clientName, clientPhone sql.NullString
		var riderName, pickupProof, dropoffProof sql.NullString
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.Pickup,
			&resp.Dropoff,
			&resp.Distance,
			&resp.Fee,
			&resp.Category,
			&resp.Notes,
			&status,
			&manualName,
			&manualPhone,
			&clientName,
			&clientPhone,
			&riderID,
			&riderName,
			&pickupProof,
			&dropoffProof,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.CustomerName = displayValue(clientName, manualName)
		resp.CustomerPhone = displayValue(clientPhone, manualPhone)
		resp.RiderName = "-"
		if riderID.Valid {
			rid, ridErr := kernel.NewID(riderID.Int64)
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RiderID = &rid
		}
		if riderName.Valid {
			resp.RiderName = riderName.String
		}
		resp.PickupProof = pickupProof.String
		resp.DropoffProof = dropoffProof.String
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
