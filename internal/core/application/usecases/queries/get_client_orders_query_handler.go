package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// GetClientOrdersQueryHandler reads a client's order history.
// Joins the rider directory so the client sees who is delivering; unassigned
// orders show "-" in place of a rider name.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client order history.
// Requires a GORM database connection for query execution.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the query. Results follow the ledger, oldest first.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]GetClientOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClientOrdersQueryResponse, 0)

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
			r.name,
			o.created_at
		FROM orders o
		LEFT JOIN riders r ON r.id = o.rider_id
		WHERE o.client_id = ?
		ORDER BY o.id
	`, query.ClientID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetClientOrdersQueryResponse
		var id int64
		var status int
		var riderName sql.NullString
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
			&riderName,
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
		resp.RiderName = "-"
		if riderName.Valid {
			resp.RiderName = riderName.String
		}
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
