package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// GetRiderBoardQueryHandler reads the shared order board for one rider.
// The board is first come, first served: every rider sees the same pending
// orders, and additionally every order assigned to them.
type GetRiderBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderBoardQueryHandler creates a handler for rider board queries.
// Requires a GORM database connection for query execution.
func NewGetRiderBoardQueryHandler(db *gorm.DB) GetRiderBoardQueryHandler {
	return GetRiderBoardQueryHandler{db: db}
}

// Handle executes the board query.
// Pending orders from any origin appear for every rider; assigned orders,
// delivered ones included, appear only on their owner's board. Oldest orders
// first so the queue reads top to bottom.
func (h GetRiderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetRiderBoardQuery,
) ([]GetRiderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetRiderBoardQueryResponse, 0)

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
			o.rider_id,
			o.customer_name,
			o.customer_phone,
			c.fullname,
			c.phone,
			o.dropoff_proof,
			o.created_at
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.status = ? OR o.rider_id = ?
		ORDER BY o.id
	`, order.Pending, query.RiderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRiderBoardQueryResponse
		var id int64
		var status int
		var riderID sql.NullInt64
		var manualName, manualPhone, clientName, clientPhone, dropoffProof sql.NullString
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
			&riderID,
			&manualName,
			&manualPhone,
			&clientName,
			&clientPhone,
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
		resp.Mine = riderID.Valid && riderID.Int64 == query.RiderID().Int64()
		resp.HasDropoff = dropoffProof.Valid && dropoffProof.String != ""
		resp.CreatedAt = createdAt
		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

// displayValue picks the registered client's field over the manual entry,
// falling back to "-" when neither is recorded.
func displayValue(fromClient, fromManual sql.NullString) string {
	if fromClient.Valid && fromClient.String != "" {
		return fromClient.String
	}
	if fromManual.Valid && fromManual.String != "" {
		return fromManual.String
	}
	return "-"
}
