package queries

import (
	"context"

	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// GetAllRidersQueryHandler reads the rider directory with a per-rider count
// of accepted orders, so the admin sees workload next to credit.
type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRidersQueryHandler creates a handler for rider directory queries.
// Requires a GORM database connection for query execution.
func NewGetAllRidersQueryHandler(db *gorm.DB) GetAllRidersQueryHandler {
	return GetAllRidersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetAllRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRidersQuery,
) ([]GetAllRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAllRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.phone,
			r.username,
			r.credit,
			COUNT(o.id) AS active_orders
		FROM riders r
		LEFT JOIN orders o ON o.rider_id = r.id AND o.status = ?
		GROUP BY r.id, r.name, r.phone, r.username, r.credit
		ORDER BY r.name
	`, order.Accepted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRidersQueryResponse
		var id int64

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Username,
			&resp.Credit,
			&resp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
