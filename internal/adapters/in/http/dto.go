package http

import (
	"time"

	"kabalen/internal/core/application/usecases/queries"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// loginResponse carries the token plus the authenticated party's profile.
// The admin variant has only token and role; Credit is a pointer so clients,
// who have no balance, omit it cleanly.
type loginResponse struct {
	Token    string   `json:"token"`
	Role     string   `json:"role"`
	ID       int64    `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Username string   `json:"username,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	Credit   *float64 `json:"credit,omitempty"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type proofResponse struct {
	Ref string `json:"ref"`
}

type creditResponse struct {
	Balance float64 `json:"balance"`
}

type clientOrderRequest struct {
	Pickup   string  `json:"pickup"`
	Dropoff  string  `json:"dropoff"`
	Distance float64 `json:"distance"`
	Fee      float64 `json:"fee"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

type manualOrderRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Pickup        string  `json:"pickup"`
	Dropoff       string  `json:"dropoff"`
	Distance      float64 `json:"distance"`
	Fee           float64 `json:"fee"`
	Category      string  `json:"category"`
	Notes         string  `json:"notes"`
	RiderID       *int64  `json:"rider_id"`
}

type assignRiderRequest struct {
	RiderID *int64 `json:"rider_id"`
}

type registerRiderRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type adjustCreditRequest struct {
	Delta float64 `json:"delta"`
}

type clientOrderJSON struct {
	ID        int64     `json:"id"`
	Pickup    string    `json:"pickup"`
	Dropoff   string    `json:"dropoff"`
	Distance  float64   `json:"distance"`
	Fee       float64   `json:"fee"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	RiderName string    `json:"rider_name"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientOrdersJSON(orders []queries.GetClientOrdersQueryResponse) []clientOrderJSON {
	out := make([]clientOrderJSON, len(orders))
	for i, o := range orders {
		out[i] = clientOrderJSON{
			ID:        o.ID.Int64(),
			Pickup:    o.Pickup,
			Dropoff:   o.Dropoff,
			Distance:  o.Distance,
			Fee:       o.Fee,
			Category:  o.Category,
			Notes:     o.Notes,
			Status:    o.Status,
			RiderName: o.RiderName,
			CreatedAt: o.CreatedAt,
		}
	}
	return out
}

type boardOrderJSON struct {
	ID            int64     `json:"id"`
	Pickup        string    `json:"pickup"`
	Dropoff       string    `json:"dropoff"`
	Distance      float64   `json:"distance"`
	Fee           float64   `json:"fee"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Mine          bool      `json:"mine"`
	HasDropoff    bool      `json:"has_dropoff"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBoardJSON(board []queries.GetRiderBoardQueryResponse) []boardOrderJSON {
	out := make([]boardOrderJSON, len(board))
	for i, o := range board {
		out[i] = boardOrderJSON{
			ID:            o.ID.Int64(),
			Pickup:        o.Pickup,
			Dropoff:       o.Dropoff,
			Distance:      o.Distance,
			Fee:           o.Fee,
			Category:      o.Category,
			Notes:         o.Notes,
			Status:        o.Status,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			Mine:          o.Mine,
			HasDropoff:    o.HasDropoff,
			CreatedAt:     o.CreatedAt,
		}
	}
	return out
}

type adminOrderJSON struct {
	ID            int64     `json:"id"`
	Pickup        string    `json:"pickup"`
	Dropoff       string    `json:"dropoff"`
	Distance      float64   `json:"distance"`
	Fee           float64   `json:"fee"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	RiderID       *int64    `json:"rider_id"`
	RiderName     string    `json:"rider_name"`
	PickupProof   string    `json:"pickup_proof"`
	DropoffProof  string    `json:"dropoff_proof"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAdminOrdersJSON(orders []queries.GetAllOrdersQueryResponse) []adminOrderJSON {
	out := make([]adminOrderJSON, len(orders))
	for i, o := range orders {
		var riderID *int64
		if o.RiderID != nil {
			v := o.RiderID.Int64()
			riderID = &v
		}
		out[i] = adminOrderJSON{
			ID:            o.ID.Int64(),
			Pickup:        o.Pickup,
			Dropoff:       o.Dropoff,
			Distance:      o.Distance,
			Fee:           o.Fee,
			Category:      o.Category,
			Notes:         o.Notes,
			Status:        o.Status,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			RiderID:       riderID,
			RiderName:     o.RiderName,
			PickupProof:   o.PickupProof,
			DropoffProof:  o.DropoffProof,
			CreatedAt:     o.CreatedAt,
		}
	}
	return out
}

type riderJSON struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Username     string  `json:"username"`
	Credit       float64 `json:"credit"`
	ActiveOrders int64   `json:"active_orders"`
}

func toRidersJSON(riders []queries.GetAllRidersQueryResponse) []riderJSON {
	out := make([]riderJSON, len(riders))
	for i, r := range riders {
		out[i] = riderJSON{
			ID:           r.ID.Int64(),
			Name:         r.Name,
			Phone:        r.Phone,
			Username:     r.Username,
			Credit:       r.Credit,
			ActiveOrders: r.ActiveOrders,
		}
	}
	return out
}
