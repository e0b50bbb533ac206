package queries

import (
	"errors"

	"comanda/internal/pkg/guard"
)

var ErrCashierBoardQueryIsNotConstructed = errors.New(
	"CashierBoardQuery must be created via NewCashierBoardQuery constructor",
)

// CashierBoardQuery retrieves the cashier's view: the open orders waiting for
// delivery and the already delivered ones, each priced against the catalog.
type CashierBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewCashierBoardQuery creates a parameterless query for the cashier board.
func NewCashierBoardQuery() CashierBoardQuery {
	return CashierBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CashierBoardQuery) Validate() error {
	return q.guard.Validate(ErrCashierBoardQueryIsNotConstructed)
}

// CashierOrderResponse is one priced entry of the cashier board. Total is the
// sum of quantity * price over the items; items whose product was deleted
// from the catalog contribute zero.
type CashierOrderResponse struct {
	OrderResponse
	Total          float64 `json:"total"`
	ReadyToDeliver bool    `json:"readyToDeliver"`
}

// CashierBoardResponse groups the board by order status.
type CashierBoardResponse struct {
	Pending   []CashierOrderResponse `json:"pending"`
	Delivered []CashierOrderResponse `json:"delivered"`
}
