package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse una entrada del historial de movimientos. Los nombres son el
// snapshot capturado al escribir, no el nombre actual del item/usuario.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	Type      string          `json:"type"` // in, out
	Quantity  decimal.Decimal `json:"quantity"`
	Timestamp time.Time       `json:"timestamp"`
}
