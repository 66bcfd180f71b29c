package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es una entrada inmutable del libro de movimientos: registra un
// cambio de cantidad (dirección + magnitud + actor + instante). ItemName y
// UserName se capturan al momento de escribir (desnormalizados a propósito):
// la historia no se reescribe si el item o el usuario cambian de nombre después.
// Nunca se actualiza ni se borra una vez creado.
type StockMovement struct {
	ID        string
	ItemID    string
	ItemName  string
	UserID    string
	UserName  string
	Type      string          // in, out
	Quantity  decimal.Decimal // siempre positiva; el tipo da la dirección
	Timestamp time.Time
}
