package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de item. Quantity es el stock inicial: si es mayor que
// cero genera un movimiento de entrada atribuido al sistema.
type CreateItemRequest struct {
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	UnitMeasure string          `json:"unit_measure"` // sheet, kg, liter, unit
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Supplier    string          `json:"supplier"`
	Location    string          `json:"location"`
}

// UpdateItemRequest actualización de metadata. No incluye quantity a propósito:
// la cantidad solo cambia por el motor de stock.
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	UnitMeasure string          `json:"unit_measure"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Supplier    string          `json:"supplier"`
	Location    string          `json:"location"`
}

// StockAmountRequest cantidad para add-stock o checkout (entero positivo).
type StockAmountRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ItemResponse representación pública de un item.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	UnitMeasure string          `json:"unit_measure"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Supplier    string          `json:"supplier"`
	Location    string          `json:"location"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
