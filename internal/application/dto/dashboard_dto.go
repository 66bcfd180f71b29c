package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Ventana vacía = métricas en cero, nunca error.
type DashboardSummaryDTO struct {
	TotalItems    int             `json:"total_items"`
	TotalStock    decimal.Decimal `json:"total_stock"`
	LowStockCount int             `json:"low_stock_count"`

	// Serie entrada/salida por día (un bucket por día de la ventana, con ceros).
	Daily []DailyFlowDTO `json:"daily"`

	// Items más consumidos (suma de salidas) en la ventana, de mayor a menor.
	TopConsumed []ConsumedItemDTO `json:"top_consumed"`

	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DailyFlowDTO totales de un día.
type DailyFlowDTO struct {
	Date string          `json:"date"` // YYYY-MM-DD
	In   decimal.Decimal `json:"in"`
	Out  decimal.Decimal `json:"out"`
}

// ConsumedItemDTO consumo acumulado de un item en la ventana.
type ConsumedItemDTO struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
}
