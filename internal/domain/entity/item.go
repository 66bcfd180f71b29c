package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para un Item.
const (
	UnitSheet = "sheet" // hoja
	UnitKg    = "kg"
	UnitLiter = "liter"
	UnitUnit  = "unit"
)

// ValidUnit indica si la unidad de medida es una de las conocidas.
func ValidUnit(u string) bool {
	switch u {
	case UnitSheet, UnitKg, UnitLiter, UnitUnit:
		return true
	}
	return false
}

// Item representa un insumo del almacén, con cantidad actual y umbral de reposición.
// Quantity y MinQuantity son enteros no negativos (columna NUMERIC, validado por el motor).
// Quantity solo se modifica a través del motor de mutación de stock; nunca por el catálogo.
// El barcode es clave de búsqueda, no única a nivel de storage.
type Item struct {
	ID          string
	Name        string
	Barcode     string
	Description string
	UnitMeasure string          // sheet, kg, liter, unit
	Quantity    decimal.Decimal // >= 0, invariante del motor
	MinQuantity decimal.Decimal // >= 0, umbral de reposición
	Supplier    string          // opcional
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el item está en stock bajo (quantity <= minQuantity).
// El límite exacto quantity == minQuantity cuenta como bajo.
func (i *Item) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinQuantity)
}
