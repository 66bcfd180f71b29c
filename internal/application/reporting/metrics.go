// Package reporting deriva las métricas del dashboard reproduciendo el libro de
// movimientos sobre el snapshot de items. Todas las funciones de este archivo son
// puras: sin estado persistido, recalculadas en cada carga de la vista.
package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// DailyFlow totales de entrada y salida de un día.
type DailyFlow struct {
	Date time.Time
	In   decimal.Decimal
	Out  decimal.Decimal
}

// ConsumedItem consumo acumulado (salidas) de un item en la ventana.
type ConsumedItem struct {
	ItemID   string
	ItemName string
	Quantity decimal.Decimal
}

// TotalStock suma la cantidad actual de todos los items del snapshot.
func TotalStock(items []*entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}

// LowStockCount cuenta los items en stock bajo (quantity <= minQuantity; el
// límite exacto cuenta como bajo).
func LowStockCount(items []*entity.Item) int {
	n := 0
	for _, it := range items {
		if it.IsLowStock() {
			n++
		}
	}
	return n
}

// dayLayout clave de día calendario para los buckets del dashboard.
const dayLayout = "2006-01-02"

// DailyFlows agrupa los movimientos por día calendario entre from y to
// (inclusive) y devuelve un bucket por día, con ceros en los días sin
// movimientos. Los días se resuelven en la zona horaria de from: cada timestamp
// se convierte antes de asignar bucket, así un movimiento guardado en otra zona
// (timestamptz) cae en el día correcto. Una ventana vacía produce buckets en
// cero, nunca error.
func DailyFlows(movements []*entity.StockMovement, from, to time.Time) []DailyFlow {
	loc := from.Location()
	start := truncateDay(from)
	end := truncateDay(to.In(loc))
	if end.Before(start) {
		return []DailyFlow{}
	}

	byDay := make(map[string]*DailyFlow)
	var flows []DailyFlow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		flows = append(flows, DailyFlow{Date: d, In: decimal.Zero, Out: decimal.Zero})
	}
	for i := range flows {
		byDay[flows[i].Date.Format(dayLayout)] = &flows[i]
	}

	for _, m := range movements {
		day := m.Timestamp.In(loc).Format(dayLayout)
		bucket, ok := byDay[day]
		if !ok {
			continue // fuera de la ventana pedida
		}
		switch m.Type {
		case entity.MovementTypeIn:
			bucket.In = bucket.In.Add(m.Quantity)
		case entity.MovementTypeOut:
			bucket.Out = bucket.Out.Add(m.Quantity)
		}
	}
	return flows
}

// TopConsumed devuelve los n items con mayor suma de salidas en la ventana,
// ordenados de mayor a menor consumo. Lista vacía si no hay salidas.
func TopConsumed(movements []*entity.StockMovement, n int) []ConsumedItem {
	type acc struct {
		name string
		qty  decimal.Decimal
	}
	byItem := make(map[string]*acc)
	for _, m := range movements {
		if m.Type != entity.MovementTypeOut {
			continue
		}
		a, ok := byItem[m.ItemID]
		if !ok {
			// El nombre desnormalizado del movimiento, no un join con items:
			// refleja cómo se llamaba el item cuando se consumió.
			a = &acc{name: m.ItemName, qty: decimal.Zero}
			byItem[m.ItemID] = a
		}
		a.qty = a.qty.Add(m.Quantity)
	}

	ranked := make([]ConsumedItem, 0, len(byItem))
	for id, a := range byItem {
		ranked = append(ranked, ConsumedItem{ItemID: id, ItemName: a.name, Quantity: a.qty})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Quantity.Equal(ranked[j].Quantity) {
			return ranked[i].Quantity.GreaterThan(ranked[j].Quantity)
		}
		return ranked[i].ItemName < ranked[j].ItemName
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
