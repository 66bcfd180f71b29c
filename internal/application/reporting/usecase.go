package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

const dashboardTopItems = 10 // número de items en el widget de consumo

// DashboardUseCase arma el resumen del dashboard: snapshot de items + ventana de
// movimientos, agregados con las funciones puras de metrics.go.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Summary calcula las métricas para la ventana [from, to]. Las dos consultas
// (snapshot e historial) van en paralelo; la agregación es en memoria.
func (uc *DashboardUseCase) Summary(ctx context.Context, from, to time.Time) (*dto.DashboardSummaryDTO, error) {
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type movsResult struct {
		movs []*entity.StockMovement
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	movsCh := make(chan movsResult, 1)

	go func() {
		items, err := uc.itemRepo.ListAll()
		itemsCh <- itemsResult{items, err}
	}()
	// La consulta cubre los días calendario completos de la ventana: from baja a
	// medianoche y to sube al fin de su día, para que el último bucket no salga
	// vacío cuando to viene a medianoche.
	winFrom := truncateDay(from)
	winTo := truncateDay(to.In(from.Location())).AddDate(0, 0, 1).Add(-time.Nanosecond)

	go func() {
		movs, err := uc.movRepo.ListWindow(winFrom, winTo)
		movsCh <- movsResult{movs, err}
	}()

	items := <-itemsCh
	movs := <-movsCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de items: %w", items.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: ventana de movimientos: %w", movs.err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalItems:    len(items.items),
		TotalStock:    TotalStock(items.items),
		LowStockCount: LowStockCount(items.items),
		From:          from,
		To:            to,
	}
	for _, f := range DailyFlows(movs.movs, from, to) {
		out.Daily = append(out.Daily, dto.DailyFlowDTO{
			Date: f.Date.Format(dayLayout),
			In:   f.In,
			Out:  f.Out,
		})
	}
	for _, c := range TopConsumed(movs.movs, dashboardTopItems) {
		out.TopConsumed = append(out.TopConsumed, dto.ConsumedItemDTO{
			ItemID:   c.ItemID,
			ItemName: c.ItemName,
			Quantity: c.Quantity,
		})
	}
	return out, nil
}

// SummaryForDays ventana de los últimos N días hasta ahora (atajo de la UI:
// 7, 30 o 90 días). El inicio baja a medianoche: el día más viejo entra completo,
// no desde la hora actual.
func (uc *DashboardUseCase) SummaryForDays(ctx context.Context, days int) (*dto.DashboardSummaryDTO, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	return uc.Summary(ctx, truncateDay(now.AddDate(0, 0, -(days-1))), now)
}
