package repository

import (
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos.
// Append-only: Create es la única escritura; el puerto no expone Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos ordenados por timestamp descendente (vista de
	// historial). since/until son opcionales (nil = sin límite).
	List(since, until *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// ListByItem devuelve los movimientos de un item (reconciliación).
	ListByItem(itemID string) ([]*entity.StockMovement, error)
	// ListWindow devuelve todos los movimientos en [from, to] sin paginar
	// (camino de agregación del dashboard).
	ListWindow(from, to time.Time) ([]*entity.StockMovement, error)
}
