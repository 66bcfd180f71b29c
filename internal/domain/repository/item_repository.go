package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// UpdateQuantity es de uso exclusivo del motor de stock (dentro de transacción);
// UpdateMetadata nunca toca quantity.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetByBarcode busca por código de barras (match exacto). El barcode no es
	// único por constraint: se devuelve la primera coincidencia.
	GetByBarcode(code string) (*entity.Item, error)
	// GetForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Item, error)
	UpdateQuantity(id string, quantity decimal.Decimal) error
	UpdateMetadata(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	// ListAll devuelve el snapshot completo de items (para agregación de dashboard).
	ListAll() ([]*entity.Item, error)
}
