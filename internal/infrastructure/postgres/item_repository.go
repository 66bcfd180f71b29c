package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, barcode, description, unit_measure, quantity, min_quantity, supplier, location, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Barcode, item.Description, item.UnitMeasure,
		item.Quantity, item.MinQuantity, item.Supplier, item.Location,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetByBarcode busca por código de barras (match exacto). El barcode no tiene
// constraint de unicidad: se devuelve la coincidencia más antigua.
func (r *ItemRepo) GetByBarcode(code string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE barcode = $1 ORDER BY created_at LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get item by barcode")
}

// GetForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE). Las
// mutaciones de stock concurrentes sobre el mismo item se serializan aquí.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
}

// UpdateQuantity escribe la nueva cantidad. Solo lo llama el motor de stock,
// dentro de una transacción con la fila ya bloqueada.
func (r *ItemRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// UpdateMetadata actualiza los campos de catálogo. La columna quantity queda
// fuera del SET: este camino no puede tocarla.
func (r *ItemRepo) UpdateMetadata(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, barcode = $3, description = $4, unit_measure = $5,
		    min_quantity = $6, supplier = $7, location = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Barcode, item.Description, item.UnitMeasure,
		item.MinQuantity, item.Supplier, item.Location, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item metadata: %w", err)
	}
	return nil
}

// List lista items con paginación, más recientes primero.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return r.scanAll(rows)
}

// ListAll devuelve el snapshot completo (camino de agregación del dashboard).
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	return r.scanAll(rows)
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.Barcode, &it.Description, &it.UnitMeasure,
		&it.Quantity, &it.MinQuantity, &it.Supplier, &it.Location,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *ItemRepo) scanAll(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Barcode, &it.Description, &it.UnitMeasure,
			&it.Quantity, &it.MinQuantity, &it.Supplier, &it.Location,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
