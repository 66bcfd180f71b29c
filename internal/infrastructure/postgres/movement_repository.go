package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, item_id, item_name, user_id, user_name, type, quantity, timestamp`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only y en este
// adaptador no existe UPDATE ni DELETE sobre movements.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento con identidad asignada por el servidor.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.Timestamp.IsZero() {
		movement.Timestamp = time.Now()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.ItemName,
		movement.UserID, movement.UserName, movement.Type,
		movement.Quantity, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve movimientos por recencia (timestamp descendente) con filtros
// opcionales de fecha y paginación.
func (r *MovementRepo) List(since, until *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements`
	args := []any{}
	where := ""
	if since != nil {
		args = append(args, *since)
		where = fmt.Sprintf(" WHERE timestamp >= $%d", len(args))
	}
	if until != nil {
		args = append(args, *until)
		if where == "" {
			where = fmt.Sprintf(" WHERE timestamp <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND timestamp <= $%d", len(args))
		}
	}
	args = append(args, limit, offset)
	query += where + fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return r.scanAll(rows)
}

// ListByItem devuelve todos los movimientos de un item (reconciliación contra la
// cantidad actual).
func (r *MovementRepo) ListByItem(itemID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE item_id = $1 ORDER BY timestamp DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return r.scanAll(rows)
}

// ListWindow devuelve todos los movimientos en [from, to] sin paginar (el
// dashboard agrega en memoria; no necesita orden).
func (r *MovementRepo) ListWindow(from, to time.Time) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE timestamp >= $1 AND timestamp <= $2`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements window: %w", err)
	}
	return r.scanAll(rows)
}

func (r *MovementRepo) scanAll(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemName, &m.UserID, &m.UserName, &m.Type, &m.Quantity, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
