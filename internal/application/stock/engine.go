package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// Actor identifica a quien ejecuta una operación de stock. Name se desnormaliza
// en el movimiento al momento de escribir.
type Actor struct {
	ID   string
	Name string
}

// SystemActor atribuye los movimientos generados por el propio sistema
// (ej. stock inicial al crear un item).
var SystemActor = Actor{ID: "system", Name: "Sistema"}

// Engine es el único camino legítimo para cambiar Item.Quantity. Cada cambio
// produce exactamente un movimiento en el libro, con signo y magnitud
// consistentes, escrito en la misma transacción que el item.
//
// Estrategia de concurrencia: cada operación corre dentro de una transacción que
// bloquea la fila del item (SELECT FOR UPDATE) antes de leer-validar-escribir.
// Dos checkouts concurrentes se serializan en el lock; el segundo relee la
// cantidad ya descontada y falla con ErrInsufficientStock si quedaría negativa.
type Engine struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewEngine construye el motor de mutación de stock.
func NewEngine(txRunner TxRunner, log *logger.Logger) *Engine {
	return &Engine{txRunner: txRunner, log: log}
}

// validAmount verifica que la cantidad sea un entero estrictamente positivo.
// El motor revalida siempre: no confía en el clamping de la UI.
func validAmount(q decimal.Decimal) bool {
	return q.IsInteger() && q.GreaterThan(decimal.Zero)
}

// AddStock suma quantity al stock del item y registra un movimiento de entrada.
// Precondiciones: el item existe y quantity es un entero positivo.
func (e *Engine) AddStock(ctx context.Context, actor Actor, itemID string, quantity decimal.Decimal) error {
	if !validAmount(quantity) {
		return domain.ErrInvalidQuantity
	}
	err := e.txRunner.Run(ctx, func(items repository.ItemRepository, movs repository.MovementRepository) error {
		item, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := items.UpdateQuantity(itemID, item.Quantity.Add(quantity)); err != nil {
			return err
		}
		return movs.Create(e.movement(item, actor, entity.MovementTypeIn, quantity))
	})
	return e.logged(err, "add_stock", itemID)
}

// Checkout descuenta quantity del stock del item y registra un movimiento de
// salida. Falla con ErrInsufficientStock si quantity excede el stock bloqueado;
// en ese caso no hay cambio de cantidad ni entrada en el libro.
func (e *Engine) Checkout(ctx context.Context, actor Actor, itemID string, quantity decimal.Decimal) error {
	if !validAmount(quantity) {
		return domain.ErrInvalidQuantity
	}
	err := e.txRunner.Run(ctx, func(items repository.ItemRepository, movs repository.MovementRepository) error {
		item, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity.LessThan(quantity) {
			return domain.ErrInsufficientStock
		}
		if err := items.UpdateQuantity(itemID, item.Quantity.Sub(quantity)); err != nil {
			return err
		}
		return movs.Create(e.movement(item, actor, entity.MovementTypeOut, quantity))
	})
	return e.logged(err, "checkout", itemID)
}

// CreateItemInput campos para crear un item con su stock inicial.
type CreateItemInput struct {
	Name        string
	Barcode     string
	Description string
	UnitMeasure string
	Quantity    decimal.Decimal // stock inicial, >= 0 entero
	MinQuantity decimal.Decimal // umbral de reposición, >= 0 entero
	Supplier    string
	Location    string
}

// CreateItem crea el item y, si el stock inicial es mayor que cero, registra en la
// misma transacción un movimiento de entrada atribuido al actor del sistema. Así
// total-entradas menos total-salidas reconcilia con la cantidad actual desde el día uno.
func (e *Engine) CreateItem(ctx context.Context, in CreateItemInput) (*entity.Item, error) {
	if in.Name == "" || in.Barcode == "" || !entity.ValidUnit(in.UnitMeasure) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsInteger() || in.Quantity.IsNegative() ||
		!in.MinQuantity.IsInteger() || in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Barcode:     in.Barcode,
		Description: in.Description,
		UnitMeasure: in.UnitMeasure,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Supplier:    in.Supplier,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := e.txRunner.Run(ctx, func(items repository.ItemRepository, movs repository.MovementRepository) error {
		if err := items.Create(item); err != nil {
			return err
		}
		if item.Quantity.IsZero() {
			return nil
		}
		return movs.Create(e.movement(item, SystemActor, entity.MovementTypeIn, item.Quantity))
	})
	if err := e.logged(err, "create_item", item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

func (e *Engine) movement(item *entity.Item, actor Actor, movType string, quantity decimal.Decimal) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Type:      movType,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}

// logged registra fallos de infraestructura (transacción revertida) y deja pasar
// el error. Los errores de dominio son respuesta normal al caller y no se loguean.
func (e *Engine) logged(err error, op, itemID string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return err
	}
	e.log.Error().Err(err).Str("op", op).Str("item_id", itemID).
		Msg("mutación de stock revertida")
	return err
}
