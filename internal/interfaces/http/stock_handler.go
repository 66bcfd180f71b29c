package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/stock"
	"github.com/jhoicas/Estoque-api/internal/domain"
)

// StockHandler expone las dos mutaciones de stock: entrada (gestor) y
// checkout (colaborador tras escanear).
type StockHandler struct {
	engine *stock.Engine
}

// NewStockHandler construye el handler.
func NewStockHandler(engine *stock.Engine) *StockHandler {
	return &StockHandler{engine: engine}
}

// AddStock godoc
// @Summary      Sumar stock a un item
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "item id"
// @Param        body  body  dto.StockAmountRequest  true  "quantity (entero positivo)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.AddStock(c.Context(), CurrentActor(c), c.Params("id"), in.Quantity); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "entrada registrada"})
}

// Checkout godoc
// @Summary      Retirar stock de un item
// @Description  Falla con 409 INSUFFICIENT_STOCK si la cantidad excede el stock; en ese caso no hay cambio ni movimiento.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "item id"
// @Param        body  body  dto.StockAmountRequest  true  "quantity (entero positivo)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/checkout [post]
func (h *StockHandler) Checkout(c *fiber.Ctx) error {
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.Checkout(c.Context(), CurrentActor(c), c.Params("id"), in.Quantity); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salida registrada"})
}

// stockError mapea la taxonomía del motor a HTTP. INSUFFICIENT_STOCK e
// INVALID_QUANTITY son terminales para ese intento (requieren nueva entrada del
// usuario); el resto es reintentable repitiendo la misma acción.
func stockError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidQuantity) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad inválida: debe ser un entero positivo"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return storeUnavailable(c, err)
}
