package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// MovementHandler expone el historial del libro de movimientos (solo lectura:
// no existe endpoint de edición ni borrado).
type MovementHandler struct {
	movRepo repository.MovementRepository
}

// NewMovementHandler construye el handler de historial.
func NewMovementHandler(movRepo repository.MovementRepository) *MovementHandler {
	return &MovementHandler{movRepo: movRepo}
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Ordenado por timestamp descendente; since/until opcionales (RFC3339 o YYYY-MM-DD).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        since   query  string  false  "desde (inclusive)"
// @Param        until   query  string  false  "hasta (inclusive)"
// @Param        limit   query  int     false  "máximo de filas (default 100)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	since, err := parseTimeQuery(c, "since")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "since inválido"})
	}
	until, err := parseTimeQuery(c, "until")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "until inválido"})
	}
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	movs, err := h.movRepo.List(since, until, limit, c.QueryInt("offset", 0))
	if err != nil {
		return storeUnavailable(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		ItemName:  m.ItemName,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Timestamp: m.Timestamp,
	}
}
