package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/reporting"
)

// DashboardHandler expone el resumen agregado para la vista de gestor.
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Totales, stock bajo, serie entrada/salida por día y top de consumo. Ventana: days (7/30/90) o from/to explícitos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int     false  "últimos N días (default 30)"
// @Param        from  query  string  false  "inicio de ventana (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "fin de ventana (RFC3339 o YYYY-MM-DD)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}

	var out *dto.DashboardSummaryDTO
	if from != nil && to != nil {
		out, err = h.uc.Summary(c.Context(), *from, *to)
	} else {
		out, err = h.uc.SummaryForDays(c.Context(), c.QueryInt("days", 30))
	}
	if err != nil {
		return storeUnavailable(c, err)
	}
	return c.JSON(out)
}
