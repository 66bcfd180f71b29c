package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
)

// AuthHandler maneja login, selección de perfil e impersonación.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve token+user, o candidates si la credencial mapea a varios perfiles.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario o contraseña inválidos"})
		}
		if errors.Is(err, domain.ErrUserDeactivated) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "DEACTIVATED", Message: "usuario desactivado, contacte al administrador"})
		}
		return storeUnavailable(c, err)
	}
	return c.JSON(out)
}

// SelectProfile godoc
// @Summary      Elegir perfil tras login ambiguo
// @Description  Emite el token del perfil elegido. Requiere el selection_token del login (prueba de contraseña ya verificada); solo acepta candidatos de ese login.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectProfileRequest  true  "selection_token del login y user_id del candidato"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/select-profile [post]
func (h *AuthHandler) SelectProfile(c *fiber.Ctx) error {
	var in dto.SelectProfileRequest
	if err := c.BodyParser(&in); err != nil || in.UserID == "" || in.SelectionToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "selection_token y user_id requeridos"})
	}
	out, err := h.uc.SelectProfile(in.SelectionToken, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token de selección inválido, vencido o candidato no permitido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		if errors.Is(err, domain.ErrUserDeactivated) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "DEACTIVATED", Message: "usuario desactivado, contacte al administrador"})
		}
		return storeUnavailable(c, err)
	}
	return c.JSON(out)
}

// Impersonate godoc
// @Summary      Previsualizar como colaborador
// @Description  Reemite el token con view_role=collaborator. Solo gestores; el rol real no cambia.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/impersonate [post]
func (h *AuthHandler) Impersonate(c *fiber.Ctx) error {
	token, err := h.uc.Impersonate(GetClaims(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un gestor puede impersonar"})
		}
		return storeUnavailable(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// Restore godoc
// @Summary      Restaurar la vista de gestor
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/restore [post]
func (h *AuthHandler) Restore(c *fiber.Ctx) error {
	token, err := h.uc.Restore(GetClaims(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un gestor puede restaurar la vista"})
		}
		return storeUnavailable(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// storeUnavailable es el mapeo por defecto para fallos de infraestructura:
// el backend de persistencia falló y la operación es reintentable por el usuario.
func storeUnavailable(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Code:    "STORE_UNAVAILABLE",
		Message: "fallo de persistencia, intente de nuevo: " + err.Error(),
	})
}
