package auth

import (
	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// selectionExpMinutes vida del token de selección de perfil. Corta a propósito:
// solo tiene que sobrevivir al click en la pantalla de elección.
const selectionExpMinutes = 5

// UseCase casos de uso de sesión e identidad: login, desambiguación de perfiles
// e impersonación de rol (solo presentación).
//
// La sesión es el propio JWT firmado que viaja en cada request: se crea en el
// login, muere con el logout del cliente y nunca se comparte entre requests no
// relacionados (no hay estado de sesión en memoria del servidor).
type UseCase struct {
	userRepo repository.UserRepository
	credRepo repository.CredentialRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, credRepo repository.CredentialRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, credRepo: credRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra la credencial y resuelve los perfiles:
//   - un perfil       -> token + usuario (falla con ErrUserDeactivated si está inactivo)
//   - varios perfiles -> candidatos sin token (credencial ambigua; la UI deja elegir)
//   - ninguno         -> ErrInvalidCredentials
//
// Un perfil desactivado falla con una razón distinta a credenciales incorrectas.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	cred, err := uc.credRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	profiles, err := uc.userRepo.ListByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	switch len(profiles) {
	case 0:
		// Credencial huérfana sin perfil: para el caller es un login fallido.
		return nil, domain.ErrInvalidCredentials
	case 1:
		return uc.sessionFor(profiles[0])
	default:
		out := &dto.LoginResponse{}
		ids := make([]string, 0, len(profiles))
		for _, p := range profiles {
			out.Candidates = append(out.Candidates, *toUserResponse(p))
			ids = append(ids, p.ID)
		}
		token, err := jwt.GenerateSelection(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, selectionExpMinutes, ids)
		if err != nil {
			return nil, err
		}
		out.SelectionToken = token
		return out, nil
	}
}

// SelectProfile elige uno de los candidatos devueltos por Login y emite el token
// de ese perfil. El token de selección prueba que la contraseña ya fue verificada
// en ese login (no se vuelve a pedir) y limita la elección a sus candidatos: un
// user_id fuera del conjunto, o un token inválido o vencido, se rechaza.
func (uc *UseCase) SelectProfile(selectionToken, userID string) (*dto.LoginResponse, error) {
	claims, err := jwt.ParseSelection(uc.jwtCfg.Secret, selectionToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	allowed := false
	for _, id := range claims.CandidateIDs {
		if id == userID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return uc.sessionFor(user)
}

// Impersonate emite un token con view_role=collaborator para que un gestor
// previsualice la vista de colaborador. Solo cambia el rol de presentación: el
// claim role conserva el rol real y toda autorización se decide con él.
func (uc *UseCase) Impersonate(claims *jwt.Claims) (string, error) {
	if claims.Role != entity.RoleManager {
		return "", domain.ErrForbidden
	}
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
		claims.UserID, claims.Name, claims.Role, entity.RoleCollaborator)
}

// Restore revierte la impersonación: reemite el token sin view_role.
func (uc *UseCase) Restore(claims *jwt.Claims) (string, error) {
	if claims.Role != entity.RoleManager {
		return "", domain.ErrForbidden
	}
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
		claims.UserID, claims.Name, claims.Role, "")
}

func (uc *UseCase) sessionFor(user *entity.User) (*dto.LoginResponse, error) {
	if !user.Active {
		return nil, domain.ErrUserDeactivated
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
		user.ID, user.Name, user.Role, "")
	if err != nil {
		return nil, err
	}
	u := toUserResponse(user)
	return &dto.LoginResponse{Token: token, User: u}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
