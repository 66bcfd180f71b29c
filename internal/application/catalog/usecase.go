package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/stock"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// UseCase gestiona el catálogo: metadata de items y altas/estado de usuarios.
// La cantidad de un item NO se toca aquí: ese camino pertenece en exclusiva al
// motor de stock (la creación con stock inicial se delega en él).
type UseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	credRepo repository.CredentialRepository
	engine   *stock.Engine
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	credRepo repository.CredentialRepository,
	engine *stock.Engine,
) *UseCase {
	return &UseCase{itemRepo: itemRepo, userRepo: userRepo, credRepo: credRepo, engine: engine}
}

// AddItem crea un item nuevo. El stock inicial (y su movimiento de entrada) lo
// maneja el motor de stock en una sola transacción.
func (uc *UseCase) AddItem(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	return uc.engine.CreateItem(ctx, stock.CreateItemInput{
		Name:        in.Name,
		Barcode:     in.Barcode,
		Description: in.Description,
		UnitMeasure: in.UnitMeasure,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Supplier:    in.Supplier,
		Location:    in.Location,
	})
}

// UpdateItem actualiza solo la metadata del item. El payload no incluye quantity:
// el campo queda estructuralmente fuera del update.
func (uc *UseCase) UpdateItem(id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Barcode == "" || !entity.ValidUnit(in.UnitMeasure) {
		return nil, domain.ErrInvalidInput
	}
	if !in.MinQuantity.IsInteger() || in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	item.Name = in.Name
	item.Barcode = in.Barcode
	item.Description = in.Description
	item.UnitMeasure = in.UnitMeasure
	item.MinQuantity = in.MinQuantity
	item.Supplier = in.Supplier
	item.Location = in.Location
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.UpdateMetadata(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem obtiene un item por ID.
func (uc *UseCase) GetItem(id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// GetItemByBarcode busca un item por código de barras (contrato del escáner:
// recibe el string decodificado, devuelve el item o ErrNotFound).
func (uc *UseCase) GetItemByBarcode(code string) (*entity.Item, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// ListItems lista items con paginación.
func (uc *UseCase) ListItems(limit, offset int) ([]*entity.Item, error) {
	return uc.itemRepo.List(normalizeLimit(limit), offset)
}

// AddUser crea un perfil de usuario. Si el username ya tiene credencial se
// reutiliza y solo se agrega el perfil (así un mismo login puede tener perfil de
// gestor y de colaborador); si no, se crea la credencial con hash bcrypt.
func (uc *UseCase) AddUser(in dto.CreateUserRequest) (*entity.User, error) {
	if in.Name == "" || in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cred, err := uc.credRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		if len(in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.credRepo.Create(&entity.Credential{
			Username:     in.Username,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}); err != nil {
			return nil, err
		}
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Username:  in.Username,
		Role:      in.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser actualiza nombre y rol de un perfil. El username queda fijo: es la
// clave de la credencial y moverlo la reasignaría; el estado activo tiene su
// propio camino (SetUserActive).
func (uc *UseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user.Name = in.Name
	user.Role = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUserActive activa o desactiva un perfil. Un perfil desactivado no puede
// autenticarse; nunca se borra.
func (uc *UseCase) SetUserActive(id string, active bool) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.SetActive(id, active)
}

// ListUsers lista perfiles con paginación.
func (uc *UseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	return uc.userRepo.List(normalizeLimit(limit), offset)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 100
	}
	return limit
}
