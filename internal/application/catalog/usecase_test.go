package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/stock"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

type memStore struct {
	items map[string]*entity.Item
	movs  []*entity.StockMovement
	users map[string]*entity.User
	creds map[string]*entity.Credential
}

func newMemStore() *memStore {
	return &memStore{
		items: map[string]*entity.Item{},
		users: map[string]*entity.User{},
		creds: map[string]*entity.Credential{},
	}
}

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	r.store.items[item.ID] = item
	return nil
}
func (r *memItemRepo) GetByID(id string) (*entity.Item, error) { return r.store.items[id], nil }
func (r *memItemRepo) GetByBarcode(code string) (*entity.Item, error) {
	for _, it := range r.store.items {
		if it.Barcode == code {
			return it, nil
		}
	}
	return nil, nil
}
func (r *memItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.store.items[id], nil }
func (r *memItemRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	it, ok := r.store.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}
func (r *memItemRepo) UpdateMetadata(item *entity.Item) error {
	existing, ok := r.store.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	qty := existing.Quantity
	item.Quantity = qty
	r.store.items[item.ID] = item
	return nil
}
func (r *memItemRepo) List(limit, offset int) ([]*entity.Item, error) { return r.ListAll() }
func (r *memItemRepo) ListAll() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.store.items))
	for _, it := range r.store.items {
		out = append(out, it)
	}
	return out, nil
}

type memMovRepo struct{ store *memStore }

func (r *memMovRepo) Create(m *entity.StockMovement) error {
	r.store.movs = append(r.store.movs, m)
	return nil
}
func (r *memMovRepo) List(since, until *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.store.movs, nil
}
func (r *memMovRepo) ListByItem(itemID string) ([]*entity.StockMovement, error) {
	return r.store.movs, nil
}
func (r *memMovRepo) ListWindow(from, to time.Time) ([]*entity.StockMovement, error) {
	return r.store.movs, nil
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	r.store.users[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.store.users[id], nil }
func (r *memUserRepo) ListByUsername(username string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.store.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.users[u.ID] = u
	return nil
}
func (r *memUserRepo) SetActive(id string, active bool) error {
	if u, ok := r.store.users[id]; ok {
		u.Active = active
		return nil
	}
	return domain.ErrNotFound
}
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out = append(out, u)
	}
	return out, nil
}

type memCredRepo struct{ store *memStore }

func (r *memCredRepo) Create(c *entity.Credential) error {
	if _, ok := r.store.creds[c.Username]; ok {
		return domain.ErrDuplicate
	}
	r.store.creds[c.Username] = c
	return nil
}
func (r *memCredRepo) GetByUsername(username string) (*entity.Credential, error) {
	return r.store.creds[username], nil
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	return fn(&memItemRepo{store: r.store}, &memMovRepo{store: r.store})
}

func newTestUseCase() (*UseCase, *memStore) {
	store := newMemStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	engine := stock.NewEngine(&memTxRunner{store: store}, log)
	uc := NewUseCase(&memItemRepo{store: store}, &memUserRepo{store: store}, &memCredRepo{store: store}, engine)
	return uc, store
}

func TestAddItem_InitialStockMovement(t *testing.T) {
	uc, store := newTestUseCase()

	item, err := uc.AddItem(context.Background(), dto.CreateItemRequest{
		Name:        "Papel A4",
		Barcode:     "7891234567890",
		UnitMeasure: entity.UnitSheet,
		Quantity:    decimal.NewFromInt(500),
		MinQuantity: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.NotNil(t, item)

	require.Len(t, store.movs, 1)
	assert.Equal(t, entity.MovementTypeIn, store.movs[0].Type)
	assert.Equal(t, "system", store.movs[0].UserID)
}

// El update de item es solo metadata: la cantidad persistida no cambia aunque el
// request no pueda siquiera expresarla.
func TestUpdateItem_QuantityUntouched(t *testing.T) {
	uc, store := newTestUseCase()
	store.items["i1"] = &entity.Item{
		ID:          "i1",
		Name:        "Papel A4",
		Barcode:     "7891234567890",
		UnitMeasure: entity.UnitSheet,
		Quantity:    decimal.NewFromInt(320),
		MinQuantity: decimal.NewFromInt(50),
	}

	updated, err := uc.UpdateItem("i1", dto.UpdateItemRequest{
		Name:        "Papel A4 premium",
		Barcode:     "7891234567890",
		UnitMeasure: entity.UnitSheet,
		MinQuantity: decimal.NewFromInt(80),
		Supplier:    "Papelera Norte",
	})
	require.NoError(t, err)
	assert.Equal(t, "Papel A4 premium", updated.Name)
	assert.True(t, updated.MinQuantity.Equal(decimal.NewFromInt(80)))
	assert.True(t, store.items["i1"].Quantity.Equal(decimal.NewFromInt(320)))
}

func TestUpdateItem_Invalid(t *testing.T) {
	uc, store := newTestUseCase()
	store.items["i1"] = &entity.Item{ID: "i1", Name: "Papel", Barcode: "123", UnitMeasure: entity.UnitSheet}

	_, err := uc.UpdateItem("i1", dto.UpdateItemRequest{Name: "", Barcode: "123", UnitMeasure: entity.UnitSheet})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateItem("i1", dto.UpdateItemRequest{Name: "Papel", Barcode: "123", UnitMeasure: "docena"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateItem("i1", dto.UpdateItemRequest{
		Name: "Papel", Barcode: "123", UnitMeasure: entity.UnitSheet,
		MinQuantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.UpdateItem("no-existe", dto.UpdateItemRequest{Name: "x", Barcode: "123", UnitMeasure: entity.UnitSheet})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetItemByBarcode(t *testing.T) {
	uc, store := newTestUseCase()
	store.items["i1"] = &entity.Item{ID: "i1", Name: "Papel", Barcode: "7891234567890", UnitMeasure: entity.UnitSheet}

	item, err := uc.GetItemByBarcode("7891234567890")
	require.NoError(t, err)
	assert.Equal(t, "i1", item.ID)

	_, err = uc.GetItemByBarcode("0000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetItemByBarcode("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddUser_NewCredential(t *testing.T) {
	uc, store := newTestUseCase()

	user, err := uc.AddUser(dto.CreateUserRequest{
		Name:     "Ana Gestora",
		Username: "ana",
		Password: "secreto1",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)
	assert.True(t, user.Active)

	cred := store.creds["ana"]
	require.NotNil(t, cred)
	// la contraseña se guarda como hash bcrypt, nunca en claro
	assert.NotEqual(t, "secreto1", cred.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("secreto1")))
}

// Un username existente reutiliza la credencial: el mismo login queda asociado a
// dos perfiles y la contraseña del request se ignora.
func TestAddUser_ReusesExistingCredential(t *testing.T) {
	uc, store := newTestUseCase()

	_, err := uc.AddUser(dto.CreateUserRequest{
		Name: "Luis López", Username: "lopez", Password: "secreto1", Role: entity.RoleManager,
	})
	require.NoError(t, err)
	originalHash := store.creds["lopez"].PasswordHash

	_, err = uc.AddUser(dto.CreateUserRequest{
		Name: "Laura López", Username: "lopez", Password: "otra-cosa", Role: entity.RoleCollaborator,
	})
	require.NoError(t, err)

	assert.Equal(t, originalHash, store.creds["lopez"].PasswordHash)
	profiles, _ := (&memUserRepo{store: store}).ListByUsername("lopez")
	assert.Len(t, profiles, 2)
}

func TestAddUser_Invalid(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.AddUser(dto.CreateUserRequest{Name: "", Username: "x", Password: "secreto1", Role: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddUser(dto.CreateUserRequest{Name: "Ana", Username: "ana", Password: "secreto1", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// contraseña corta solo importa cuando hay que crear credencial
	_, err = uc.AddUser(dto.CreateUserRequest{Name: "Ana", Username: "ana", Password: "123", Role: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El update de usuario cambia nombre y rol; el username persiste (es la clave
// de la credencial).
func TestUpdateUser(t *testing.T) {
	uc, store := newTestUseCase()
	store.users["u1"] = &entity.User{ID: "u1", Name: "Ana", Username: "ana", Role: entity.RoleCollaborator, Active: true}

	updated, err := uc.UpdateUser("u1", dto.UpdateUserRequest{Name: "Ana García", Role: entity.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", updated.Name)
	assert.Equal(t, entity.RoleManager, updated.Role)
	assert.Equal(t, "ana", store.users["u1"].Username)
	assert.Equal(t, entity.RoleManager, store.users["u1"].Role)
}

func TestUpdateUser_Invalid(t *testing.T) {
	uc, store := newTestUseCase()
	store.users["u1"] = &entity.User{ID: "u1", Name: "Ana", Username: "ana", Role: entity.RoleCollaborator, Active: true}

	_, err := uc.UpdateUser("u1", dto.UpdateUserRequest{Name: "", Role: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateUser("u1", dto.UpdateUserRequest{Name: "Ana", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateUser("no-existe", dto.UpdateUserRequest{Name: "Ana", Role: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// nada cambió
	assert.Equal(t, entity.RoleCollaborator, store.users["u1"].Role)
}

func TestSetUserActive(t *testing.T) {
	uc, store := newTestUseCase()
	store.users["u1"] = &entity.User{ID: "u1", Name: "Ana", Username: "ana", Role: entity.RoleManager, Active: true}

	require.NoError(t, uc.SetUserActive("u1", false))
	assert.False(t, store.users["u1"].Active)

	require.NoError(t, uc.SetUserActive("u1", true))
	assert.True(t, store.users["u1"].Active)

	assert.ErrorIs(t, uc.SetUserActive("no-existe", false), domain.ErrNotFound)
}
