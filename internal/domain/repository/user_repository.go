package repository

import "github.com/jhoicas/Estoque-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para perfiles de usuario (DIP).
// No existe Delete: los usuarios se desactivan, nunca se borran.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// ListByUsername devuelve todos los perfiles asociados a un username
	// (puede haber más de uno: credencial ambigua).
	ListByUsername(username string) ([]*entity.User, error)
	// Update actualiza nombre y rol; username y active no se tocan por este camino.
	Update(user *entity.User) error
	SetActive(id string, active bool) error
	List(limit, offset int) ([]*entity.User, error)
}

// CredentialRepository define el puerto para credenciales de login,
// almacenadas aparte de los perfiles (clave: username).
type CredentialRepository interface {
	Create(cred *entity.Credential) error
	GetByUsername(username string) (*entity.Credential, error)
}
