package entity

import "time"

// Roles válidos para User.
const (
	RoleManager      = "manager"      // gestor: administra catálogo, usuarios y dashboards
	RoleCollaborator = "collaborator" // colaborador: escanea y retira stock
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(r string) bool {
	return r == RoleManager || r == RoleCollaborator
}

// User representa un perfil de usuario. El username es la clave de login pero NO es
// único: una misma credencial puede mapear a varios perfiles (ej. gestor y
// colaborador con el mismo correo). Un perfil desactivado no puede autenticarse.
type User struct {
	ID        string
	Name      string
	Username  string
	Role      string // manager, collaborator
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential es la credencial de login, guardada aparte de los perfiles
// (clave: username). Una credencial puede corresponder a más de un perfil.
type Credential struct {
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	CreatedAt    time.Time
}
