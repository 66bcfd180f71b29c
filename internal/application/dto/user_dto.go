package dto

// CreateUserRequest alta de perfil. Si el username ya tiene credencial, la
// contraseña se ignora y solo se agrega el perfil.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // manager, collaborator
}

// UpdateUserRequest actualización de nombre y rol de un perfil. El username no
// cambia: es la clave de la credencial.
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"` // manager, collaborator
}

// SetUserStatusRequest activar/desactivar un perfil.
type SetUserStatusRequest struct {
	Active bool `json:"active"`
}
