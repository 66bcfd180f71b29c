package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SelectProfileRequest elección de perfil tras un login ambiguo. El
// selection_token viene de la respuesta de ese login y acota la elección a sus
// candidatos.
type SelectProfileRequest struct {
	SelectionToken string `json:"selection_token"`
	UserID         string `json:"user_id"`
}

// LoginResponse resultado del login. Exactamente uno de los dos caminos:
//   - Token + User cuando el login resuelve a un único perfil.
//   - Candidates + SelectionToken cuando la credencial mapea a varios perfiles
//     (la UI deja elegir y llama a select-profile con el token; no es un error).
type LoginResponse struct {
	Token          string         `json:"token,omitempty"`
	User           *UserResponse  `json:"user,omitempty"`
	Candidates     []UserResponse `json:"candidates,omitempty"`
	SelectionToken string         `json:"selection_token,omitempty"`
}

// TokenResponse reemisión de token (impersonación / restauración).
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse representación pública de un perfil (sin credencial).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
