package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El caso "credencial ambigua" (un login con varios perfiles) no es un error:
// se modela como resultado con candidatos en el caso de uso de auth.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidQuantity    = errors.New("cantidad inválida: debe ser un entero positivo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUserDeactivated    = errors.New("usuario desactivado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
