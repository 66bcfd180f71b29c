package dto

// ErrorResponse respuesta de error estándar de la API.
// Code es estable (para que la UI decida reintentos/mensajes); Message es legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
