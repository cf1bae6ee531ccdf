package dto

// StatusResponse cuerpo mínimo de toda respuesta: bandera de éxito + mensaje legible.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP (success siempre false).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Err construye un ErrorResponse con success en false.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
