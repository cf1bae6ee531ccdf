package dto

// RegisterRequest entrada para el registro de empresa + usuario administrador + dispositivo.
// Nombres de campo en el formato de wire original del cliente de escritorio.
type RegisterRequest struct {
	NombreEmpresa   string `json:"nombre_empresa" validate:"required"`
	RFC             string `json:"rfc"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono" validate:"required"`
	Correo          string `json:"correo" validate:"required,email"`
	Plan            string `json:"plan"`
	HardwareID      string `json:"hardware_id" validate:"required"`
	NombrePC        string `json:"nombre_pc"`
	NombreUsuario   string `json:"nombre_usuario" validate:"required"`
	CorreoUsuario   string `json:"correo_usuario" validate:"required,email"`
	TelefonoUsuario string `json:"telefono_usuario" validate:"required"`
	Contrasena      string `json:"contrasena" validate:"required"`
}

// RegisterResponse salida del registro exitoso.
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmpresaID string `json:"empresa_id"`
}

// PrecheckRequest entrada de la verificación previa (sin mutación): mismos
// guards y mismo orden que el registro completo.
type PrecheckRequest struct {
	Correo        string `json:"correo" validate:"required,email"`
	CorreoUsuario string `json:"correo_usuario" validate:"required,email"`
	HardwareID    string `json:"hardware_id" validate:"required"`
}

// CheckDeviceRequest entrada de la consulta de vinculación de un equipo.
type CheckDeviceRequest struct {
	HardwareID string `json:"hardware_id" validate:"required"`
}

// CheckDeviceResponse indica si el hardware_id ya está vinculado y a qué empresa.
type CheckDeviceResponse struct {
	Success    bool   `json:"success"`
	Registrado bool   `json:"registrado"`
	Message    string `json:"message"`
	EmpresaID  string `json:"empresa_id,omitempty"`
	Empresa    string `json:"empresa,omitempty"`
}
