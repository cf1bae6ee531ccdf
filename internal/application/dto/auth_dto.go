package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	CorreoUsuario string `json:"correo_usuario" validate:"required,email"`
	Contrasena    string `json:"contrasena" validate:"required"`
}

// ProfileResponse perfil mínimo del usuario autenticado, con su empresa.
type ProfileResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Correo        string `json:"correo"`
	Rol           string `json:"rol"`
	EmpresaID     string `json:"empresa_id"`
	EmpresaNombre string `json:"empresa_nombre"`
}

// LoginResponse salida del login exitoso: perfil + token de sesión.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Usuario ProfileResponse `json:"usuario"`
}
