package dto

// IssueCodeRequest entrada para solicitar un código de verificación por correo.
type IssueCodeRequest struct {
	Correo string `json:"correo" validate:"required,email"`
}

// ValidateCodeRequest entrada para validar un código recibido por correo.
type ValidateCodeRequest struct {
	Correo string `json:"correo" validate:"required,email"`
	Codigo string `json:"codigo" validate:"required,len=6"`
}
