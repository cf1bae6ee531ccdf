package entity

import "time"

// VerificationCode es un código numérico de 6 dígitos (como texto, ceros a la
// izquierda incluidos) enviado a un correo para probar su propiedad. Pueden
// existir varios códigos vigentes por correo; todos se eliminan al validar
// cualquiera de ellos con éxito.
type VerificationCode struct {
	ID        string
	Email     string
	Code      string
	CreatedAt time.Time
}
