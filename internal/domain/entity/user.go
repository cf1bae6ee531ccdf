package entity

import "time"

// Rol creado por el flujo de registro. No se crean otros roles en este servicio.
const RoleAdministrator = "administrador"

// User representa un usuario del sistema (pertenece a una Company). Correo único
// global, espacio de nombres independiente del correo de empresa.
type User struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Password  string // texto plano: riesgo conocido del sistema original, conservado a propósito
	Role      string // administrador
	CreatedAt time.Time
	UpdatedAt time.Time
}
