package entity

import "time"

// Estados de Company. Las cuentas nacen en pendiente; la transición a activo
// ocurre fuera de este servicio (no hay handler que la implemente).
const (
	CompanyStatusPending = "pendiente"
	CompanyStatusActive  = "activo"
)

// PlanPending plan asignado cuando el cliente no envía ninguno.
const PlanPending = "pendiente"

// Company representa una organización/tenant del sistema. Correo único global.
type Company struct {
	ID        string
	Name      string
	RFC       string // identificador tributario, opcional
	Address   string
	Phone     string
	Email     string
	Plan      string // etiqueta del plan de suscripción, tal cual la envía el cliente
	Status    string // pendiente, activo
	CreatedAt time.Time
	UpdatedAt time.Time
}
