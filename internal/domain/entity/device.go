package entity

import "time"

// Device vincula un hardware_id (huella estable de una máquina) a una empresa.
// Un hardware_id pertenece a lo sumo a una Company durante toda la vida del
// registro; no existe ruta de liberación ni de actualización.
type Device struct {
	ID           string
	CompanyID    string
	HardwareID   string
	MachineName  string // etiqueta visible del equipo (nombre_pc)
	RegisteredAt time.Time
}
