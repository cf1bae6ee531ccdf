package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación del puerto DeviceRepository sobre PostgreSQL.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador de persistencia para dispositivos. Pasar pool o tx (Querier).
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

// Create persiste la vinculación del dispositivo. hardware_id duplicado ->
// ErrDeviceAlreadyBound, el mismo conflicto que reporta el guard previo.
func (r *DeviceRepo) Create(ctx context.Context, device *entity.Device) error {
	query := `
		INSERT INTO dispositivos (id, empresa_id, hardware_id, nombre_pc, fecha_registro)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		device.ID, device.CompanyID, device.HardwareID, device.MachineName, device.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDeviceAlreadyBound
		}
		return fmt.Errorf("insert dispositivo: %w", err)
	}
	return nil
}

// GetByHardwareID obtiene el dispositivo vinculado al hardware_id. Devuelve nil, nil si está libre.
func (r *DeviceRepo) GetByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error) {
	query := `
		SELECT id, empresa_id, hardware_id, nombre_pc, fecha_registro
		FROM dispositivos WHERE hardware_id = $1`
	var d entity.Device
	err := r.q.QueryRow(ctx, query, hardwareID).Scan(
		&d.ID, &d.CompanyID, &d.HardwareID, &d.MachineName, &d.RegisteredAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispositivo: %w", err)
	}
	return &d, nil
}
