package repository

import (
	"context"

	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
)

// DeviceRepository define el puerto de persistencia para Device (DIP).
type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	// GetByHardwareID devuelve nil, nil si el hardware_id no está vinculado.
	GetByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error)
}
