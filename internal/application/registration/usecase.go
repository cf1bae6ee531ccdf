package registration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/registro-empresas-api/internal/application/dto"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

// DeviceBinding describe a qué empresa está vinculado un hardware_id.
type DeviceBinding struct {
	CompanyID   string
	CompanyName string
}

// UseCase casos de uso de registro: consulta de dispositivo, verificación
// previa y alta transaccional de empresa + usuario administrador + dispositivo.
type UseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	deviceRepo  repository.DeviceRepository
	tx          TxRunner
}

// NewUseCase construye el caso de uso de registro.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{companyRepo: companyRepo, userRepo: userRepo, deviceRepo: deviceRepo, tx: tx}
}

// CheckDevice informa si el hardware_id ya está vinculado a una empresa.
// Devuelve nil si el equipo está libre.
func (uc *UseCase) CheckDevice(ctx context.Context, hardwareID string) (*DeviceBinding, error) {
	device, err := uc.deviceRepo.GetByHardwareID(ctx, hardwareID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, nil
	}
	binding := &DeviceBinding{CompanyID: device.CompanyID}
	company, err := uc.companyRepo.GetByID(ctx, device.CompanyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		binding.CompanyName = company.Name
	}
	return binding, nil
}

// Precheck aplica los mismos guards del registro, en el mismo orden, sin mutar
// nada: dispositivo libre, correo de empresa libre, correo de usuario libre.
func (uc *UseCase) Precheck(ctx context.Context, in dto.PrecheckRequest) error {
	if in.Correo == "" || in.CorreoUsuario == "" || in.HardwareID == "" {
		return domain.ErrInvalidInput
	}
	return uc.runGuards(ctx, in.HardwareID, in.Correo, in.CorreoUsuario)
}

// Register crea la empresa (estado pendiente), su usuario administrador y el
// dispositivo en una sola transacción; cualquier fallo revierte los tres
// inserts. Devuelve el ID de la empresa creada.
//
// Los guards previos y los inserts no son atómicos entre sí: dos registros
// concurrentes con el mismo correo o hardware_id pueden pasar ambos los
// guards. El árbitro final son los constraints únicos de la tabla, que el
// adaptador traduce al mismo error de conflicto que habría dado el guard.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (string, error) {
	if in.NombreEmpresa == "" || in.Telefono == "" || in.Correo == "" || in.HardwareID == "" ||
		in.NombreUsuario == "" || in.CorreoUsuario == "" || in.TelefonoUsuario == "" || in.Contrasena == "" {
		return "", domain.ErrInvalidInput
	}
	if err := uc.runGuards(ctx, in.HardwareID, in.Correo, in.CorreoUsuario); err != nil {
		return "", err
	}

	now := time.Now()
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanPending
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.NombreEmpresa,
		RFC:       in.RFC,
		Address:   in.Direccion,
		Phone:     in.Telefono,
		Email:     in.Correo,
		Plan:      plan,
		Status:    entity.CompanyStatusPending, // nunca controlado por el cliente
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      in.NombreUsuario,
		Email:     in.CorreoUsuario,
		Phone:     in.TelefonoUsuario,
		Password:  in.Contrasena,
		Role:      entity.RoleAdministrator,
		CreatedAt: now,
		UpdatedAt: now,
	}
	device := &entity.Device{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		HardwareID:   in.HardwareID,
		MachineName:  in.NombrePC,
		RegisteredAt: now,
	}

	err := uc.tx.Run(ctx, func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
		devices repository.DeviceRepository,
	) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return devices.Create(ctx, device)
	})
	if err != nil {
		return "", err
	}
	return company.ID, nil
}

// runGuards orden fijo: dispositivo, correo de empresa, correo de usuario.
// Precheck y Register comparten esta función para no divergir jamás.
func (uc *UseCase) runGuards(ctx context.Context, hardwareID, companyEmail, userEmail string) error {
	binding, err := uc.CheckDevice(ctx, hardwareID)
	if err != nil {
		return err
	}
	if binding != nil {
		return domain.ErrDeviceAlreadyBound
	}
	company, err := uc.companyRepo.GetByEmail(ctx, companyEmail)
	if err != nil {
		return err
	}
	if company != nil {
		return domain.ErrCompanyEmailExists
	}
	user, err := uc.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return err
	}
	if user != nil {
		return domain.ErrUserEmailExists
	}
	return nil
}
