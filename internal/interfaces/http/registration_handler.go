package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/registro-empresas-api/internal/application/dto"
	"github.com/jhoicas/registro-empresas-api/internal/application/registration"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
)

// RegistrationHandler maneja el registro de empresas y la verificación de dispositivos.
type RegistrationHandler struct {
	uc *registration.UseCase
}

// NewRegistrationHandler construye el handler inyectando el caso de uso.
func NewRegistrationHandler(uc *registration.UseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar empresa + usuario administrador + dispositivo
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de empresa, usuario y equipo"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registro [post]
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	empresaID, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
		case errors.Is(err, domain.ErrDeviceAlreadyBound):
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("DEVICE_BOUND", "Este equipo ya está registrado a otra empresa."))
		case errors.Is(err, domain.ErrCompanyEmailExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("COMPANY_EMAIL_EXISTS", "Ya existe una empresa con ese correo."))
		case errors.Is(err, domain.ErrUserEmailExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("USER_EMAIL_EXISTS", "Ya existe un usuario con ese correo."))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Success:   true,
		Message:   "Registro exitoso. Cuenta creada en modo pendiente.",
		EmpresaID: empresaID,
	})
}

// Precheck godoc
// @Summary      Verificación previa al registro (sin mutación)
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PrecheckRequest  true  "correo, correo_usuario, hardware_id"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registro/verificar-previo [post]
func (h *RegistrationHandler) Precheck(c *fiber.Ctx) error {
	var in dto.PrecheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if err := h.uc.Precheck(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
		case errors.Is(err, domain.ErrDeviceAlreadyBound):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("DEVICE_BOUND", "Este equipo ya está registrado a otra empresa."))
		case errors.Is(err, domain.ErrCompanyEmailExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("COMPANY_EMAIL_EXISTS", "Ya existe una empresa con ese correo."))
		case errors.Is(err, domain.ErrUserEmailExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("USER_EMAIL_EXISTS", "Ya existe un usuario con ese correo."))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
		}
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "Datos disponibles para registro."})
}

// CheckDevice godoc
// @Summary      Consultar si un equipo ya está vinculado
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckDeviceRequest  true  "hardware_id"
// @Success      200   {object}  dto.CheckDeviceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/verificar-dispositivo [post]
func (h *RegistrationHandler) CheckDevice(c *fiber.Ctx) error {
	var in dto.CheckDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.HardwareID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
	}
	binding, err := h.uc.CheckDevice(c.Context(), in.HardwareID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if binding == nil {
		return c.JSON(dto.CheckDeviceResponse{
			Success:    true,
			Registrado: false,
			Message:    "Equipo disponible para registro.",
		})
	}
	return c.JSON(dto.CheckDeviceResponse{
		Success:    true,
		Registrado: true,
		Message:    "Este equipo ya está registrado.",
		EmpresaID:  binding.CompanyID,
		Empresa:    binding.CompanyName,
	})
}
