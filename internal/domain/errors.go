package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("faltan datos requeridos")
	ErrCompanyEmailExists  = errors.New("ya existe una empresa con ese correo")
	ErrUserEmailExists     = errors.New("ya existe un usuario con ese correo")
	ErrDeviceAlreadyBound  = errors.New("este equipo ya está registrado a otra empresa")
	ErrInvalidCredentials  = errors.New("correo o contraseña incorrectos")
	ErrInvalidCode         = errors.New("código incorrecto o expirado")
	ErrNotifierUnavailable = errors.New("no se pudo enviar el código de verificación")
)
