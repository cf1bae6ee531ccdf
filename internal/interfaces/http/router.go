package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/registro-empresas-api/internal/application/auth"
	"github.com/jhoicas/registro-empresas-api/internal/application/registration"
	"github.com/jhoicas/registro-empresas-api/internal/application/verification"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrationUC *registration.UseCase
	VerificationUC *verification.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Las rutas y métodos son el contrato de
// wire del cliente de escritorio existente; no cambiarlos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	registrationHandler := NewRegistrationHandler(deps.RegistrationUC)
	api.Post("/registro", registrationHandler.Register)
	api.Post("/registro/verificar-previo", registrationHandler.Precheck)
	api.Post("/verificar-dispositivo", registrationHandler.CheckDevice)

	verificationHandler := NewVerificationHandler(deps.VerificationUC)
	api.Post("/verificar-correo", verificationHandler.IssueCode)
	api.Post("/validar-codigo", verificationHandler.ValidateCode)

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	api.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Profile)
}
