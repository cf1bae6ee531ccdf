package auth

import (
	"context"
	"crypto/subtle"

	"github.com/jhoicas/registro-empresas-api/internal/application/dto"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
	"github.com/jhoicas/registro-empresas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación: login y perfil.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Login verifica correo/contraseña y devuelve el perfil con su empresa y un JWT.
// Correo desconocido y contraseña incorrecta producen exactamente el mismo
// error: el cliente no puede distinguir cuál de los dos falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.CorreoUsuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para que el tiempo de respuesta no delate si el correo existe.
		subtle.ConstantTimeCompare([]byte(in.Contrasena), []byte(in.Contrasena))
		return nil, domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(in.Contrasena)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	profile, err := uc.buildProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Inicio de sesión exitoso.",
		Token:   token,
		Usuario: *profile,
	}, nil
}

// Profile devuelve el perfil del usuario identificado por ID (ruta autenticada).
func (uc *UseCase) Profile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return uc.buildProfile(ctx, user)
}

func (uc *UseCase) buildProfile(ctx context.Context, user *entity.User) (*dto.ProfileResponse, error) {
	profile := &dto.ProfileResponse{
		ID:        user.ID,
		Nombre:    user.Name,
		Correo:    user.Email,
		Rol:       user.Role,
		EmpresaID: user.CompanyID,
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		profile.EmpresaNombre = company.Name
	}
	return profile, nil
}
