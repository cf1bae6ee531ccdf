package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
	"github.com/jhoicas/registro-empresas-api/internal/domain/repository"
)

// Notifier entrega el código de verificación al correo destino.
// La implementación SMTP vive en infrastructure.
type Notifier interface {
	SendCode(ctx context.Context, to, code string) error
}

// UseCase emite y valida códigos de verificación de correo.
type UseCase struct {
	codes    repository.VerificationCodeRepository
	notifier Notifier
	codeTTL  time.Duration
}

// NewUseCase construye el caso de uso de verificación. codeTTL es la
// antigüedad máxima de un código para ser aceptado.
func NewUseCase(codes repository.VerificationCodeRepository, notifier Notifier, codeTTL time.Duration) *UseCase {
	return &UseCase{codes: codes, notifier: notifier, codeTTL: codeTTL}
}

// IssueCode genera un código de 6 dígitos, lo persiste y lo envía al correo.
// Los códigos anteriores del mismo correo siguen vigentes hasta ser consumidos
// o vencer. Si el envío falla el código persiste igualmente y el fallo se
// reporta al llamador envuelto en ErrNotifierUnavailable.
func (uc *UseCase) IssueCode(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generar código: %w", err)
	}
	vc := &entity.VerificationCode{
		ID:        uuid.New().String(),
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := uc.codes.Create(ctx, vc); err != nil {
		return fmt.Errorf("guardar código: %w", err)
	}
	if err := uc.notifier.SendCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifierUnavailable, err)
	}
	return nil
}

// ValidateCode busca la coincidencia exacta (correo, código). Si existe y no
// está vencido, elimina TODOS los códigos del correo y reporta éxito. Un
// código vencido o inexistente falla sin tocar lo almacenado.
func (uc *UseCase) ValidateCode(ctx context.Context, email, code string) error {
	vc, err := uc.codes.Find(ctx, email, code)
	if err != nil {
		return err
	}
	if vc == nil {
		return domain.ErrInvalidCode
	}
	if uc.codeTTL > 0 && time.Since(vc.CreatedAt) > uc.codeTTL {
		return domain.ErrInvalidCode
	}
	if err := uc.codes.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("consumir códigos: %w", err)
	}
	return nil
}

// generateCode devuelve un código uniforme en 000000–999999, siempre con 6
// dígitos de texto (ceros a la izquierda incluidos).
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
