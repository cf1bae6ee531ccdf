package verification_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/registro-empresas-api/internal/application/verification"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
	"github.com/jhoicas/registro-empresas-api/internal/domain/entity"
)

// Repo de códigos en memoria: lista simple por correo.
type memCodeRepo struct {
	codes []entity.VerificationCode
}

func (r *memCodeRepo) Create(_ context.Context, code *entity.VerificationCode) error {
	r.codes = append(r.codes, *code)
	return nil
}

func (r *memCodeRepo) Find(_ context.Context, email, code string) (*entity.VerificationCode, error) {
	for i := len(r.codes) - 1; i >= 0; i-- {
		if r.codes[i].Email == email && r.codes[i].Code == code {
			cp := r.codes[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCodeRepo) DeleteByEmail(_ context.Context, email string) error {
	kept := r.codes[:0]
	for _, c := range r.codes {
		if c.Email != email {
			kept = append(kept, c)
		}
	}
	r.codes = kept
	return nil
}

func (r *memCodeRepo) countFor(email string) int {
	n := 0
	for _, c := range r.codes {
		if c.Email == email {
			n++
		}
	}
	return n
}

// Notifier falso: registra los envíos y puede fallar a voluntad.
type fakeNotifier struct {
	sent []string // códigos enviados, en orden
	to   []string
	err  error
}

func (n *fakeNotifier) SendCode(_ context.Context, to, code string) error {
	if n.err != nil {
		return n.err
	}
	n.to = append(n.to, to)
	n.sent = append(n.sent, code)
	return nil
}

const ttl = 15 * time.Minute

func TestIssueCode_PersisteYEnvia6Digitos(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{}
	uc := verification.NewUseCase(repo, notifier, ttl)

	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "a@b.com", notifier.to[0])
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), notifier.sent[0],
		"el código siempre son 6 dígitos de texto, ceros a la izquierda incluidos")
	assert.Equal(t, 1, repo.countFor("a@b.com"))
	assert.Equal(t, notifier.sent[0], repo.codes[0].Code, "se envía exactamente el código persistido")
}

func TestIssueCode_NoEliminaCodigosAnteriores(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{}
	uc := verification.NewUseCase(repo, notifier, ttl)

	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))
	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))

	assert.Equal(t, 2, repo.countFor("a@b.com"), "ambos códigos siguen vigentes hasta consumirse")
}

func TestIssueCode_FalloDeEnvio_ReportaPeroDejaElCodigo(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp: connection refused")}
	uc := verification.NewUseCase(repo, notifier, ttl)

	err := uc.IssueCode(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, domain.ErrNotifierUnavailable)
	assert.Equal(t, 1, repo.countFor("a@b.com"), "el código persiste aunque el envío falle")
}

func TestValidateCode_ConsumeTodosLosCodigosDelCorreo(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{}
	uc := verification.NewUseCase(repo, notifier, ttl)

	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))
	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))
	require.NoError(t, uc.IssueCode(context.Background(), "otro@c.com"))

	primero := notifier.sent[0]
	require.NoError(t, uc.ValidateCode(context.Background(), "a@b.com", primero))

	assert.Zero(t, repo.countFor("a@b.com"), "validar uno elimina TODOS los códigos del correo")
	assert.Equal(t, 1, repo.countFor("otro@c.com"), "los códigos de otros correos no se tocan")

	// El mismo código ya no vale: fue consumido.
	err := uc.ValidateCode(context.Background(), "a@b.com", primero)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestValidateCode_CodigoIncorrecto_NoBorraNada(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{}
	uc := verification.NewUseCase(repo, notifier, ttl)

	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))

	incorrecto := "000000"
	if notifier.sent[0] == incorrecto {
		incorrecto = "000001"
	}
	err := uc.ValidateCode(context.Background(), "a@b.com", incorrecto)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.Equal(t, 1, repo.countFor("a@b.com"), "un intento fallido no consume códigos")
}

func TestValidateCode_CodigoVencido_Falla(t *testing.T) {
	repo := &memCodeRepo{}
	uc := verification.NewUseCase(repo, &fakeNotifier{}, ttl)

	repo.codes = append(repo.codes, entity.VerificationCode{
		ID:        "c1",
		Email:     "a@b.com",
		Code:      "123456",
		CreatedAt: time.Now().Add(-ttl - time.Minute),
	})

	err := uc.ValidateCode(context.Background(), "a@b.com", "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.Equal(t, 1, repo.countFor("a@b.com"), "el código vencido no se borra en el intento fallido")
}

func TestValidateCode_CorreoEquivocado_Falla(t *testing.T) {
	repo := &memCodeRepo{}
	notifier := &fakeNotifier{}
	uc := verification.NewUseCase(repo, notifier, ttl)

	require.NoError(t, uc.IssueCode(context.Background(), "a@b.com"))

	err := uc.ValidateCode(context.Background(), "otro@c.com", notifier.sent[0])
	assert.ErrorIs(t, err, domain.ErrInvalidCode, "el código es válido solo para su correo exacto")
}
