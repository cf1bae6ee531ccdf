package mailer

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-empresas-api/internal/application/verification"
	"github.com/jhoicas/registro-empresas-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ verification.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía códigos de verificación por correo vía SMTP (gomail).
// El envío completo está acotado por cfg.Timeout; vencido el plazo se reporta
// como fallo de envío recuperable, no como caída del servicio.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPNotifier construye el notificador con remitente y credencial de la configuración.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password),
	}
}

// SendCode envía el código de 6 dígitos al correo destino.
func (n *SMTPNotifier) SendCode(ctx context.Context, to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Código de verificación")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Tu código de verificación es:</p><h2>%s</h2><p>Si no solicitaste este código, ignora este mensaje.</p>",
		code,
	))

	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	// gomail no acepta context; el envío corre aparte y se abandona al vencer
	// el plazo (la goroutine termina sola al cerrar o agotar la conexión SMTP).
	done := make(chan error, 1)
	go func() {
		done <- n.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("enviar correo a %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("enviar correo a %s: %w", to, ctx.Err())
	}
}
