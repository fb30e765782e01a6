package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/davidmtzc/inventra-api/internal/application/alerts"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/pkg/config"
	"github.com/davidmtzc/inventra-api/pkg/logger"
)

var _ alerts.Notifier = (*EmailNotifier)(nil)

// EmailNotifier envía por correo las alertas de prioridad crítica a los
// destinatarios configurados. Los fallos de envío se registran y se descartan:
// la alerta ya quedó persistida.
type EmailNotifier struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string
	log        *logger.Logger
}

// NewEmailNotifier construye el notificador de correo.
func NewEmailNotifier(cfg config.SMTPConfig, log *logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:       cfg.From,
		recipients: cfg.Recipients,
		log:        log,
	}
}

// Notify envía la alerta por correo si es crítica y hay destinatarios.
func (n *EmailNotifier) Notify(_ context.Context, alert *entity.Alert, product *entity.Product) {
	if alert.Priority != entity.PriorityCritical || len(n.recipients) == 0 {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.recipients...)
	m.SetHeader("Subject", fmt.Sprintf("[CRÍTICA] %s", alert.Title))
	m.SetBody("text/plain", fmt.Sprintf(
		"%s\n\nProducto: %s - %s\nCategoría de alerta: %s\nPrioridad: %s\nFecha: %s\n",
		alert.Message, product.Code, product.Name,
		alert.Category, alert.Priority, alert.CreatedAt.Format("2006-01-02 15:04"),
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		n.log.Error().Err(err).
			Str("alert_id", alert.ID).
			Str("product_id", product.ID).
			Msg("envío de correo de alerta falló")
		return
	}
	n.log.Debug().Str("alert_id", alert.ID).Msg("correo de alerta enviado")
}
