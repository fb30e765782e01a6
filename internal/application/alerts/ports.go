package alerts

import (
	"context"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// Notifier sumidero fire-and-forget para alertas recién creadas. Las
// implementaciones registran sus propios fallos: un error de entrega nunca
// revierte la creación de la alerta.
type Notifier interface {
	Notify(ctx context.Context, alert *entity.Alert, product *entity.Product)
}
