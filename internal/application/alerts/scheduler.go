package alerts

import (
	"context"
	"time"

	"github.com/davidmtzc/inventra-api/pkg/logger"
)

// Scheduler dispara el barrido de alertas y la purga de resueltas de forma
// periódica en una goroutine de fondo. Firma las alertas con el actor de
// sistema configurado.
type Scheduler struct {
	sweep     *SweepUseCase
	lifecycle *LifecycleUseCase
	actorID   string
	interval  time.Duration
	retention time.Duration
	log       *logger.Logger
	cancel    context.CancelFunc
}

// NewScheduler construye el planificador.
func NewScheduler(
	sweep *SweepUseCase,
	lifecycle *LifecycleUseCase,
	actorID string,
	interval, retention time.Duration,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweep:     sweep,
		lifecycle: lifecycle,
		actorID:   actorID,
		interval:  interval,
		retention: retention,
		log:       log,
	}
}

// Start arranca la goroutine del planificador: un ciclo inmediato y luego
// uno por tick hasta que el contexto se cancele o se llame Stop.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go func() {
		s.log.Info().Dur("interval", s.interval).Msg("planificador de alertas iniciado")

		s.runCycle(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.log.Info().Msg("planificador de alertas detenido")
				return
			case <-ticker.C:
				s.runCycle(ctx)
			}
		}
	}()
}

// Stop detiene la goroutine del planificador.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	start := time.Now()

	if _, err := s.sweep.Run(ctx, s.actorID); err != nil {
		s.log.Error().Err(err).Msg("barrido periódico de alertas falló")
	}

	deleted, err := s.lifecycle.Purge(ctx, s.retention)
	if err != nil {
		s.log.Error().Err(err).Msg("purga de alertas resueltas falló")
	} else if deleted > 0 {
		s.log.Info().Int("deleted", deleted).Msg("alertas resueltas purgadas")
	}

	s.log.Debug().Dur("duration", time.Since(start)).Msg("ciclo de alertas completado")
}
