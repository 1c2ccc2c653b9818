package impl

import (
	"context"
	"log/slog"
	"sync"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"
	"menfes/internal/usecase"
)

type alertService struct {
	source   service.RealtimeSource
	identity usecase.IdentityUsecase
	toasts   usecase.ToastUsecase
	logger   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	lastUID string
}

// NewAlertService creates the per-identity notification inbox listener.
func NewAlertService(source service.RealtimeSource, identity usecase.IdentityUsecase, toasts usecase.ToastUsecase, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		source:   source,
		identity: identity,
		toasts:   toasts,
		logger:   logger,
	}
}

func (s *alertService) Start(ctx context.Context) {
	if s.source == nil {
		return
	}

	s.identity.OnChange(func(uid string) {
		s.resubscribe(ctx, uid)
	})
	s.resubscribe(ctx, s.identity.Current())
}

// resubscribe tears down the previous inbox feed and opens one for the new
// identity. A repeated identity is a no-op so sign-in completing with the
// same uid does not churn the subscription.
func (s *alertService) resubscribe(ctx context.Context, uid string) {
	s.mu.Lock()
	if uid == "" || uid == s.lastUID {
		s.mu.Unlock()

		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	subCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.lastUID = uid
	s.mu.Unlock()

	ch, err := s.source.AlertChanges(subCtx, uid)
	if err != nil {
		s.logger.Warn("subscribe notification inbox",
			slog.String("uid", uid),
			slog.Any("error", err))

		return
	}

	go s.consume(subCtx, ch)
}

func (s *alertService) consume(ctx context.Context, ch <-chan service.Change) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			if change.Kind != service.ChangeAdded {
				continue
			}
			alert := entity.AlertFromDoc(change.Doc.Data)
			s.toasts.Enqueue(entity.NotificationRequest{
				Kind:    alert.Kind,
				Message: alert.Message,
			})
			// The read receipt is best-effort; a failed write means the
			// alert toasts again next session, nothing worse.
			if err := s.source.MarkAlertRead(ctx, change.Doc.ID); err != nil {
				s.logger.Warn("mark alert read",
					slog.String("alert_id", change.Doc.ID),
					slog.Any("error", err))
			}
		}
	}
}
