package notify

import (
	"context"
	"log/slog"
	"sync"

	"menfes/config"
	"menfes/internal/domain/repository"
	"menfes/internal/domain/service"
)

type permissionSource struct {
	mu       sync.Mutex
	state    service.PermissionState
	decision service.PermissionState
	store    repository.LocalStore
	logger   *slog.Logger
}

// NewPermissionSource builds the notification permission surface. A prior
// granted/denied decision persisted in the local store is restored; otherwise
// the state starts undecided and Request resolves it with the decision the
// embedding environment was configured to report.
func NewPermissionSource(cfg *config.Config, store repository.LocalStore, logger *slog.Logger) service.PermissionSource {
	src := &permissionSource{
		state:    service.PermissionDefault,
		decision: service.PermissionDefault,
		store:    store,
		logger:   logger,
	}

	if cfg.Push != nil {
		switch service.PermissionState(cfg.Push.Permission) {
		case service.PermissionGranted, service.PermissionDenied:
			src.decision = service.PermissionState(cfg.Push.Permission)
		}
	}

	if stored, err := store.Get(context.Background(), repository.KeyPermission); err == nil {
		switch service.PermissionState(stored) {
		case service.PermissionGranted, service.PermissionDenied:
			src.state = service.PermissionState(stored)
		}
	}

	return src
}

func (s *permissionSource) State() service.PermissionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *permissionSource) Request(ctx context.Context) (service.PermissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Only an undecided prompt may fire; the platform never re-prompts once
	// the user has granted or denied.
	if s.state != service.PermissionDefault {
		return s.state, nil
	}

	if s.decision == service.PermissionDefault {
		// Dismissed prompt: state stays undecided and nothing persists.
		return service.PermissionDefault, nil
	}

	s.state = s.decision
	if err := s.store.Set(ctx, repository.KeyPermission, string(s.state)); err != nil {
		s.logger.Warn("persist notification permission", slog.Any("error", err))
	}

	return s.state, nil
}
