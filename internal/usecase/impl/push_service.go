package impl

import (
	"context"
	"log/slog"
	"time"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/repository"
	"menfes/internal/domain/service"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

const (
	toggleOnLabel  = "Notif: On"
	toggleOffLabel = "Notif: Off"

	testPushBody = "Notifikasi uji coba"
)

type pushService struct {
	store         repository.LocalStore
	registrations repository.RegistrationRepository
	gateway       service.PushGateway
	permissions   service.PermissionSource
	sender        service.PushSender
	identity      usecase.IdentityUsecase
	doc           *view.Document
	logger        *slog.Logger
	userAgent     string
}

// NewPushService creates the push registration manager. The gateway, sender
// and registration repository may each be nil when push is not configured;
// every operation then degrades to a no-op on its own.
func NewPushService(
	store repository.LocalStore,
	registrations repository.RegistrationRepository,
	gateway service.PushGateway,
	permissions service.PermissionSource,
	sender service.PushSender,
	identity usecase.IdentityUsecase,
	doc *view.Document,
	logger *slog.Logger,
	userAgent string,
) usecase.PushUsecase {
	s := &pushService{
		store:         store,
		registrations: registrations,
		gateway:       gateway,
		permissions:   permissions,
		sender:        sender,
		identity:      identity,
		doc:           doc,
		logger:        logger,
		userAgent:     userAgent,
	}

	// Once sign-in supersedes the generated identity, the remote record
	// must be re-stamped with the authenticated uid.
	identity.OnChange(func(string) {
		s.refreshRegistration(context.Background())
	})

	return s
}

// refreshRegistration re-registers after an identity change: a held token is
// re-saved under the new uid; otherwise the full permission/token flow runs
// again.
func (s *pushService) refreshRegistration(ctx context.Context) {
	if token, err := s.store.Get(ctx, repository.KeyPushToken); err == nil && token != "" {
		if err := s.SaveToken(ctx, token); err != nil {
			s.logger.Warn("refresh push registration", slog.Any("error", err))
		}

		return
	}

	if err := s.EnsurePermissionAndToken(ctx); err != nil {
		s.logger.Warn("refresh push registration", slog.Any("error", err))
	}
}

func (s *pushService) EnsurePermissionAndToken(ctx context.Context) error {
	if s.gateway == nil {
		return nil
	}

	state := s.permissions.State()
	if state == service.PermissionDefault {
		var err error
		state, err = s.permissions.Request(ctx)
		if err != nil {
			s.logger.Warn("request notification permission", slog.Any("error", err))

			return nil
		}
	}
	if state != service.PermissionGranted {
		return nil
	}

	token, err := s.gateway.Token(ctx)
	if err != nil {
		s.logger.Warn("obtain push token", slog.Any("error", err))

		return nil
	}

	return s.SaveToken(ctx, token)
}

func (s *pushService) SaveToken(ctx context.Context, token string) error {
	if s.registrations == nil || token == "" {
		return nil
	}

	reg := &entity.PushRegistration{
		Token:     token,
		UID:       s.identity.Current(),
		UpdatedAt: time.Now(),
		UserAgent: s.userAgent,
	}
	if err := s.registrations.Save(ctx, reg); err != nil {
		// Without the remote record the token cannot be targeted, so the
		// local state stays off.
		s.logger.Warn("save push registration", slog.Any("error", err))

		return nil
	}

	if err := s.store.Set(ctx, repository.KeyPushToken, token); err != nil {
		s.logger.Warn("persist push token", slog.Any("error", err))
	}
	s.setToggle(toggleOnLabel)

	return nil
}

// DisableNotifications clears the local state no matter how the remote
// cleanup fares; the user asked for off and off is what they get.
func (s *pushService) DisableNotifications(ctx context.Context) error {
	token, err := s.store.Get(ctx, repository.KeyPushToken)
	if err == nil && token != "" {
		if s.gateway != nil {
			if err := s.gateway.DeleteToken(ctx, token); err != nil {
				s.logger.Warn("delete push token", slog.Any("error", err))
			}
		}
		if s.registrations != nil {
			if err := s.registrations.Delete(ctx, token); err != nil {
				s.logger.Warn("delete push registration", slog.Any("error", err))
			}
		}
	}

	if err := s.store.Delete(ctx, repository.KeyPushToken); err != nil {
		s.logger.Warn("clear stored push token", slog.Any("error", err))
	}
	s.setToggle(toggleOffLabel)

	return nil
}

func (s *pushService) Toggle(ctx context.Context) error {
	token, err := s.store.Get(ctx, repository.KeyPushToken)
	if err == nil && token != "" {
		return s.DisableNotifications(ctx)
	}

	return s.EnsurePermissionAndToken(ctx)
}

func (s *pushService) TestPush(ctx context.Context) error {
	if s.sender == nil {
		return nil
	}
	token, err := s.store.Get(ctx, repository.KeyPushToken)
	if err != nil || token == "" {
		return nil
	}

	if err := s.sender.SendToToken(ctx, token, entity.DefaultPushTitle, testPushBody, map[string]string{"url": "/"}); err != nil {
		s.logger.Warn("send test push", slog.Any("error", err))
	}

	return nil
}

func (s *pushService) setToggle(label string) {
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find("#notifToggle").SetText(label)
	})
}
