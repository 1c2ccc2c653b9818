package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"menfes/internal/domain/repository"
	"menfes/internal/errors"
	"menfes/internal/usecase"
)

// GuestUID is the identity used when the local store cannot be read.
const GuestUID = "u_guest"

const uidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type identityService struct {
	store  repository.LocalStore
	logger *slog.Logger

	mu      sync.Mutex
	current string
	subs    []func(uid string)
}

// NewIdentityService creates the identity resolver backed by the local store.
func NewIdentityService(store repository.LocalStore, logger *slog.Logger) usecase.IdentityUsecase {
	return &identityService{
		store:  store,
		logger: logger,
	}
}

// Current resolves lazily on first use and caches for the session.
func (s *identityService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		s.current = s.resolve()
	}

	return s.current
}

func (s *identityService) SetAuthenticated(uid string) {
	s.mu.Lock()
	if uid == "" || uid == s.current {
		s.mu.Unlock()

		return
	}
	s.current = uid
	if err := s.store.Set(context.Background(), repository.KeyIdentity, uid); err != nil {
		s.logger.Warn("persist authenticated identity", slog.Any("error", err))
	}
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Subscribers run outside the lock; they may call back into Current.
	for _, fn := range subs {
		fn(uid)
	}
}

func (s *identityService) OnChange(fn func(uid string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

func (s *identityService) resolve() string {
	ctx := context.Background()

	uid, err := s.store.Get(ctx, repository.KeyIdentity)
	if err == nil && uid != "" {
		return uid
	}
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		s.logger.Warn("read stored identity", slog.Any("error", err))

		return GuestUID
	}

	uid = generateUID()
	if err := s.store.Set(ctx, repository.KeyIdentity, uid); err != nil {
		// The generated identity still serves this session; it just will
		// not survive a restart.
		s.logger.Warn("persist generated identity", slog.Any("error", err))
	}

	return uid
}

// generateUID builds "u_" + 8 random base36 runes + the current unix
// milliseconds in base36, matching the identity format the board's pages
// already store.
func generateUID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = uidAlphabet[rand.IntN(len(uidAlphabet))]
	}

	return "u_" + string(b) + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
