package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"menfes/config"
	"menfes/internal/delivery"
	deliveryhttp "menfes/internal/delivery/http"
	"menfes/internal/delivery/http/router/handler"
	"menfes/internal/domain/repository"
	"menfes/internal/domain/service"
	"menfes/internal/infra/auth"
	"menfes/internal/infra/localstore"
	logs "menfes/internal/infra/log"
	"menfes/internal/infra/notify"
	"menfes/internal/infra/persistence/firestore"
	"menfes/internal/infra/push"
	"menfes/internal/infra/stream"
	"menfes/internal/usecase"
	"menfes/internal/usecase/impl"
	"menfes/internal/view"

	"go.uber.org/fx"
)

const clientUserAgent = "menfes-client/1.0"

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startClientParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Store         repository.LocalStore
	Authenticator service.AnonymousAuthenticator
	Identity      usecase.IdentityUsecase
	Enrich        usecase.EnrichUsecase
	Comments      usecase.CommentSyncUsecase
	Posts         usecase.PostSyncUsecase
	Alerts        usecase.AlertUsecase
	Fallback      usecase.FallbackUsecase
	Push          usecase.PushUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startClient,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newHTTPClient,
		newDocument,
		localstore.New,
		firestore.NewClient,
		firestore.NewRealtimeSource,
		push.NewGateway,
		push.NewFCMSender,
		auth.NewAnonymousAuthenticator,
		stream.NewClient,
		notify.NewPermissionSource,
	)
}

// newHTTPClient creates the shared client for board server requests.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// newDocument fetches the server-rendered page this client mirrors. The
// whole process is built around this document, so a fetch failure is fatal.
func newDocument(ctx context.Context, cfg *config.Config, client *http.Client) (*view.Document, error) {
	return view.Fetch(ctx, client, cfg.Board.BaseURL+cfg.Board.PagePath)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewRegistrationRepository,
			firestore.NewRoleRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewToastService,
			impl.NewPrefsService,
			impl.NewEnrichService,
			impl.NewCommentSyncService,
			impl.NewPostSyncService,
			impl.NewAlertService,
			impl.NewFallbackService,
			impl.NewEngagementService,
			newPushUsecase,
		),
	)
}

// newPushUsecase creates the push registration manager with dependency injection
func newPushUsecase(
	store repository.LocalStore,
	registrations repository.RegistrationRepository,
	gateway service.PushGateway,
	permissions service.PermissionSource,
	sender service.PushSender,
	identity usecase.IdentityUsecase,
	doc *view.Document,
	logger *slog.Logger,
) usecase.PushUsecase {
	return impl.NewPushService(store, registrations, gateway, permissions, sender, identity, doc, logger, clientUserAgent)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewActionHandler,
			handler.NewNotificationHandler,
			handler.NewPrefsHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startClient brings the mirrored page live: sign-in, admin badge data, the
// real-time reconcilers and the fallback stream, then the push toggle state.
func startClient(ctx context.Context, params startClientParams) {
	if params.Authenticator != nil {
		go func() {
			uid, err := params.Authenticator.SignIn(ctx)
			if err != nil {
				params.Logger.Warn("anonymous sign-in failed, keeping generated identity", slog.Any("error", err))

				return
			}
			params.Identity.SetAuthenticated(uid)
		}()
	}

	if err := params.Enrich.Refresh(ctx); err != nil {
		params.Logger.Warn("loading admin identities failed", slog.Any("error", err))
	}

	params.Alerts.Start(ctx)

	if err := params.Posts.Start(ctx); err != nil {
		params.Logger.Warn("post feed subscription failed", slog.Any("error", err))
	}

	if err := params.Comments.Open(ctx, params.Config.Board.PagePath); err != nil {
		params.Logger.Warn("comment feed subscription failed", slog.Any("error", err))
	}

	go func() {
		if err := params.Fallback.Run(ctx); err != nil {
			params.Logger.Warn("fallback stream stopped", slog.Any("error", err))
		}
	}()

	// Re-register a token kept from a previous session so the toggle
	// reflects it. Registration is idempotent per token.
	if token, err := params.Store.Get(ctx, repository.KeyPushToken); err == nil && token != "" {
		if err := params.Push.SaveToken(ctx, token); err != nil {
			params.Logger.Warn("restoring push registration failed", slog.Any("error", err))
		}
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
