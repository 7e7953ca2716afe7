package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/meridiancruises/compliance-backend/api"
	"github.com/meridiancruises/compliance-backend/infra"
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases"
	"github.com/meridiancruises/compliance-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "compliance-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		AppUrl:              utils.GetEnv("APP_URL", ""),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		TokenLifetimeMinute: utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*2),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 30)) * time.Second,
	}
	pgConfig := pgConfigFromEnv()
	serverConfig := struct {
		caseFilesBucketUrl           string
		patronFilesBucketUrl         string
		avatarsBucketUrl             string
		googleApplicationCredentials string
		jwtSigningKey                string
		jwtSigningKeyFile            string
		loggingFormat                string
		sentryDsn                    string
	}{
		caseFilesBucketUrl:           utils.GetRequiredEnv[string]("CASE_FILES_BUCKET_URL"),
		patronFilesBucketUrl:         utils.GetRequiredEnv[string]("PATRON_FILES_BUCKET_URL"),
		avatarsBucketUrl:             utils.GetRequiredEnv[string]("AVATARS_BUCKET_URL"),
		googleApplicationCredentials: utils.GetEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		jwtSigningKey:                utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile:            utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:                utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:                    utils.GetEnv("SENTRY_DSN", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.ReadParseOrGenerateSigningKey(ctx,
		serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(pgConfig.GetConnectionString(),
		int32(utils.GetEnv("PG_MAX_POOL_SIZE", 0)))
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(jwtSigningKey, pool,
		repositories.WithGoogleApplicationCredentials(serverConfig.googleApplicationCredentials),
	)

	uc := usecases.NewUsecases(repos,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithTokenLifetimeMinute(apiConfig.TokenLifetimeMinute),
		usecases.WithCaseFilesBucketUrl(serverConfig.caseFilesBucketUrl),
		usecases.WithPatronFilesBucketUrl(serverConfig.patronFilesBucketUrl),
		usecases.WithAvatarsBucketUrl(serverConfig.avatarsBucketUrl),
	)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The roster feed needs its own long-lived LISTEN connection, independent
	// of the request lifecycle.
	go repos.RosterListener.Run(notify)

	tokenUsecase := uc.NewTokenUsecase()
	auth := utils.NewAuthentication(&tokenUsecase)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, auth)

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
