package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/common/pagination"
	appconfig "article-cms/internal/config"
	pgRepo "article-cms/internal/infra/adapter/persistence/postgres"
	"article-cms/internal/infra/db"
	"article-cms/internal/observability/logging"
	"article-cms/internal/observability/tracing"
	"article-cms/internal/resilience/circuitbreaker"
	artUC "article-cms/internal/usecase/article"
	"article-cms/pkg/config"

	hhttp "article-cms/internal/handler/http"
	harticle "article-cms/internal/handler/http/article"
	hauth "article-cms/internal/handler/http/auth"
	"article-cms/internal/handler/http/requestid"
	authservice "article-cms/internal/service/auth"

	_ "article-cms/docs" // swagger docs
)

// @title           Article CMS API
// @version         1.0
// @description     記事コンテンツ管理システムの REST API
// @description     記事の一覧・作成・更新・削除機能を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateCredentials(logger)
	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// validateCredentials validates account credentials at startup. Admin
// credentials are mandatory; editor and viewer roles degrade gracefully
// when misconfigured.
func validateCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	hauth.ValidateRoleCredentials(logger)
}

// validateJWTSecret enforces minimum strength requirements on JWT_SECRET.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// authProvider builds the credential provider. When SECURITY_CONFIG points
// at a YAML file, password policy comes from there; otherwise the built-in
// defaults apply.
func authProvider(logger *slog.Logger) *hauth.EnvAuthProvider {
	minLength := hauth.MinPasswordLength()
	weakPasswords := hauth.WeakPasswords()

	if path := config.GetEnvString("SECURITY_CONFIG", ""); path != "" {
		secCfg, err := appconfig.LoadSecurityConfig(path)
		if err != nil {
			logger.Error("failed to load security configuration", slog.Any("error", err))
			os.Exit(1)
		}
		minLength = secCfg.GetMinPasswordLength()
		weakPasswords = secCfg.GetWeakPasswords()
		logger.Info("security configuration loaded",
			slog.String("path", path),
			slog.String("provider", secCfg.GetAuthProvider()),
			slog.Int("min_password_length", minLength))
	}

	return hauth.NewEnvAuthProvider(minLength, weakPasswords)
}

// setupServer wires repositories, the article service, routes, and the
// middleware chain into the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// Database access goes through a circuit breaker so a failing database
	// sheds load instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	artSvc := &artUC.Service{
		Repo:   pgRepo.NewArticleRepo(breaker),
		Policy: accesscontrol.NewRolePolicy(),
		Logger: logger,
	}

	authSvc := authservice.NewService(authProvider(logger))
	loginLimiter := hauth.NewLoginLimiter()

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	mux.Handle("POST   /auth/token", hauth.TokenHandler(authSvc, loginLimiter))
	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, artSvc, paginationCfg, logger)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Recovery → Logging →
// Timeout → Input Validation → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err := config.ValidateDurationRange(requestTimeout, time.Second, 5*time.Minute); err != nil {
		logger.Error("invalid REQUEST_TIMEOUT", slog.Any("error", err))
		os.Exit(1)
	}

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown on
// SIGINT/SIGTERM.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + config.GetEnvString("PORT", "8080")
	shutdownTimeout := config.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err := config.ValidatePositiveDuration(shutdownTimeout); err != nil {
		logger.Error("invalid SHUTDOWN_TIMEOUT", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
