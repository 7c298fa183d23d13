// Package main initializes and starts the Growth Mindset HTTP server,
// setting up configuration, logging, database connections, repositories,
// services and handlers.
package main

import (
	"cmp"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/GrowthMindset/internal/config"
	"github.com/atinyakov/GrowthMindset/internal/db"
	"github.com/atinyakov/GrowthMindset/internal/logger"
	"github.com/atinyakov/GrowthMindset/internal/repository"
	"github.com/atinyakov/GrowthMindset/internal/server/handler/http"
	"github.com/atinyakov/GrowthMindset/internal/service"
	"github.com/atinyakov/GrowthMindset/internal/session"
	"github.com/atinyakov/GrowthMindset/internal/summary"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, file and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Open the database selected by the DSN.
	conn, dialect, err := db.Open(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer conn.Close()
	zapLogger.Info("database ready", zap.Stringer("dialect", dialect))

	secret := options.TokenSecret
	if secret == "" {
		secret = randomSecret()
		zapLogger.Warn("TOKEN_SECRET not set, sessions will not survive a restart")
	}
	tokens, err := session.NewManager(secret)
	if err != nil {
		zapLogger.Fatal("cannot init session tokens", zap.Error(err))
	}

	// Initialize repositories for accounts and progress.
	accountRepo := repository.NewAccountRepository(conn, dialect)
	progressRepo := repository.NewProgressRepository(conn, dialect)

	// Initialize business-logic services.
	accountService := service.NewAccountService(accountRepo, bcrypt.DefaultCost)
	progressService := service.NewProgressService(accountRepo, progressRepo, time.Now)

	// Create HTTP handlers.
	homeHandler, err := http.NewHomeHandler()
	if err != nil {
		zapLogger.Fatal("cannot render home page", zap.Error(err))
	}

	router := http.NewRouter(http.Handlers{
		Home:     homeHandler,
		Auth:     &http.AuthHandler{AuthService: accountService, Tokens: tokens, Log: zapLogger},
		Progress: &http.ProgressHandler{ProgressService: progressService, Log: zapLogger},
		Summary:  &http.SummaryHandler{Generate: summary.Generate, Log: zapLogger},
		Sessions: tokens,
	}, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if options.TLSEnabled() {
		zapLogger.Info("starting HTTPS server", zap.String("addr", options.Address))
		err = server.ListenAndServeTLS(options.TLSCertFile, options.TLSKeyFile)
	} else {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
		err = server.ListenAndServe()
	}
	if err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func randomSecret() string {
	b := make([]byte, session.MinSecretLength)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
