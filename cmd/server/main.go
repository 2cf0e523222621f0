// Package main is the entry point for the flight finder backend.
//
//	@title						Flight Finder API
//	@version					1.0.0
//	@description				Backend for the flight finder mobile app: airport autocomplete, flight search, accounts and recent searches.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-finder/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-finder/docs"

	flighthttp "github.com/flight-search/flight-finder/internal/adapter/http"
	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
	"github.com/flight-search/flight-finder/internal/adapter/provider/mockapi"
	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/config"
	"github.com/flight-search/flight-finder/internal/infrastructure/idgen"
	"github.com/flight-search/flight-finder/internal/infrastructure/kvstore"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
	"github.com/flight-search/flight-finder/internal/infrastructure/retry"
	"github.com/flight-search/flight-finder/internal/usecase"
)

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("data_source", cfg.DataSource.Kind).
		Str("store", cfg.Store.Driver).
		Msg("Configuration loaded")

	store, closeStore, err := newStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer closeStore()

	source, normalizer, err := newDataSource(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize data source")
	}

	handlers, err := newHandlers(cfg, log, store, source, normalizer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Pre(middleware.CORS(cfg.CORS.AllowedOrigins))
	middleware.Setup(e, log)
	flighthttp.RegisterRoutes(e, handlers)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg, log)
}

// setupLogger builds the application logger and makes it the zerolog default.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(cfg.LoggerConfig())
	zlog.Logger = log.Logger
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	return log
}

// newStore opens the key-value store holding sessions and recent searches.
func newStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	if cfg.Store.Driver != config.StoreRedis {
		return kvstore.NewMemory(nil), func() {}, nil
	}

	store := kvstore.NewRedis(kvstore.RedisConfig{
		Addr:      cfg.Store.RedisAddr,
		Password:  cfg.Store.RedisPassword,
		DB:        cfg.Store.RedisDB,
		KeyPrefix: cfg.Store.KeyPrefix,
	})
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// newDataSource selects the mock or live flight data source.
// The mock source pairs with a seeded normalizer that fills in a default
// aircraft; live results leave the aircraft unset when the provider omits it.
func newDataSource(cfg *config.Config, log *logger.Logger) (usecase.DataSource, *skyscrapper.Normalizer, error) {
	if cfg.UsesLiveData() {
		client := skyscrapper.NewClient(skyscrapper.ClientConfig{
			BaseURL: cfg.Provider.BaseURL,
			APIKey:  cfg.Provider.APIKey,
			Host:    cfg.Provider.Host,
			Timeout: cfg.Provider.Timeout,
			Retry:   retry.ProviderPolicy,
		}, skyscrapper.WithLogger(log))
		return client, skyscrapper.NewNormalizer(), nil
	}

	source, err := mockapi.New(mockapi.Config{
		Latency:  cfg.DataSource.Latency,
		Seed:     cfg.DataSource.Seed,
		Timezone: cfg.DataSource.Timezone,
	}, mockapi.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	normalizer := skyscrapper.NewNormalizer(
		skyscrapper.WithRandom(random.New(cfg.DataSource.Seed)),
		skyscrapper.WithDefaultAircraft(skyscrapper.DefaultAircraft),
	)
	return source, normalizer, nil
}

// newHandlers wires the use cases behind the HTTP handlers.
func newHandlers(cfg *config.Config, log *logger.Logger, store kvstore.Store, source usecase.DataSource, normalizer *skyscrapper.Normalizer) (flighthttp.Handlers, error) {
	ids, err := idgen.NewSnowflake(cfg.Auth.NodeID)
	if err != nil {
		return flighthttp.Handlers{}, err
	}
	users, err := usecase.NewSeededUserDirectory(cfg.Auth.BcryptCost)
	if err != nil {
		return flighthttp.Handlers{}, err
	}

	search := usecase.NewSearchOrchestrator(source, normalizer,
		usecase.SearchConfig{Timeout: cfg.DataSource.SearchTimeout}, log)
	auth := usecase.NewAuthUseCase(users, store, ids, usecase.AuthConfig{
		SessionTTL: cfg.Auth.SessionTTL,
		Latency:    cfg.Auth.Latency,
		BcryptCost: cfg.Auth.BcryptCost,
	}, log)
	recent := usecase.NewRecentSearches(store, usecase.RecentConfig{}, log)

	return flighthttp.Handlers{
		Flights:  flighthttp.NewFlightHandler(search, recent, source.Name(), log),
		Airports: flighthttp.NewAirportHandler(search, log),
		Auth:     flighthttp.NewAuthHandler(auth, log),
	}, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
