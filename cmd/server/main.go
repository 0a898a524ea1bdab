// Package main starts the HyperPulse HTTP server, setting up configuration,
// logging, the store, repositories, services, handlers and optional TLS.
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/hyperpulsex/hyperpulse/internal/config"
	"github.com/hyperpulsex/hyperpulse/internal/db"
	"github.com/hyperpulsex/hyperpulse/internal/events"
	"github.com/hyperpulsex/hyperpulse/internal/logger"
	"github.com/hyperpulsex/hyperpulse/internal/repository"
	"github.com/hyperpulsex/hyperpulse/internal/server/handler/http"
	"github.com/hyperpulsex/hyperpulse/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// publisher is an event sink that owns a connection.
type publisher interface {
	service.EventPublisher
	io.Closer
}

// stores groups the repositories the services depend on.
type stores struct {
	exercises service.ExerciseRepository
	users     service.UserRepository
	workouts  service.WorkoutRepository
	scores    service.ScoreRepository
}

func main() {
	// Parse command-line and environment configuration.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The server starts even without a store; catalog reads then use the
	// fallback list and the other endpoints fail with 500.
	st := stores{
		exercises: repository.Unavailable{},
		users:     repository.Unavailable{},
		workouts:  repository.Unavailable{},
		scores:    repository.Unavailable{},
	}
	postgresDB, err := db.InitPostgres(options.DatabaseDSN, options.ConnectTimeout)
	if err != nil {
		zapLogger.Warn("database unavailable, serving fallback catalog", zap.Error(err))
	} else {
		defer postgresDB.Close()

		userRepo := repository.NewPostgresUserRepository(postgresDB)
		workoutRepo := repository.NewPostgresWorkoutRepository(postgresDB)
		st = stores{
			exercises: repository.NewPostgresExerciseRepository(postgresDB),
			users:     userRepo,
			workouts:  workoutRepo,
			scores:    userRepo,
		}

		db.StartWorkoutRepairer(ctx, workoutRepo, options.RepairInterval, zapLogger)
	}

	var pub publisher = events.Nop{}
	if len(options.KafkaBrokers) > 0 {
		pub = events.NewKafkaPublisher(options.KafkaBrokers, options.WorkoutTopic)
		zapLogger.Info("publishing workout events",
			zap.Strings("brokers", options.KafkaBrokers),
			zap.String("topic", options.WorkoutTopic),
		)
	}
	defer func() {
		if err := pub.Close(); err != nil {
			zapLogger.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	// Initialize business-logic services.
	catalogService := service.NewCatalogService(st.exercises, zapLogger)
	recommendationService := service.NewRecommendationService(catalogService, zapLogger)
	userService := service.NewUserService(st.users)
	workoutService := service.NewWorkoutService(st.workouts, st.scores, pub, zapLogger)

	// Build the router with middleware and routes.
	router := http.NewRouter(http.Handlers{
		Recommendations: &http.RecommendationHandler{Service: recommendationService},
		Exercises:       &http.ExerciseHandler{Catalog: catalogService},
		Users:           &http.UserHandler{UserService: userService},
		Workouts:        &http.WorkoutHandler{WorkoutService: workoutService},
	}, zapLogger)

	server := &nethttp.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", options.Port)
	if err != nil {
		zapLogger.Fatal("failed to listen", zap.String("addr", options.Port), zap.Error(err))
	}

	tlsEnabled := options.TLSCert != "" && options.TLSKey != ""
	zapLogger.Info("starting server", zap.String("addr", options.Port), zap.Bool("tls", tlsEnabled))
	if err := serve(ctx, server, ln, options.TLSCert, options.TLSKey, 10*time.Second); err != nil {
		zapLogger.Error("server stopped", zap.Error(err))
		return
	}
	zapLogger.Info("server stopped")
}
