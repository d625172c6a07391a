package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"mptransport/config"
	"mptransport/db"
	"mptransport/db/mongo"
	"mptransport/db/postgres"
	"mptransport/db/redis"
	"mptransport/handlers"
	"mptransport/repository"
	"mptransport/repository/memory"
	"mptransport/routes"
	"mptransport/sequence"
	"mptransport/services"
	"mptransport/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := config.NewLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}
}

// run owns every opened connection; it returns instead of exiting so the
// deferred disconnects always run.
func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conns db.Group
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := conns.Disconnect(shutdownCtx); err != nil {
			log.WithError(err).Warn("disconnect failed")
		}
	}()

	var counter sequence.Counter
	if cfg.CounterBackend == config.CounterRedis {
		rd := redis.NewRedisDB(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := conns.Connect(ctx, rd); err != nil {
			return err
		}
		counter = sequence.NewRedisCounter(rd.Client, rd.Locker)
	}

	var store repository.Store
	switch cfg.DBType {
	case config.DBPostgres:
		version, err := db.RunMigrations(cfg.PostgresURL, cfg.MigrationsPath)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.WithField("version", version).Info("migrations applied")

		pg := postgres.NewPostgresDB(cfg.PostgresURL, postgres.PoolSettings{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		})
		if err := conns.Connect(ctx, pg); err != nil {
			return err
		}
		store = repository.NewPostgresStore(pg.Conn, counter)

	case config.DBMemory:
		log.Warn("using in-memory store, data is lost on restart")
		store = memory.NewStore()
	}

	var activity repository.ActivityRepository = repository.NopActivityRepo{}
	if cfg.MongoURL != "" {
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := conns.Connect(ctx, mg); err != nil {
			return err
		}
		activity = repository.NewMongoActivityRepo(mg.Client, cfg.MongoDatabase)
	}

	var pdfStorage services.PDFStorage = utils.LocalStore{Dir: cfg.PDFSavePath}
	r2 := utils.R2Config{
		Bucket:          cfg.R2Bucket,
		AccountID:       cfg.R2AccountID,
		PublicURL:       cfg.R2PublicURL,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
	}
	if r2.Enabled() {
		r2Store, err := utils.NewR2Store(ctx, r2)
		if err != nil {
			return fmt.Errorf("r2 setup: %w", err)
		}
		pdfStorage = r2Store
	}

	deps := services.Deps{Store: store, Activity: activity, Logger: log}
	svc := services.New(deps)
	pdf := services.NewPDFService(deps, utils.ChromePDF{Timeout: cfg.RequestTimeout}, pdfStorage)

	if cfg.DefaultAdminName != "" {
		if err := svc.Users.EnsureAdmin(ctx, cfg.DefaultAdminName, cfg.DefaultAdminPassword, cfg.DefaultAdminMobile); err != nil {
			return fmt.Errorf("default admin setup: %w", err)
		}
	}

	router := routes.NewRouter(routes.Options{
		RequestTimeout:     cfg.RequestTimeout,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Logger:             log,
	}, handlers.New(svc, pdf, log))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "db": cfg.DBType, "counter": cfg.CounterBackend}).Info("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("graceful shutdown failed")
		}
	}
	return nil
}
