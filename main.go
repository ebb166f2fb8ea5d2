package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merrydance/fleetops/api"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
	"github.com/merrydance/fleetops/util"
	"github.com/merrydance/fleetops/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	// 连接池参数（根据生产环境调整）
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("database connection pool configured")

	runDBMigration(config.MigrationURL, config.DBSource)

	store := db.NewStore(connPool)

	if config.RedisAddress == "" {
		log.Fatal().Msg("REDIS_ADDRESS is not configured")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	}

	// 行程估算器：API 和 worker 共享同一个实例（缓存只有一套）
	estimator := newEstimator(config)

	waitGroup, ctx := errgroup.WithContext(ctx)

	taskDistributor := runTaskProcessor(ctx, waitGroup, redisOpt, store, estimator)
	runCacheSweeper(ctx, waitGroup, config, estimator)
	runGinServer(ctx, waitGroup, config, store, estimator, taskDistributor)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newEstimator creates the shared travel estimator.
// MAP_API_KEY 为空时不创建 provider client，所有估算走几何降级。
func newEstimator(config util.Config) *routing.Estimator {
	var provider routing.ProviderClient
	if config.MapAPIKey != "" {
		provider = routing.NewGoogleClient(config.MapAPIKey, config.RoutingTimeout)
		log.Info().Msg("map provider client created")
	} else {
		log.Warn().Msg("MAP_API_KEY not configured, travel estimates will use geometric fallback")
	}

	return routing.NewEstimator(provider, routing.Config{
		CacheTTL:         config.RoutingCacheTTL,
		Timeout:          config.RoutingTimeout,
		FallbackSpeedKmh: config.RoutingFallbackSpeedKmh,
	})
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	estimator *routing.Estimator,
) worker.TaskDistributor {
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, estimator)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})

	return taskDistributor
}

// runCacheSweeper starts the periodic routing cache sweep
func runCacheSweeper(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	estimator *routing.Estimator,
) {
	if !config.RoutingCacheSweepEnabled {
		log.Info().Msg("routing cache sweep disabled, relying on lazy expiry only")
		return
	}

	sweeper := routing.NewCacheSweeper(estimator)
	if err := sweeper.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start routing cache sweeper")
		return
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown routing cache sweeper")
		sweeper.Stop()
		return nil
	})
}

// runGinServer starts the Gin HTTP server
func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	estimator *routing.Estimator,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(config, store, estimator, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	// 创建 http.Server 用于优雅关闭
	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.GetRouter(),
		// Avoid slowloris and stuck connections under pressure.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		// 给予10秒时间完成正在处理的请求
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
