package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/salatchecker/internal/api"
	"github.com/limbo/salatchecker/internal/localstore"
	"github.com/limbo/salatchecker/internal/prayertimes"
	"github.com/limbo/salatchecker/internal/repository"
	"github.com/limbo/salatchecker/internal/service"
	"github.com/limbo/salatchecker/pkg/cleanup"
	"github.com/limbo/salatchecker/pkg/config"
	jwtservice "github.com/limbo/salatchecker/pkg/jwt_service"
	"github.com/limbo/salatchecker/pkg/logger"
	"go.uber.org/zap"
)

const startupTimeout = 30 * time.Second

func init() {
	service.InitValidator()
}

type storage struct {
	users   repository.UsersRepositoryI
	records repository.PrayerRecordsRepositoryI
	pinger  repository.Pinger
}

func main() {
	cfg, cfgErr := config.Load()
	logCfg := logger.Config{}
	if cfg != nil {
		logCfg = logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev}
	}
	lg, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	zap.ReplaceGlobals(lg)
	if cfgErr != nil {
		lg.Fatal("invalid configuration", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStorage(ctx, cfg, lg)
	times := prayertimes.New(prayertimes.Config{
		BaseURL: cfg.PrayerTimesBaseURL,
		Method:  cfg.PrayerTimesMethod,
	}, newTimesCache(ctx, cfg, lg), lg.Named("prayertimes"))

	serv := api.New(&api.ServicesList{
		UserService:   service.NewUserService(store.users),
		PrayerService: service.NewPrayerService(store.records),
		JwtService:    jwtservice.New(jwtSecret(cfg, lg)),
		PrayerTimes:   times,
		Storage:       store.pinger,
	},
		api.WithLogger(lg),
		api.WithCORS(cfg.AllowedOrigins, cfg.IsProduction()),
		api.WithInfo(cfg.Port, cfg.Environment, cfg.StorageDriver),
		api.WithStoreTimeout(cfg.DBQueryTimeout),
	)
	lg.Info("starting salatchecker api",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
	)
	err = serv.Run(ctx, cfg.Address())
	cleanup.CleanUp(lg)
	if err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
	lg.Info("goodbye")
}

// openStorage never fails: without a usable database the server still starts
// with an unavailable store so the health endpoint stays reachable.
func openStorage(ctx context.Context, cfg *config.Config, lg *zap.Logger) storage {
	unavailable := storage{
		users:   repository.Unavailable{},
		records: repository.Unavailable{},
		pinger:  repository.Unavailable{},
	}
	if cfg.StorageDriver == config.DriverSQLite {
		store, err := localstore.Open(cfg.SQLitePath)
		if err != nil {
			lg.Fatal("opening sqlite store", zap.String("path", cfg.SQLitePath), zap.Error(err))
		}
		lg.Info("using sqlite store", zap.String("path", cfg.SQLitePath))
		return storage{users: store.Users(), records: store.PrayerRecords(), pinger: store}
	}

	if missing := cfg.MissingDatabaseVars(); len(missing) > 0 {
		lg.Error("database is not configured, storage routes will fail",
			zap.String("missing", strings.Join(missing, ", ")))
		return unavailable
	}
	dbCfg := &repository.PGCfg{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Username: cfg.DBUser,
		Password: cfg.DBPassword,
		DB:       cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	pool, err := repository.NewPool(startCtx, dbCfg, cfg.DBMaxConns)
	if err != nil {
		lg.Error("connecting to database, storage routes will fail", zap.Error(err))
		return unavailable
	}
	if cfg.MigrateOnStart {
		if err = repository.Migrate(startCtx, dbCfg); err != nil {
			lg.Fatal("migrating database", zap.Error(err))
		}
		lg.Info("database migrations applied")
	}
	users := repository.NewUsersRepo(pool)
	return storage{
		users:   users,
		records: repository.NewPrayerRecordsRepo(pool),
		pinger:  users,
	}
}

func newTimesCache(ctx context.Context, cfg *config.Config, lg *zap.Logger) prayertimes.Cache {
	if cfg.RedisAddr == "" {
		return prayertimes.NewMemoryCache()
	}
	rc, err := prayertimes.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, lg.Named("redis"))
	if err != nil {
		lg.Warn("redis is unreachable, caching prayer times in process", zap.Error(err))
		return prayertimes.NewMemoryCache()
	}
	return rc
}

func jwtSecret(cfg *config.Config, lg *zap.Logger) string {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		lg.Fatal("generating jwt secret", zap.Error(err))
	}
	lg.Warn("JWT_SECRET is not set, using a random secret; tokens will not survive a restart")
	return hex.EncodeToString(buf)
}
