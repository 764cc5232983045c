package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"odr-lab/platform/internal/api"
	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/config"
	"odr-lab/platform/internal/db"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/metrics"
	"odr-lab/platform/internal/routes"
)

// @title ODR Lab API
// @version 1.0
// @description Backend for the ODR Lab community platform.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("ODR Lab starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	gormDB, err := db.OpenPostgresORM(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(gormDB); err != nil {
		logging.Error("Schema migration failed", "error", err.Error())
		log.Fatalf("❌ Schema migration failed: %v", err)
	}

	sqlxDB, err := db.OpenPostgresSqlx(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	var cache common.CacheInterface
	if cfg.RedisURL != "" {
		cache, err = common.NewRedisCacheService(cfg.RedisURL)
		if err != nil {
			logging.Error("Failed to connect to Redis", "error", err.Error())
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		logging.Info("Cache backend: Redis")
	} else {
		cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
		logging.Info("Cache backend: in-memory")
	}
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry()
	deps := api.InitDependencies(gormDB, sqlxDB, cfg, cache, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, sqlxDB, cfg.JWTSecret, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
