// cmd/score-tool/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"match-engine/internal/cache"
	"match-engine/internal/common/config"
	"match-engine/internal/common/logger"
	"match-engine/internal/common/validation"
	"match-engine/internal/engine"
	"match-engine/internal/models"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default: search ./configs)")
		prefsPath  = flag.String("prefs", "", "path to user preferences JSON (required)")
		category   = flag.String("category", "", "listing category (required)")
		detailed   = flag.Bool("detailed", false, "generate category-aware improvement suggestions")
		noCache    = flag.Bool("no-cache", false, "bypass the result cache")
		metricsOn  = flag.Bool("metrics", false, "serve prometheus metrics during the run")
	)
	flag.Parse()

	listingPaths := flag.Args()
	if *prefsPath == "" || *category == "" || len(listingPaths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: score-tool -prefs prefs.json -category job [-detailed] [-no-cache] listing.json [listing.json ...]")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"runId": uuid.NewString(),
	})

	store, err := buildCache(cfg, log)
	if err != nil {
		zapLog.Fatal("cache init failed", zap.Error(err))
	}

	if *metricsOn || cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, log)
	}

	eng := engine.New(log, store, engine.Options{
		CacheTTL: config.GetDuration(cfg.Engine.CacheTTL),
	})

	ctx := context.Background()
	if interval := config.GetDuration(cfg.Engine.CleanupInterval); interval > 0 {
		go sweepCache(ctx, store, interval)
	}
	prefs, err := loadPreferences(*prefsPath, log)
	if err != nil {
		zapLog.Fatal("preferences load failed", zap.Error(err))
	}

	cat := models.Category(strings.ToLower(*category))
	results := make([]*models.Result, 0, len(listingPaths))
	for _, path := range listingPaths {
		listing, err := loadListing(cat, path, log)
		if err != nil {
			zapLog.Fatal("listing load failed", zap.Error(err), zap.String("path", path))
		}

		req := engine.Request{
			Preferences: prefs,
			Category:    cat,
			Listing:     listing,
			BypassCache: *noCache,
		}

		var result *models.Result
		if *detailed {
			result = eng.CalculateDetailedCompatibility(ctx, req)
		} else {
			result = eng.CalculateCompatibility(ctx, req)
		}
		results = append(results, result)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		zapLog.Fatal("result encode failed", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// buildCache selects the result cache backend from config.
func buildCache(cfg *config.Config, log logger.Logger) (cache.Store, error) {
	switch cfg.Engine.CacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return cache.NewRedisStore(client, log), nil
	default:
		return cache.NewMemoryStore(log), nil
	}
}

// sweepCache evicts expired entries on a timer. Expiry is lazy on read, so
// the sweep only bounds memory between reads.
func sweepCache(ctx context.Context, store cache.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Cleanup(ctx)
		}
	}
}

func serveMetrics(addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("serving metrics", map[string]interface{}{"address": addr})
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("metrics server stopped", map[string]interface{}{"error": err.Error()})
	}
}

func loadPreferences(path string, log logger.Logger) (*models.UserPreferences, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preferences %s: %w", path, err)
	}

	if issues, err := validation.ValidatePreferences(raw); err != nil {
		return nil, err
	} else if len(issues) > 0 {
		log.Warn("preferences document has schema issues", map[string]interface{}{
			"path":   path,
			"issues": issues,
		})
	}

	var prefs models.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences %s: %w", path, err)
	}
	return &prefs, nil
}

func loadListing(category models.Category, path string, log logger.Logger) (models.Listing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listing %s: %w", path, err)
	}

	if issues, err := validation.ValidateListing(category, raw); err != nil {
		return nil, err
	} else if len(issues) > 0 {
		log.Warn("listing document has schema issues", map[string]interface{}{
			"path":   path,
			"issues": issues,
		})
	}

	return models.UnmarshalListing(category, raw)
}
