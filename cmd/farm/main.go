package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"NodeFarm/internal/catalog"
	"NodeFarm/internal/farm"
	"NodeFarm/internal/render"
	"NodeFarm/pkg/kit"
)

func main() {
	service := "farm"
	logger, err := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	addr := net.JoinHostPort(getenv("HOST", "127.0.0.1"), getenv("PORT", "8000"))
	root := getenv("FARM_ROOT", ".")

	rateLimit, err := strconv.Atoi(getenv("RATE_LIMIT_PER_MIN", "0"))
	if err != nil || rateLimit < 0 {
		logger.Fatal("RATE_LIMIT_PER_MIN must be a non-negative integer", zap.String("value", os.Getenv("RATE_LIMIT_PER_MIN")))
	}

	products, err := catalog.Load(filepath.Join(root, "dev-data", "data.json"))
	if err != nil {
		logger.Fatal("load catalog failed", zap.Error(err))
	}

	templates, err := render.Load(filepath.Join(root, "templates"), filepath.Join(root, "html", "404.html"))
	if err != nil {
		logger.Fatal("load templates failed", zap.Error(err))
	}

	logger.Info("catalog loaded", zap.Int("products", products.Len()), zap.String("root", root))

	s := &farm.Server{
		Catalog:   products,
		Templates: templates,
		Public:    farm.NewAssetDir(filepath.Join(root, "public")),
		Images:    farm.NewAssetDir(filepath.Join(root, "images")),
		HTML:      farm.NewAssetDir(filepath.Join(root, "html")),
		Log:       logger,
	}

	h := farm.NewHandler(s, farm.HTTPDeps{
		Log:             logger,
		Service:         service,
		Registry:        prometheus.NewRegistry(),
		MetricsEnabled:  true,
		MetricsToken:    os.Getenv("METRICS_TOKEN"),
		RateLimitPerMin: rateLimit,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := kit.RunHTTPServer(ctx, addr, h, logger); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
