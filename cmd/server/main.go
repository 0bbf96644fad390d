package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/catalog"
	"github.com/okhotnikov/storefront/internal/config"
	"github.com/okhotnikov/storefront/internal/events"
	"github.com/okhotnikov/storefront/internal/history"
	"github.com/okhotnikov/storefront/internal/httpserver"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/payment"
	"github.com/okhotnikov/storefront/internal/search"
	"github.com/okhotnikov/storefront/internal/session"
	"github.com/okhotnikov/storefront/internal/storage"
	"github.com/okhotnikov/storefront/internal/store"
	"github.com/okhotnikov/storefront/pkg/authclient"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	kv, err := storage.Open(cfg.SQLitePath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	var idx search.Index = search.NewMemory()
	if cfg.ESURL != "" {
		es, err := search.NewElastic(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
		idx = es
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers)
	}

	fallback := store.FallbackEmpty
	if cfg.ProductFallback == "placeholder" {
		fallback = store.FallbackPlaceholder
	}

	application := &app.App{
		Store:    store.New(store.Options{ProductFallback: fallback}),
		Catalog:  catalog.NewClient(cfg.APIBaseURL, cfg.APITimeout),
		Auth:     authclient.NewClient(cfg.APIBaseURL, cfg.APITimeout),
		Gateway:  payment.NewGateway(cfg.PaymentDeclineRate, cfg.PaymentDelay),
		Sessions: &session.Store{KV: kv},
		History:  &history.Store{KV: kv},
		Search:   idx,
		Events:   pub,
		Pricing: models.PricingPolicy{
			FreeShippingThreshold: cfg.FreeShippingThreshold,
			ShippingFee:           cfg.ShippingFee,
			TaxRate:               cfg.TaxRate,
		},
		LastOrderTTL: cfg.LastOrderTTL,
	}

	initCtx, cancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), 10*time.Second)
	boot, err := application.Bootstrap(initCtx)
	cancel()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if boot.Session != nil {
		logger.Info("resumed session", "username", boot.Session.User.Username)
	}
	logger.Info("bootstrap complete", "restored_orders", boot.RestoredOrders)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(httpserver.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	httpserver.Register(e, &httpserver.Deps{App: application})

	port := strconv.Itoa(cfg.ServerPort)
	go func() {
		logger.Info("starting storefront server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	application.Close()
	if err := pub.Close(); err != nil {
		logger.Error("event publisher close", "error", err)
	}
	if err := kv.Close(); err != nil {
		logger.Error("kv close", "error", err)
	}

	logger.Info("server stopped")
}
