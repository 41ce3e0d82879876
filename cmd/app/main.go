package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/zhanrui-dev/devbus/config"
	"github.com/zhanrui-dev/devbus/internal/bootstrap"
	"github.com/zhanrui-dev/devbus/internal/catalog"
	"github.com/zhanrui-dev/devbus/internal/repository"
	"github.com/zhanrui-dev/devbus/internal/service/account"
	"github.com/zhanrui-dev/devbus/internal/service/booking"
	"github.com/zhanrui-dev/devbus/internal/service/search"
	"github.com/zhanrui-dev/devbus/internal/service/selection"
	"github.com/zhanrui-dev/devbus/internal/snapshot"
	"github.com/zhanrui-dev/devbus/internal/store"
	"github.com/zhanrui-dev/devbus/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("jwt secret is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed, err := catalog.LoadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		log.Fatalf("load catalog seed: %v", err)
	}

	st := store.Open(seed, snapshot.NewFile(cfg.Snapshot.Path))

	tripRepo := repository.NewTripRepository(st)
	accountRepo := repository.NewAccountRepository(st)
	bookingRepo := repository.NewBookingRepository(st, cfg.Booking.RefPrefix)

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL())

	svcs := bootstrap.Services{
		Search:    search.NewSearchService(tripRepo),
		Selection: selection.NewSelectionService(tripRepo),
		Account:   account.NewAccountService(accountRepo, tokens, cfg.Auth.BcryptCost),
		Tokens:    tokens,
	}
	svcs.Booking = booking.NewBookingService(bookingRepo, tripRepo, svcs.Selection, cfg.Booking.PaymentDelay())

	log.Printf("devbus listening on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server: %v", err)
	}
}
