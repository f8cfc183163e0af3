package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/tmoeller732/five-star-flame-grill-api/external/abstractapi"
	"github.com/tmoeller732/five-star-flame-grill-api/external/resend"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/cart"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/config"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/db"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	middleware.SetSecret(cfg.JWTSecret)

	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	var kv storage.KV = storage.NewRedisKV(rdb)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, carts will not survive a restart", "addr", cfg.RedisAddr, "error", err)
		kv = storage.NewMemoryKV()
	}

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if cfg.UseReputation {
		emailValidator, err = abstractapi.NewReputationValidator(cfg.AbstractAPIKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var mailer services.Mailer
	if cfg.ResendAPIKey != "" {
		mailer, err = resend.NewResendMailer(cfg.ResendAPIKey, cfg.OrderFrom)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("no resend api key, order confirmations go to the log")
		mailer = services.LogMailer{Log: logger}
	}

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	carts := cart.NewManager(cart.NewAdapter(kv, logger))

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo, customerRepo, emailValidator)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(orderRepo, customerRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo, mailer, carts, cfg.TaxRate, logger)
	visitSvc := services.NewVisitService(kv)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/five-star")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerMenuRoutes(api, menuSvc)
	registerCartRoutes(api, carts, menuSvc)
	registerCheckoutRoutes(api, checkoutSvc, carts, customerRepo)
	registerOrderRoutes(api, orderSvc)
	registerProfileRoutes(api, customerRepo)
	registerAdminRoutes(api, orderSvc, customerRepo)
	registerVisitRoutes(api, visitSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
