package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/config"
	"github.com/solhotel/backoffice/internal/database"
	"github.com/solhotel/backoffice/internal/handler"
	"github.com/solhotel/backoffice/internal/jobs"
	appmw "github.com/solhotel/backoffice/internal/middleware"
	"github.com/solhotel/backoffice/internal/notify"
	"github.com/solhotel/backoffice/internal/queue"
	"github.com/solhotel/backoffice/internal/repository"
	"github.com/solhotel/backoffice/internal/router"
)

func main() {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	categories := repository.NewCategoryRepo(db)
	rooms := repository.NewRoomRepo(db)
	services := repository.NewServiceRepo(db)
	reservations := repository.NewReservationRepo(db)
	contracts := repository.NewContractRepo(db)
	payments := repository.NewPaymentRepo(db)
	messages := repository.NewMessageRepo(db)
	settings := repository.NewSettingRepo(db)
	landing := repository.NewLandingRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)

	// The public browse group sits behind the Redis rate limiter and
	// response cache.  Both degrade to pass-throughs when Redis is
	// unreachable, so a cache outage never takes the API down.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	publicMW := []echo.MiddlewareFunc{
		appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		appmw.NewRedisCache(config.LoadCacheConfig(), rdb),
	}
	router.RegisterPublic(e, handler.NewPublicHandler(landing, categories, rooms, services), publicMW...)
	router.RegisterCustomer(e, handler.NewCustomerHandler(
		reservations, rooms, categories, contracts, services, payments, messages, users,
	), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(
		categories, rooms, services, reservations, contracts, payments, landing, settings,
	), cfg.JWTSecret)

	// Drain notification.created events into logs/notifications.log.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification-consumer: %v", err)
		}
	}()

	// Hourly background jobs: auto-checkout of overdue stays and
	// auto-completion of overdue service contracts.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := jobs.NewNotifier(settings, notify.NewMessageSink(messages), jobs.SystemClock())
	checkout := jobs.NewCheckoutEngine(reservations, contracts, users, notifier)
	completion := jobs.NewCompletionEngine(contracts, services, users, notifier)
	scheduler := jobs.NewScheduler(checkout, completion, jobs.SystemClock())
	go func() {
		if err := scheduler.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("scheduler: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
