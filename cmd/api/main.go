package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayfront/internal/cache"
	"stayfront/internal/config"
	"stayfront/internal/database"
	"stayfront/internal/middleware"
	"stayfront/internal/modules/availability"
	"stayfront/internal/modules/booking"
	"stayfront/internal/modules/payment"
	"stayfront/internal/modules/rates"
	"stayfront/internal/modules/wizard"
	"stayfront/internal/pkg/logger"
	"stayfront/internal/repository"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}

	rdb, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect failed", zap.Error(err))
	}
	defer rdb.Close()

	roomTypeRepo := repository.NewRoomTypeRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewPaymentSessionRepository(db)

	rateProvider := rates.NewHTTPProvider(cfg.PricingBaseURL, cfg.PricingTimeout)
	ratesService := rates.NewService(roomTypeRepo, rateProvider, zl)
	ratesHandler := rates.NewHandler(ratesService)

	availabilityService := availability.NewService(availabilityRepo, roomTypeRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	stripeProvider := payment.NewStripeProvider(cfg.StripeAPIKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, zl)
	paymentService := payment.NewService(sessionRepo, bookingRepo, stripeProvider, zl, cfg.PollInterval, cfg.PollMaxDuration)
	paymentHandler := payment.NewHandler(paymentService)

	bookingService := booking.NewService(bookingRepo, sessionRepo, stripeProvider, zl)
	bookingHandler := booking.NewHandler(bookingService)

	draftStore := wizard.NewRedisStore(rdb, cfg.DraftTTL)
	startPoller := func(ctx context.Context, sessionID string) wizard.PollHandle {
		return paymentService.StartPolling(ctx, sessionID)
	}
	wizardService := wizard.NewService(draftStore, roomTypeRepo, ratesService, bookingService, startPoller, zl)
	wizardHandler := wizard.NewHandler(wizardService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(zl))

	v1 := r.Group("/api/v1")
	{
		ratesHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		wizardHandler.RegisterRoutes(v1)
		paymentHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	zl.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
