package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/client"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/server"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	rdb := client.InitRedisClient(cfg.RedisURL)
	pushClient := client.NewFcmClient(&cfg.FCM)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	tokens := token.NewManager(cfg.JWT)
	notifier := service.NewNotifier(pushClient, userRepo)

	catalogService := service.NewCatalogService(categoryRepo, subjectRepo, productRepo, variantRepo)
	svcs := server.Services{
		Auth:     service.NewAuthService(userRepo, tokens),
		Profile:  service.NewProfileService(userRepo),
		Catalog:  catalogService,
		Cart:     service.NewCartService(db, cartRepo, variantRepo),
		Order:    service.NewOrderService(db, cartRepo, orderRepo, variantRepo, notifier),
		Like:     service.NewLikeService(likeRepo, catalogService),
		Feedback: service.NewFeedbackService(feedbackRepo, orderRepo),
		Admin:    service.NewAdminService(userRepo, orderRepo, supportRepo, settingRepo),
	}

	limiter := middleware.NewRateLimiter(rdb)
	srv := server.NewServer(svcs, tokens, limiter)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Println("HTTP server shutdown error:", err)
	}

	// drain pending order notifications before exit
	notifier.Close()
}
