package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/config"
	"fyyur/internal/database"
	"fyyur/internal/flash"
	"fyyur/internal/form"
	"fyyur/internal/handler"
	"fyyur/internal/middleware"
	"fyyur/internal/repository"
	"fyyur/internal/service"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	if err := run(); err != nil {
		logger.WithComponent("main").Fatal("Server exited with error", zap.Error(err))
	}
}

// run 回傳時所有 defer 已關閉資料庫與 redis 連線
func run() error {
	log := logger.WithComponent("main")

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var flashStore flash.Store
	switch cfg.Flash.Store {
	case config.FlashStoreRedis:
		var rdb *redis.Client
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("initialize redis: %w", err)
		}
		defer rdb.Close()
		flashStore = flash.NewRedisStore(rdb, cfg.Flash.TTL)
	default:
		flashStore = flash.NewMemoryStore(cfg.Flash.TTL)
	}
	log.Info("Flash store ready", zap.String("flash_store", cfg.Flash.Store))

	if err := form.Setup(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	// repositories
	transactor := repository.NewTransactor(pool)
	venueRepository := repository.NewVenueRepository(pool)
	artistRepository := repository.NewArtistRepository(pool)
	showRepository := repository.NewShowRepository(pool)

	// services
	venueService := service.NewVenueService(transactor, venueRepository, showRepository, time.Now)
	artistService := service.NewArtistService(transactor, artistRepository, showRepository, time.Now)
	showService := service.NewShowService(transactor, showRepository, venueRepository, artistRepository)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		handler.Recovery(),
		flash.Middleware(flashStore, cfg.Flash.CookieName),
	)
	router.SetFuncMap(handler.TemplateFuncs())
	router.LoadHTMLGlob(cfg.Server.TemplateGlob)
	router.NoRoute(handler.NotFound)

	handler.NewHomeHandler().RegisterRoutes(router)
	handler.NewVenueHandler(venueService).RegisterRoutes(router)
	handler.NewArtistHandler(artistService).RegisterRoutes(router)
	handler.NewShowHandler(showService, time.Now).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return serve(srv, quit, cfg.Server.ShutdownTimeout)
}

// serve 等待中斷訊號或監聽失敗，兩種情況都會優雅關閉 srv；
// 監聽失敗時回傳該錯誤。
func serve(srv *http.Server, quit <-chan os.Signal, timeout time.Duration) error {
	log := logger.WithComponent("main")

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var runErr error
	select {
	case <-quit:
		log.Info("Shutting down server...")
	case runErr = <-serveErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
	return runErr
}
