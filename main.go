package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/handlers"
	"backoffice/internal/middleware"
	"backoffice/internal/orders"
	"backoffice/internal/report"
)

func main() {
	config.Load()
	cfg := config.AppEnv

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(cfg.DBName)

	log.Println("MongoDB connected to:", db.Name())

	for _, err := range database.EnsureIndexes(db) {
		log.Printf("⚠️ index warning: %v", err)
	}

	orderRepo := database.NewOrderRepository(db)
	sectionRepo := database.NewSectionRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := orders.NewRegistry(orderRepo, orderRepo, cfg.SessionIdleTTL)
	go registry.Run(ctx, time.Minute)

	exporter := report.NewExporter(report.Shaper{
		Currency: cfg.Currency,
		Location: cfg.Location(),
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Report-Rows", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", handlers.Healthz(db))
	r.POST("/admin/login", handlers.AdminLogin(database.NewAdminRepository(db), cfg.JWTSecret, cfg.AccessTokenTTL))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	handlers.RegisterAdminRoutes(admin, handlers.AdminRoutes{
		Registry:      registry,
		Orders:        orderRepo,
		OrderDeleter:  orderRepo,
		Exporter:      exporter,
		Sections:      sectionRepo,
		SectionWriter: sectionRepo,
		Products:      database.NewProductRepository(db),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
}
