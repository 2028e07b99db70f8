package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/config"
	"github.com/doctors-portal/api/internal/handlers"
	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/middleware"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/store"
	"github.com/doctors-portal/api/internal/token"
)

func main() {
	// A missing .env is fine in deployment: viper falls back to the real
	// environment variables.
	_ = godotenv.Load()
	config.Load()
	logger.Init()
	log := logger.Get()

	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(config.AppConfig.MongoDatabase)
	log.Info("Connected to MongoDB", zap.String("database", config.AppConfig.MongoDatabase))

	// --- Services ---
	documents := store.NewMongo(db, config.AppConfig.StoreTimeout)
	tokens := token.NewService(config.AppConfig.JWTSecret)
	resolver := services.NewBookingResolver(documents)
	payments := services.NewPaymentService(config.AppConfig.StripeKey)
	notifier := services.NewNotificationService(config.AppConfig.TextbeltKey)

	h := handlers.NewHandler(documents, resolver, payments, tokens, notifier)

	// --- Gin router ---
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authenticated := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireAdmin(documents)

	r.GET("/service", h.GetServices)
	r.GET("/available", h.GetAvailable)
	r.GET("/doctor", h.GetDoctors)
	r.GET("/admin/:email", h.CheckAdmin)

	r.POST("/booking", h.CreateBooking)
	r.GET("/booking", authenticated, middleware.RequireOwner("patientEmail"), h.GetBookings)
	r.GET("/booking/:id", authenticated, h.GetBooking)
	r.PATCH("/booking/:id", authenticated, h.ConfirmPayment)
	r.POST("/create-payment-intent", authenticated, h.CreatePaymentIntent)

	r.PUT("/user/:email", h.UpsertUser)
	r.GET("/user", authenticated, h.GetUsers)
	r.PUT("/user/:email/admin", authenticated, adminOnly, h.MakeAdmin)

	r.POST("/doctor", authenticated, adminOnly, h.AddDoctor)
	r.DELETE("/doctor/:email", authenticated, adminOnly, h.DeleteDoctor)

	// --- Serve ---
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.APIPort,
		Handler: r,
	}

	log.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server stopped gracefully")
}
