package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"

	"furniture-catalog/internal/auth"
	"furniture-catalog/internal/config"
	"furniture-catalog/internal/database"
	"furniture-catalog/internal/handlers"
	"furniture-catalog/internal/logger"
	"furniture-catalog/internal/middleware"
	"furniture-catalog/internal/repository"
	"furniture-catalog/internal/routes"
	"furniture-catalog/internal/upload"
	"furniture-catalog/internal/validation"
)

func main() {
	boot := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	cfg := config.LoadConfig(boot)
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("❌ invalid configuration")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ could not connect to MongoDB")
	}
	db := client.Database(cfg.MongoDB)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("❌ could not create indexes")
	}

	v := validation.New()
	products := repository.NewProductRepository(db.Collection(database.ProductsCollection), v)
	testimonials := repository.NewTestimonialRepository(db.Collection(database.TestimonialsCollection), v)
	users := repository.NewUserRepository(db.Collection(database.UsersCollection), v)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(router, routes.Handlers{
		Products:     handlers.NewProductHandler(products, log),
		Testimonials: handlers.NewTestimonialHandler(testimonials, log),
		Users:        handlers.NewUserHandler(users, log),
		Upload: handlers.NewUploadHandler(
			upload.NewClient(cfg.UploadURL, cfg.UploadPreset, cfg.UploadRatePerSecond),
			cfg.UploadMaxBytes, log,
		),
		Stats:  handlers.NewStatsHandler(products, testimonials, users, log),
		Health: handlers.NewHealthHandler(database.Pinger(client), log),
	}, middleware.AdminRequired(auth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthIssuer), users, log))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("🚀 server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ server error")
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-and-mongo": func(ctx context.Context) error {
			log.Info().Msg("🛑 shutting down HTTP server")
			serverErr := server.Shutdown(ctx)
			log.Info().Msg("🔌 disconnecting from MongoDB")
			return errors.Join(serverErr, client.Disconnect(ctx))
		},
	})

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("👋 exited")
	os.Exit(exitCode)
}
