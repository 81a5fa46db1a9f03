package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"data-verifier/core/config"
	"data-verifier/core/database"
	"data-verifier/core/loader"
	"data-verifier/core/logger"
	"data-verifier/core/middleware/auth"
	"data-verifier/core/middleware/rayid"
	"data-verifier/core/storage"

	"data-verifier/feature/history"
	"data-verifier/feature/settings"
	"data-verifier/feature/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "data-verifier/docs/swagger"
)

// profileCacheTTL bounds how long a compare request may run with a stale
// mapping profile after a settings update on another instance.
const profileCacheTTL = 30 * time.Second

// @title Data Verifier API
// @version 1.0
// @description API for reconciling tabular extracts.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the verification server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&history.Entry{}, &settings.MappingProfile{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		bucketCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := storage.EnsureBucket(bucketCtx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Fatal("Failed to prepare bucket", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Wire Features
		settingsRepo := settings.NewRepository(db)
		profiles := settings.NewCachedSource(settingsRepo, profileCacheTTL)
		historyRepo := history.NewRepository(db)
		compareService := verification.NewService(store, cfg.Storage.Bucket,
			historyRepo, profiles, cfg.Server.PreviewLimit(), logg)

		mgr := loader.NewManager()
		mgr.Register(settings.NewFeature(settingsRepo, profiles, logg))
		mgr.Register(history.NewFeature(historyRepo, store, cfg.Storage.Bucket, logg))
		mgr.Register(verification.NewFeature(compareService, logg))

		// Middleware Registration
		// RayID must come first so every log line can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
