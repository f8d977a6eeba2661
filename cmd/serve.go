package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"civic-sync/core/config"
	"civic-sync/core/database"
	"civic-sync/core/loader"
	"civic-sync/core/logger"
	"civic-sync/core/middleware/auth"
	"civic-sync/core/middleware/rayid"
	"civic-sync/feature/civic"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/source"
	"civic-sync/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "civic-sync/docs/swagger"
)

// @title civic-sync API
// @version 1.0
// @description Read-only inspection of synced people, organizations and jurisdictions.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the inspection API",
	Long:  `Starts the HTTP server exposing the synced records read-only.`,
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

		// 3. Connect to Database (Optional)
		// Without it the record endpoints stay disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Record source and catalog (Optional, used by the layout check)
		catalog, store := openSource(cfg, logg)

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(civic.NewFeature(db, logg))
		mgr.Register(integrity.NewFeature(db, store, catalog, logg))

		// RayID must be first to trace everything
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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// openSource loads the metadata catalog and the record store. Failures are
// logged and leave both nil.
func openSource(cfg *config.Config, logg *zap.Logger) (*metadata.Catalog, source.Store) {
	catalog, err := metadata.Load(cfg.Sync.MetadataFile)
	if err != nil {
		logg.Warn("Optional metadata catalog failed to load", zap.Error(err))
		return nil, nil
	}

	store, err := recordStore(cfg)
	if err != nil {
		logg.Warn("Optional record source failed", zap.Error(err))
		return nil, nil
	}
	return catalog, store
}
