package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"csv-comparison/core/loader"
	"csv-comparison/core/logger"
	"csv-comparison/core/middleware/auth"
	"csv-comparison/core/middleware/rayid"
	"csv-comparison/feature/comparison"
	"csv-comparison/feature/definition"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "csv-comparison/docs/swagger"
)

// @title CSV Comparison API
// @version 1.0
// @description API for reconciling delimited files and browsing recorded comparisons.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, storage and the optional history store
		rt, err := newRuntime(true)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// 3. Definition catalog (Optional), reloaded when the file changes
		watchCtx, stopWatch := context.WithCancel(context.Background())
		defer stopWatch()

		var definitions *definition.Cache
		if file := rt.cfg.Compare.DefinitionFile; file != "" {
			definitions = definition.NewCache(file, rt.cfg.Compare.DefinitionTTL())
			if _, err := definitions.Catalog(); err != nil {
				logg.Warn("Definition catalog could not be loaded", zap.String("file", file), zap.Error(err))
			}
			go func() {
				if err := definitions.Watch(watchCtx, logg); err != nil {
					logg.Warn("Definition catalog is not watched, relying on TTL", zap.Error(err))
				}
			}()
		}

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(comparison.NewFeature(rt.opener(), rt.store, definitions, logg, rt.cfg.Server, rt.cfg.Compare.Timeout()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.Bool("history", rt.store != nil),
				zap.Bool("object_storage", rt.client != nil),
			)
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopWatch()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
