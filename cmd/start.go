package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ipo-tracker/core/loader"
	"ipo-tracker/core/logger"
	"ipo-tracker/core/middleware/auth"
	"ipo-tracker/core/middleware/rayid"
	"ipo-tracker/feature/integrity"
	"ipo-tracker/feature/ipo"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ipo-tracker/docs/swagger"
)

// @title IPO Tracker API
// @version 1.0
// @description Sync and query IPO listings from upstream market feeds.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the IPO tracker server",
	Long:  `Migrates the schema, starts the HTTP server and, when ipo.sync.interval_minutes is set, the sync scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		if !a.cfg.Server.IsValidEnvironment() {
			logg.Fatal("Invalid environment", zap.String("environment", a.cfg.Server.Environment))
		}
		if err := a.store.AutoMigrate(ctx); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(ipo.NewFeature(a.service, logg, a.cfg.Server.SyncRatePerMinute))
		mgr.Register(integrity.NewFeature(a.client, a.cfg.Storage.Bucket, a.cfg.Storage.Region, a.db, a.service.Sources(), logg))

		// RayID first so every later log line carries it
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey:   a.cfg.Server.ApiKey,
			Required: a.cfg.Server.RequiresApiKey(),
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		var scheduler *ipo.Scheduler
		if minutes := a.cfg.IPO.Sync.IntervalMinutes; minutes > 0 {
			scheduler = ipo.NewScheduler(a.service, time.Duration(minutes)*time.Minute, logg)
			scheduler.Start(ctx)
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", a.cfg.Server.Port),
				zap.Strings("sources", a.service.Sources()))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		a.service.Shutdown()
		if scheduler != nil {
			scheduler.Stop()
		}
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
