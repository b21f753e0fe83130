package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"furnidata-manager/core/loader"
	"furnidata-manager/core/logger"
	"furnidata-manager/core/middleware/auth"
	"furnidata-manager/core/middleware/rayid"
	"furnidata-manager/feature/audit"
	"furnidata-manager/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "furnidata-manager/docs/swagger"
)

// @title Furnidata Manager API
// @version 1.0
// @description API for decoding Habbo furnidata and auditing emulator furniture.
// @host localhost:8080
// @BasePath /

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the furnidata server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newDeps(depsOptions{database: true})
		if err != nil {
			return err
		}
		defer rt.Close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		app, err := newServer(rt)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()), zap.Bool("auth", rt.cfg.Server.AuthEnabled()))
			errCh <- app.Listen(rt.cfg.Server.Addr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	},
}

// newServer builds the fiber app with middleware and features registered.
func newServer(rt *deps) (*fiber.App, error) {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(catalog.NewFeature(rt.catalog))
	mgr.Register(audit.NewFeature(rt.audit))

	// RayID must be first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	})

	// Public routes.
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(rt.metrics.Handler()))

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
