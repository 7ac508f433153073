// @title QRakhsa Emergency QR API
// @version 1.0
// @description Emergency-contact / QR-badge backend: employee profiles, SOS alerts, admin dashboard.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/bootstrap"
	"github.com/charhateom/qrakhsa/config"
	_ "github.com/charhateom/qrakhsa/docs"
	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/internal/handlers"
	"github.com/charhateom/qrakhsa/internal/notify"
	"github.com/charhateom/qrakhsa/internal/repository"
	"github.com/charhateom/qrakhsa/internal/routes"
	"github.com/charhateom/qrakhsa/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; this is as early as failures get.
		panic(err)
	}

	log, err := config.NewLogger(cfg.LogFormat, "qrakhsa-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	client, err := config.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("mongo", zap.Error(err))
	}
	defer config.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal("ensure indexes", zap.Error(err))
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.AdminTokenTTL, cfg.EmployeeTokenTTL)

	var notifier notify.Notifier
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		notifier = notify.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		log.Warn("twilio not configured, sos notifications go to the log only")
		notifier = notify.LogNotifier{Logger: log}
	}

	employeeRepo := repository.NewEmployeeRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	sosService := services.NewSOSService(employeeRepo, alertRepo, notifier, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Employee: handlers.NewEmployeeHandler(employeeRepo, tokens, cfg.PublicBaseURL, log),
		Admin:    handlers.NewAdminHandler(adminRepo, employeeRepo, alertRepo, tokens, log),
		SOS:      handlers.NewSOSHandler(sosService, log),
		Tokens:   tokens,
	})

	// Shut the listener down on SIGINT/SIGTERM so in-flight requests finish.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("listen", zap.Error(err))
	}
}
