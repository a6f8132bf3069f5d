package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocket-reminders/app"
	"pocket-reminders/config"
	"pocket-reminders/database"
	"pocket-reminders/handlers"
	"pocket-reminders/middleware"
	"pocket-reminders/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// Open the local store
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run the schema batch behind the readiness gate. A schema failure is
	// not fatal: the server stays up, repository routes answer 503, and
	// /health carries the error.
	gate := database.NewGate()
	if err := gate.Run(db); err != nil {
		logger.Error("schema initialization failed", "error", err)
	} else {
		logger.Info("database initialized", "path", config.AppConfig.DBPath)
	}

	repo := database.NewRepository(db)

	// Background due-reminder notification delivery
	scheduler := notify.NewScheduler(repo, notify.NewLogNotifier(logger), config.AppConfig.SchedulerInterval, logger)
	if gate.Ready() {
		scheduler.Start()
	}

	application := app.New(repo, scheduler, gate, logger)

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	srv.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{"status": "ok", "schema": gate.State().String()}
		if err := gate.Err(); err != nil {
			body["status"] = "degraded"
			body["schema_error"] = err.Error()
		}
		return c.JSON(body)
	})

	// Every data route sits behind the readiness gate
	api := srv.Group("/api", middleware.SchemaReady(gate))

	api.Get("/lists", handlers.GetLists(application))
	api.Post("/lists", handlers.CreateList(application))
	api.Get("/lists/:id", handlers.GetList(application))
	api.Put("/lists/:id", handlers.UpdateList(application))
	api.Delete("/lists/:id", handlers.DeleteList(application))
	api.Get("/lists/:id/reminders", handlers.GetListReminders(application))
	api.Get("/lists/:id/reminders/count", handlers.GetListReminderCount(application))

	api.Get("/reminders", handlers.GetReminders(application))
	api.Post("/reminders", handlers.CreateReminder(application))
	api.Get("/reminders/:id", handlers.GetReminder(application))
	api.Put("/reminders/:id", handlers.UpdateReminder(application))
	api.Delete("/reminders/:id", handlers.DeleteReminder(application))
	api.Post("/reminders/:id/complete", handlers.CompleteReminder(application))
	api.Post("/reminders/:id/flag", handlers.FlagReminder(application))

	api.Get("/reminders/:id/subtasks", handlers.GetSubtasks(application))
	api.Post("/reminders/:id/subtasks", handlers.CreateSubtask(application))
	api.Put("/subtasks/:id", handlers.UpdateSubtask(application))
	api.Delete("/subtasks/:id", handlers.DeleteSubtask(application))

	api.Get("/views/counts", handlers.GetViewCounts(application))
	api.Get("/views/:name", handlers.GetView(application))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := srv.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	scheduler.Stop()
	logger.Info("notification scheduler stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
