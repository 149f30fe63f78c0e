package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nexusos/backend/internal/config"
	"github.com/nexusos/backend/internal/database"
	"github.com/nexusos/backend/internal/handlers"
	"github.com/nexusos/backend/internal/middleware"
	"github.com/nexusos/backend/internal/services"
	"github.com/nexusos/backend/pkg/logger"
	"github.com/nexusos/backend/pkg/utils"
)

func main() {
	logger.Init()

	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	nexusService := services.NewNexusService(cfg.AI)

	authHandler := handlers.NewAuthHandler(db)
	tasksHandler := handlers.NewTasksHandler(db)
	journalHandler := handlers.NewJournalHandler(db)
	financeHandler := handlers.NewFinanceHandler(db)
	habitsHandler := handlers.NewHabitsHandler(db)
	explorerHandler := handlers.NewExplorerHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	aiHandler := handlers.NewAIHandler(db, nexusService)
	debugHandler := handlers.NewDebugHandler(db, nexusService)

	authMiddleware := middleware.NewAuthMiddleware(db)

	app := fiber.New()
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS(cfg.Server.CORSOrigins))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "Nexus OS Online"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	taskRoutes := api.Group("/tasks", authMiddleware.RequireAuth)
	taskRoutes.Get("/", tasksHandler.List)
	taskRoutes.Post("/", tasksHandler.Create)
	taskRoutes.Patch("/:id", tasksHandler.Update)
	taskRoutes.Delete("/:id", tasksHandler.Delete)

	journalRoutes := api.Group("/journal", authMiddleware.RequireAuth)
	journalRoutes.Get("/", journalHandler.List)
	journalRoutes.Post("/", journalHandler.Create)
	journalRoutes.Delete("/:id", journalHandler.Delete)

	financeRoutes := api.Group("/finance", authMiddleware.RequireAuth)
	financeRoutes.Get("/", financeHandler.List)
	financeRoutes.Post("/", financeHandler.Create)
	financeRoutes.Delete("/:id", financeHandler.Delete)

	habitRoutes := api.Group("/habits", authMiddleware.RequireAuth)
	habitRoutes.Get("/", habitsHandler.List)
	habitRoutes.Post("/", habitsHandler.Create)
	habitRoutes.Patch("/:id/increment", habitsHandler.Increment)
	habitRoutes.Delete("/:id", habitsHandler.Delete)

	explorerRoutes := api.Group("/explorer", authMiddleware.RequireAuth)
	explorerRoutes.Get("/", explorerHandler.List)
	explorerRoutes.Post("/", explorerHandler.Create)
	explorerRoutes.Patch("/:id", explorerHandler.Update)
	explorerRoutes.Delete("/:id", explorerHandler.Delete)

	settingsRoutes := api.Group("/settings", authMiddleware.RequireAuth)
	settingsRoutes.Get("/", settingsHandler.Get)
	settingsRoutes.Patch("/", settingsHandler.Update)

	profileRoutes := api.Group("/profile", authMiddleware.RequireAuth)
	profileRoutes.Get("/", profileHandler.Get)
	profileRoutes.Patch("/", profileHandler.Update)

	aiRoutes := api.Group("/ai", authMiddleware.RequireAuth)
	aiRoutes.Post("/command", aiHandler.Command)
	aiRoutes.Get("/briefing", aiHandler.Briefing)

	api.Get("/debug/run_diagnostics", authMiddleware.RequireAuth, debugHandler.RunDiagnostics)

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":          cfg.Server.Port,
		"address":       listenAddr,
		"ai_configured": nexusService.Configured(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
