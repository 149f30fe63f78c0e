package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nexusos/backend/internal/config"
	"github.com/nexusos/backend/internal/middleware"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/services"
	"github.com/nexusos/backend/pkg/logger"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	nexus *services.NexusService
}

var testSetupOnce sync.Once

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("test-secret", 24)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.JournalEntry{},
		&models.Transaction{},
		&models.Habit{},
		&models.FileNode{},
		&models.Settings{},
	)
	if err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}

	// No API key: the bridge answers with its fixed offline string and
	// never dials out, which keeps these tests hermetic.
	nexusService := services.NewNexusService(config.AIConfig{
		Model:     "test-model",
		MaxTokens: 512,
		Timeout:   time.Second,
	})

	authHandler := NewAuthHandler(db)
	tasksHandler := NewTasksHandler(db)
	journalHandler := NewJournalHandler(db)
	financeHandler := NewFinanceHandler(db)
	habitsHandler := NewHabitsHandler(db)
	explorerHandler := NewExplorerHandler(db)
	settingsHandler := NewSettingsHandler(db)
	profileHandler := NewProfileHandler(db)
	aiHandler := NewAIHandler(db, nexusService)
	debugHandler := NewDebugHandler(db, nexusService)

	authMiddleware := middleware.NewAuthMiddleware(db)

	app := fiber.New()
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS("http://localhost:3001"))
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

	return &testEnv{app: app, db: db, nexus: nexusService}
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string) (*models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating test user: %v", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed generating auth token: %v", err)
	}

	return user, token
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	return data
}

func dataArray(t *testing.T, body map[string]any) []any {
	t.Helper()

	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	return data
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func assertEnvelopeError(t *testing.T, body map[string]any, expected string) {
	t.Helper()
	if success, _ := body["success"].(bool); success {
		t.Fatalf("expected success=false, got %+v", body)
	}
	if got, _ := body["error"].(string); got != expected {
		t.Fatalf("expected error %q, got %q", expected, got)
	}
}
