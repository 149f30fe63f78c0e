package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/services"
)

// The test environment carries no API key, so the bridge reports the fixed
// offline line instead of reaching the network.
func TestAI_CommandOfflineFallback(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUser(t, env.db, "operator@nexus.local", "orbital-station-9")

	resp := performJSONRequest(t, env.app, http.MethodPost, "/api/ai/command", fiber.Map{
		"command": "What should I focus on today?",
	}, authHeaders(token))
	assertStatus(t, resp, fiber.StatusOK)
	data := dataObject(t, decodeJSONMap(t, resp))
	if data["response"] != services.OfflineMessage {
		t.Fatalf("expected offline fallback, got %v", data["response"])
	}
}

func TestAI_CommandRequiresText(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUser(t, env.db, "silent@nexus.local", "orbital-station-9")

	resp := performJSONRequest(t, env.app, http.MethodPost, "/api/ai/command", fiber.Map{
		"command": "   ",
	}, authHeaders(token))
	assertStatus(t, resp, fiber.StatusBadRequest)
	assertEnvelopeError(t, decodeJSONMap(t, resp), "command is required")
}

func TestAI_BriefingOfflineFallback(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUser(t, env.db, "briefed@nexus.local", "orbital-station-9")

	resp := performRequest(t, env.app, http.MethodGet, "/api/ai/briefing", nil, authHeaders(token))
	assertStatus(t, resp, fiber.StatusOK)
	data := dataObject(t, decodeJSONMap(t, resp))
	if data["message"] != services.OfflineMessage {
		t.Fatalf("expected offline fallback, got %v", data["message"])
	}
}

func TestAI_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	resp := performJSONRequest(t, env.app, http.MethodPost, "/api/ai/command", fiber.Map{
		"command": "hello",
	}, nil)
	assertStatus(t, resp, fiber.StatusUnauthorized)
	resp.Body.Close()
}
