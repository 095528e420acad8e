package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ritmo-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, []byte("test-secret-key"), time.Hour, time.UTC)

	app := fiber.New()
	app.Use(handler.CollectMetrics)
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s marshal payload: %v", method, path, err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeMap(t *testing.T, response *http.Response) map[string]interface{} {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]interface{}{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func decodeList(t *testing.T, response *http.Response) []map[string]interface{} {
	t.Helper()
	defer response.Body.Close()

	decoded := []map[string]interface{}{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func expectStatus(t *testing.T, response *http.Response, expected int, context string) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("%s: expected status %d, got %d", context, expected, response.StatusCode)
	}
}

// registerUser creates an account through the public endpoint and returns
// the access token plus the new user's ID.
func registerUser(t *testing.T, app *fiber.App, name string, email string, password string) (string, uint) {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"nome":  name,
		"email": email,
		"senha": password,
	})
	expectStatus(t, response, http.StatusCreated, "register "+email)

	body := decodeMap(t, response)
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("register %s: missing access_token in %v", email, body)
	}
	user, _ := body["user"].(map[string]interface{})
	id, _ := user["id"].(float64)
	if id == 0 {
		t.Fatalf("register %s: missing user id in %v", email, body)
	}
	return token, uint(id)
}

func createSession(t *testing.T, app *fiber.App, token string, modality string, startedAt string) uint {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/sessoes-atividade/", token, map[string]interface{}{
		"modalidade": modality,
		"inicio_em":  startedAt,
	})
	expectStatus(t, response, http.StatusCreated, "create "+modality+" session")

	body := decodeMap(t, response)
	id, _ := body["id"].(float64)
	if id == 0 {
		t.Fatalf("create session: missing id in %v", body)
	}
	return uint(id)
}

func createExercise(t *testing.T, app *fiber.App, token string, name string) uint {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/exercicios/", token, map[string]string{"nome": name})
	expectStatus(t, response, http.StatusCreated, "create exercise "+name)

	body := decodeMap(t, response)
	id, _ := body["id"].(float64)
	if id == 0 {
		t.Fatalf("create exercise: missing id in %v", body)
	}
	return uint(id)
}
