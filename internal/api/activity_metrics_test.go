package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestRunningMetricsRequireRunningSession(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	cyclingID := createSession(t, app, token, "ciclismo", "2026-08-01T08:00:00Z")

	response := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", token, map[string]interface{}{
		"sessao":             cyclingID,
		"distancia_km":       5.0,
		"ritmo_medio_seg_km": 300,
	})
	expectStatus(t, response, http.StatusBadRequest, "running metrics on cycling session")

	body := decodeMap(t, response)
	if body["sessao"] != "A sessão associada deve ser de modalidade corrida." {
		t.Fatalf("expected modality mismatch keyed by sessao, got %v", body)
	}
}

func TestRunningMetricsRejectForeignSession(t *testing.T) {
	app, _ := newTestApp(t)
	anaToken, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	biaToken, _ := registerUser(t, app, "Bia", "bia@example.com", "abcdef")
	sessionID := createSession(t, app, anaToken, "corrida", "2026-08-01T08:00:00Z")

	response := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", biaToken, map[string]interface{}{
		"sessao":             sessionID,
		"distancia_km":       5.0,
		"ritmo_medio_seg_km": 300,
	})
	expectStatus(t, response, http.StatusBadRequest, "running metrics on foreign session")

	body := decodeMap(t, response)
	if body["sessao"] != "Você não pode registrar métricas para sessões de outro usuário." {
		t.Fatalf("expected foreign-session message keyed by sessao, got %v", body)
	}
}

func TestRunningMetricsAreOnePerSession(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	sessionID := createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")

	payload := map[string]interface{}{
		"sessao":             sessionID,
		"distancia_km":       10.0,
		"ritmo_medio_seg_km": 320,
		"fc_media":           152,
	}

	created := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", token, payload)
	expectStatus(t, created, http.StatusCreated, "create running metrics")
	body := decodeMap(t, created)
	if uint(body["sessao"].(float64)) != sessionID || body["distancia_km"].(float64) != 10.0 {
		t.Fatalf("unexpected metrics payload: %v", body)
	}

	duplicate := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", token, payload)
	expectStatus(t, duplicate, http.StatusBadRequest, "duplicate running metrics")
}

func TestRunningMetricsUpdateAndFetchBySession(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	sessionID := createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")

	created := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", token, map[string]interface{}{
		"sessao":             sessionID,
		"distancia_km":       10.0,
		"ritmo_medio_seg_km": 320,
	})
	expectStatus(t, created, http.StatusCreated, "create running metrics")

	patched := jsonRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/metricas-corrida/%d", sessionID), token, map[string]interface{}{
		"distancia_km": 12.5,
	})
	expectStatus(t, patched, http.StatusOK, "patch running metrics")
	body := decodeMap(t, patched)
	if body["distancia_km"].(float64) != 12.5 || int(body["ritmo_medio_seg_km"].(float64)) != 320 {
		t.Fatalf("expected partial update to keep pace, got %v", body)
	}

	fetched := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/metricas-corrida/%d", sessionID), token, nil)
	expectStatus(t, fetched, http.StatusOK, "get running metrics by session")
}

func TestCyclingMetricsRequireCyclingSession(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	runningID := createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")
	cyclingID := createSession(t, app, token, "ciclismo", "2026-08-02T08:00:00Z")

	rejected := jsonRequest(t, app, http.MethodPost, "/api/metricas-ciclismo/", token, map[string]interface{}{
		"sessao":               runningID,
		"distancia_km":         40.0,
		"velocidade_media_kmh": 28.5,
	})
	expectStatus(t, rejected, http.StatusBadRequest, "cycling metrics on running session")
	body := decodeMap(t, rejected)
	if body["sessao"] != "A sessão associada deve ser de modalidade ciclismo." {
		t.Fatalf("expected modality mismatch keyed by sessao, got %v", body)
	}

	created := jsonRequest(t, app, http.MethodPost, "/api/metricas-ciclismo/", token, map[string]interface{}{
		"sessao":               cyclingID,
		"distancia_km":         40.0,
		"velocidade_media_kmh": 28.5,
	})
	expectStatus(t, created, http.StatusCreated, "create cycling metrics")
}

func TestCyclingMetricsUnknownSessionIsFieldError(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPost, "/api/metricas-ciclismo/", token, map[string]interface{}{
		"sessao":               9999,
		"distancia_km":         40.0,
		"velocidade_media_kmh": 28.5,
	})
	expectStatus(t, response, http.StatusBadRequest, "cycling metrics on unknown session")

	body := decodeMap(t, response)
	if body["sessao"] != "Sessão inválida." {
		t.Fatalf("expected invalid-session message, got %v", body)
	}
}
