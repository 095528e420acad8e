package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateSessionRejectsUnknownModality(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPost, "/api/sessoes-atividade/", token, map[string]interface{}{
		"modalidade": "natacao",
		"inicio_em":  "2026-08-01T08:00:00Z",
	})
	expectStatus(t, response, http.StatusBadRequest, "create session with unknown modality")

	body := decodeMap(t, response)
	if body["modalidade"] != "Modalidade inválida. Use corrida, ciclismo ou musculacao." {
		t.Fatalf("expected modality message, got %v", body)
	}
}

func TestCreateSessionRejectsNegativeDuration(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPost, "/api/sessoes-atividade/", token, map[string]interface{}{
		"modalidade":  "corrida",
		"inicio_em":   "2026-08-01T08:00:00Z",
		"duracao_seg": -10,
	})
	expectStatus(t, response, http.StatusBadRequest, "create session with negative duration")

	body := decodeMap(t, response)
	if _, present := body["duracao_seg"]; !present {
		t.Fatalf("expected error keyed by duracao_seg, got %v", body)
	}
}

func TestListSessionsFiltersByModalityAndPeriod(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")
	createSession(t, app, token, "corrida", "2026-08-10T08:00:00Z")
	createSession(t, app, token, "ciclismo", "2026-08-05T08:00:00Z")

	all := jsonRequest(t, app, http.MethodGet, "/api/sessoes-atividade/", token, nil)
	expectStatus(t, all, http.StatusOK, "list sessions")
	if got := len(decodeList(t, all)); got != 3 {
		t.Fatalf("expected 3 sessions, got %d", got)
	}

	running := jsonRequest(t, app, http.MethodGet, "/api/sessoes-atividade/?modalidade=corrida", token, nil)
	expectStatus(t, running, http.StatusOK, "list running sessions")
	if got := len(decodeList(t, running)); got != 2 {
		t.Fatalf("expected 2 running sessions, got %d", got)
	}

	window := jsonRequest(t, app, http.MethodGet,
		"/api/sessoes-atividade/?inicio_em_inicio=2026-08-04&inicio_em_fim=2026-08-06", token, nil)
	expectStatus(t, window, http.StatusOK, "list sessions in window")
	filtered := decodeList(t, window)
	if len(filtered) != 1 || filtered[0]["modalidade"] != "ciclismo" {
		t.Fatalf("expected only the cycling session in the window, got %v", filtered)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	app, _ := newTestApp(t)
	anaToken, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	biaToken, _ := registerUser(t, app, "Bia", "bia@example.com", "abcdef")

	sessionID := createSession(t, app, anaToken, "corrida", "2026-08-01T08:00:00Z")

	list := jsonRequest(t, app, http.MethodGet, "/api/sessoes-atividade/", biaToken, nil)
	expectStatus(t, list, http.StatusOK, "list sessions as another user")
	if got := len(decodeList(t, list)); got != 0 {
		t.Fatalf("expected empty list for the other user, got %d items", got)
	}

	foreign := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/sessoes-atividade/%d", sessionID), biaToken, nil)
	expectStatus(t, foreign, http.StatusNotFound, "fetch foreign session")
}

func TestUpdateSessionCannotMoveOwnership(t *testing.T) {
	app, _ := newTestApp(t)
	token, userID := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	registerUser(t, app, "Bia", "bia@example.com", "abcdef")
	sessionID := createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")

	response := jsonRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/sessoes-atividade/%d", sessionID), token, map[string]interface{}{
		"usuario":  999,
		"calorias": 320,
	})
	expectStatus(t, response, http.StatusOK, "patch session")

	body := decodeMap(t, response)
	if uint(body["usuario"].(float64)) != userID {
		t.Fatalf("owner must be immutable, got %v", body["usuario"])
	}
	if int(body["calorias"].(float64)) != 320 {
		t.Fatalf("expected calories to update, got %v", body["calorias"])
	}
}

func TestDeleteSessionGuardedByDependents(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	sessionID := createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")

	metrics := jsonRequest(t, app, http.MethodPost, "/api/metricas-corrida/", token, map[string]interface{}{
		"sessao":             sessionID,
		"distancia_km":       5.2,
		"ritmo_medio_seg_km": 330,
	})
	expectStatus(t, metrics, http.StatusCreated, "attach running metrics")

	blocked := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/sessoes-atividade/%d", sessionID), token, nil)
	expectStatus(t, blocked, http.StatusBadRequest, "delete session with metrics")

	removeMetrics := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/metricas-corrida/%d", sessionID), token, nil)
	expectStatus(t, removeMetrics, http.StatusNoContent, "delete running metrics")

	deleted := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/sessoes-atividade/%d", sessionID), token, nil)
	expectStatus(t, deleted, http.StatusOK, "delete clean session")
	body := decodeMap(t, deleted)
	if body["detail"] != "Sessão excluída com sucesso." {
		t.Fatalf("expected deletion confirmation, got %v", body)
	}

	gone := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/sessoes-atividade/%d", sessionID), token, nil)
	expectStatus(t, gone, http.StatusNotFound, "fetch deleted session")
}
