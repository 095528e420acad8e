package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExercisesRequireAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodGet, "/api/exercicios/", "", nil)
	expectStatus(t, response, http.StatusUnauthorized, "list exercises anonymously")
}

func TestExerciseCatalogIsSharedBetweenUsers(t *testing.T) {
	app, _ := newTestApp(t)
	anaToken, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	biaToken, _ := registerUser(t, app, "Bia", "bia@example.com", "abcdef")

	createExercise(t, app, anaToken, "Supino reto")

	response := jsonRequest(t, app, http.MethodGet, "/api/exercicios/", biaToken, nil)
	expectStatus(t, response, http.StatusOK, "list exercises as another user")
	if got := len(decodeList(t, response)); got != 1 {
		t.Fatalf("expected the shared catalog to be visible, got %d items", got)
	}
}

func TestExerciseSearchMatchesNameAndMuscleGroup(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	created := jsonRequest(t, app, http.MethodPost, "/api/exercicios/", token, map[string]string{
		"nome":           "Agachamento livre",
		"grupo_muscular": "pernas",
	})
	expectStatus(t, created, http.StatusCreated, "create exercise with muscle group")
	createExercise(t, app, token, "Supino reto")

	response := jsonRequest(t, app, http.MethodGet, "/api/exercicios/?search=pernas", token, nil)
	expectStatus(t, response, http.StatusOK, "search exercises")
	results := decodeList(t, response)
	if len(results) != 1 || results[0]["nome"] != "Agachamento livre" {
		t.Fatalf("expected the squat to match, got %v", results)
	}
}

func TestDeleteExerciseBlockedWhileReferenced(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	sessionID := createSession(t, app, token, "musculacao", "2026-08-01T08:00:00Z")
	exerciseID := createExercise(t, app, token, "Supino reto")

	set := jsonRequest(t, app, http.MethodPost, "/api/series-musculacao/", token, map[string]interface{}{
		"sessao":    sessionID,
		"exercicio": exerciseID,
	})
	expectStatus(t, set, http.StatusCreated, "create referencing set")
	setBody := decodeMap(t, set)

	blocked := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/exercicios/%d", exerciseID), token, nil)
	expectStatus(t, blocked, http.StatusBadRequest, "delete referenced exercise")
	if body := decodeMap(t, blocked); body["detail"] == nil {
		t.Fatalf("expected a detail message, got %v", body)
	}

	removeSet := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/series-musculacao/%v", setBody["id"]), token, nil)
	expectStatus(t, removeSet, http.StatusNoContent, "delete referencing set")

	allowed := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/exercicios/%d", exerciseID), token, nil)
	expectStatus(t, allowed, http.StatusNoContent, "delete unreferenced exercise")
}
