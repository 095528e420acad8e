package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestUserCollectionSearch(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana Souza", "ana@example.com", "abcdef")
	registerUser(t, app, "Bia Lima", "bia@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodGet, "/api/usuarios/?search=lima", token, nil)
	expectStatus(t, response, http.StatusOK, "search users")

	users := decodeList(t, response)
	if len(users) != 1 || users[0]["nome"] != "Bia Lima" {
		t.Fatalf("expected only Bia to match, got %v", users)
	}
}

func TestUserCollectionCreateValidatesEmail(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPost, "/api/usuarios/", token, map[string]string{
		"nome":  "Sem Email",
		"email": "not-an-email",
		"senha": "abcdef",
	})
	expectStatus(t, response, http.StatusBadRequest, "create user with bad email")

	body := decodeMap(t, response)
	if body["email"] != "Insira um endereço de email válido." {
		t.Fatalf("expected email format error, got %v", body)
	}
}

func TestUserCollectionDeleteCascades(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	memberToken, memberID := registerUser(t, app, "Bia", "bia@example.com", "abcdef")
	createSession(t, app, memberToken, "corrida", "2026-08-01T08:00:00Z")

	response := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", memberID), adminToken, nil)
	expectStatus(t, response, http.StatusNoContent, "delete user")

	after := jsonRequest(t, app, http.MethodGet, "/auth/me", memberToken, nil)
	expectStatus(t, after, http.StatusUnauthorized, "deleted user's token")

	missing := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/usuarios/%d", memberID), adminToken, nil)
	expectStatus(t, missing, http.StatusNotFound, "fetch deleted user")
}
