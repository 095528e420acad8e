package api

import (
	"net/http"
	"testing"
)

func TestMeRequiresAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodGet, "/auth/me", "", nil)
	expectStatus(t, response, http.StatusUnauthorized, "me without token")

	if header := response.Header.Get("WWW-Authenticate"); header != `Bearer realm="api"` {
		t.Fatalf("expected WWW-Authenticate challenge, got %q", header)
	}
	body := decodeMap(t, response)
	if body["detail"] != "As credenciais de autenticação não foram fornecidas." {
		t.Fatalf("expected missing-credentials detail, got %v", body)
	}
}

func TestMeRejectsGarbageToken(t *testing.T) {
	app, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodGet, "/auth/me", "not-a-jwt", nil)
	expectStatus(t, response, http.StatusUnauthorized, "me with garbage token")

	body := decodeMap(t, response)
	if body["detail"] != "Token inválido." {
		t.Fatalf("expected invalid-token detail, got %v", body)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)
	token, userID := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodGet, "/auth/me", token, nil)
	expectStatus(t, response, http.StatusOK, "me")

	body := decodeMap(t, response)
	if uint(body["id"].(float64)) != userID || body["nome"] != "Ana" {
		t.Fatalf("unexpected profile payload: %v", body)
	}
}

func TestUpdateMeChangesName(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPatch, "/auth/me", token, map[string]string{
		"nome": "Ana Clara",
	})
	expectStatus(t, response, http.StatusOK, "update profile name")

	body := decodeMap(t, response)
	if body["nome"] != "Ana Clara" || body["email"] != "ana@example.com" {
		t.Fatalf("expected only the name to change, got %v", body)
	}
}

func TestUpdateMeRejectsEmailOfAnotherUser(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	token, _ := registerUser(t, app, "Bia", "bia@example.com", "abcdef")

	response := jsonRequest(t, app, http.MethodPatch, "/auth/me", token, map[string]string{
		"email": "ana@example.com",
	})
	expectStatus(t, response, http.StatusBadRequest, "update profile to taken email")

	body := decodeMap(t, response)
	if body["email"] != "Este e-mail já está em uso por outro usuário." {
		t.Fatalf("expected email-in-use message, got %v", body)
	}
}

func TestChangePasswordFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")

	wrong := jsonRequest(t, app, http.MethodPatch, "/auth/change-password", token, map[string]string{
		"senha_atual":            "not-it",
		"nova_senha":             "ghijkl",
		"nova_senha_confirmacao": "ghijkl",
	})
	expectStatus(t, wrong, http.StatusBadRequest, "change password with wrong current")

	mismatch := jsonRequest(t, app, http.MethodPatch, "/auth/change-password", token, map[string]string{
		"senha_atual":            "abcdef",
		"nova_senha":             "ghijkl",
		"nova_senha_confirmacao": "different",
	})
	expectStatus(t, mismatch, http.StatusBadRequest, "change password with mismatched confirmation")
	mismatchBody := decodeMap(t, mismatch)
	if _, present := mismatchBody["nova_senha_confirmacao"]; !present {
		t.Fatalf("expected error keyed by nova_senha_confirmacao, got %v", mismatchBody)
	}

	ok := jsonRequest(t, app, http.MethodPatch, "/auth/change-password", token, map[string]string{
		"senha_atual":            "abcdef",
		"nova_senha":             "ghijkl",
		"nova_senha_confirmacao": "ghijkl",
	})
	expectStatus(t, ok, http.StatusOK, "change password")
	okBody := decodeMap(t, ok)
	if okBody["detail"] != "Senha alterada com sucesso" {
		t.Fatalf("expected success detail, got %v", okBody)
	}

	oldLogin := jsonRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ana@example.com",
		"senha": "abcdef",
	})
	expectStatus(t, oldLogin, http.StatusBadRequest, "login with old password")

	newLogin := jsonRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ana@example.com",
		"senha": "ghijkl",
	})
	expectStatus(t, newLogin, http.StatusOK, "login with new password")
}

func TestDeleteMeRemovesAccountAndData(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "Ana", "ana@example.com", "abcdef")
	createSession(t, app, token, "corrida", "2026-08-01T08:00:00Z")

	response := jsonRequest(t, app, http.MethodDelete, "/auth/me", token, nil)
	expectStatus(t, response, http.StatusNoContent, "delete account")

	after := jsonRequest(t, app, http.MethodGet, "/auth/me", token, nil)
	expectStatus(t, after, http.StatusUnauthorized, "me after account deletion")
}
