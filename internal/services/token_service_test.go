package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type stubUserSource struct {
	users map[uint]models.User
}

func (stub stubUserSource) FindByID(userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func newTestTokenService(ttl time.Duration) (*TokenService, models.User) {
	user := models.User{ID: 7, Name: "Ana", Email: "ana@example.com"}
	source := stubUserSource{users: map[uint]models.User{user.ID: user}}
	return NewTokenService(source, []byte("test-secret"), ttl), user
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service, user := newTestTokenService(time.Hour)

	token, err := service.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	resolved, err := service.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if resolved.ID != user.ID || resolved.Email != user.Email {
		t.Fatalf("resolved wrong user: %+v", resolved)
	}
}

func TestExpiredAccessTokenReported(t *testing.T) {
	service, user := newTestTokenService(-time.Minute)

	token, err := service.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if _, err := service.VerifyAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	service, user := newTestTokenService(time.Hour)

	accessToken, err := service.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	if _, err := service.VerifyRefreshToken(accessToken); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType, got %v", err)
	}
}

func TestTokenSignedWithOtherKeyIsInvalid(t *testing.T) {
	service, user := newTestTokenService(time.Hour)
	otherService, _ := func() (*TokenService, models.User) {
		source := stubUserSource{users: map[uint]models.User{user.ID: user}}
		return NewTokenService(source, []byte("another-secret"), time.Hour), user
	}()

	token, err := otherService.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}
	if _, err := service.VerifyAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenForMissingUserReported(t *testing.T) {
	service, _ := newTestTokenService(time.Hour)

	ghost := models.User{ID: 999, Email: "ghost@example.com"}
	token, err := service.IssueAccessToken(ghost)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := service.VerifyAccessToken(token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
