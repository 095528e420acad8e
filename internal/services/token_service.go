package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

const (
	refreshTokenType      = "refresh"
	DefaultAccessTokenTTL = 60 * time.Minute
	RefreshTokenTTL       = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrWrongTokenType = errors.New("wrong token type")
	ErrUserNotFound   = errors.New("user not found")
)

type TokenUserSource interface {
	FindByID(userID uint) (models.User, error)
}

// TokenService issues and verifies HS256-signed access and refresh tokens.
// Tokens are self-contained; expiry is the only invalidation mechanism.
type TokenService struct {
	users     TokenUserSource
	secretKey []byte
	accessTTL time.Duration
}

func NewTokenService(users TokenUserSource, secretKey []byte, accessTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	return &TokenService{users: users, secretKey: secretKey, accessTTL: accessTTL}
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

func (service *TokenService) IssueAccessToken(user models.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secretKey)
}

func (service *TokenService) IssueRefreshToken(user models.User) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		TokenType: refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secretKey)
}

func (service *TokenService) VerifyAccessToken(rawToken string) (models.User, error) {
	claims := &accessClaims{}
	if err := service.parseToken(rawToken, claims); err != nil {
		return models.User{}, err
	}
	return service.resolveSubject(claims.Subject)
}

func (service *TokenService) VerifyRefreshToken(rawToken string) (models.User, error) {
	claims := &refreshClaims{}
	if err := service.parseToken(rawToken, claims); err != nil {
		return models.User{}, err
	}
	if claims.TokenType != refreshTokenType {
		return models.User{}, ErrWrongTokenType
	}
	return service.resolveSubject(claims.Subject)
}

func (service *TokenService) parseToken(rawToken string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}

func (service *TokenService) resolveSubject(subject string) (models.User, error) {
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || userID == 0 {
		return models.User{}, ErrTokenInvalid
	}

	user, err := service.users.FindByID(uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
