package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// SessionCookie это имя cookie с токеном сессии.
const SessionCookie = "session"

// TokenManager выпускает и проверяет подписанные токены сессии (HS256, subject = id профиля).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue выпускает токен для профиля.
func (m *TokenManager) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("token: пустой идентификатор пользователя")
	}

	now := m.now()
	exp := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: подпись: %w", err)
	}

	return signed, exp, nil
}

// Parse проверяет токен и возвращает идентификатор профиля.
func (m *TokenManager) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.Subject, nil
}

// TokenProvider разрешает пользователя по токену из cookie session или заголовка Authorization.
type TokenProvider struct {
	tokens *TokenManager
}

// NewTokenProvider создаёт провайдер поверх менеджера токенов.
func NewTokenProvider(tokens *TokenManager) *TokenProvider {
	return &TokenProvider{tokens: tokens}
}

// Resolve возвращает subject валидного токена или ErrNotAuthenticated.
func (p *TokenProvider) Resolve(r *http.Request) (string, error) {
	raw := bearerToken(r)
	if raw == "" {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			raw = cookie.Value
		}
	}
	if raw == "" {
		return "", apperror.ErrNotAuthenticated
	}

	userID, err := p.tokens.Parse(raw)
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeUnauthorized, apperror.ErrNotAuthenticated.Message)
	}

	return userID, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
