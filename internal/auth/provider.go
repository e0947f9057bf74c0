// Package auth определяет, какой профиль считается «текущим» для запроса.
package auth

import (
	"net/http"
	"os"

	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

const (
	// Переменная окружения с идентификатором мок-пользователя.
	MockUserIDEnv = "MOCK_USER_ID"

	// Значение из примера .env; как реальный идентификатор не принимается.
	PlaceholderUserID = "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"
)

// Provider разрешает идентификатор пользователя для запроса.
// При неудаче возвращает apperror.ErrNotAuthenticated.
type Provider interface {
	Resolve(r *http.Request) (string, error)
}

// LookupFunc читает значение конфигурации по ключу (os.LookupEnv по умолчанию).
type LookupFunc func(key string) (string, bool)

// MockProvider берёт идентификатор из окружения при каждом вызове, без кеширования.
type MockProvider struct {
	lookup LookupFunc
}

// NewMockProvider создаёт провайдер; nil lookup означает os.LookupEnv.
func NewMockProvider(lookup LookupFunc) *MockProvider {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &MockProvider{lookup: lookup}
}

// Resolve возвращает MOCK_USER_ID без изменений или ErrNotAuthenticated,
// если значение не задано или совпадает с плейсхолдером.
func (p *MockProvider) Resolve(_ *http.Request) (string, error) {
	id, ok := p.lookup(MockUserIDEnv)
	if !ok || id == "" || id == PlaceholderUserID {
		return "", apperror.ErrNotAuthenticated
	}
	return id, nil
}
