package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

func envLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestMockProvider_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		want    string
		wantErr bool
	}{
		{name: "configured", vars: map[string]string{MockUserIDEnv: "3f1c2a9e-user"}, want: "3f1c2a9e-user"},
		{name: "missing", vars: map[string]string{}, wantErr: true},
		{name: "empty", vars: map[string]string{MockUserIDEnv: ""}, wantErr: true},
		{name: "placeholder", vars: map[string]string{MockUserIDEnv: PlaceholderUserID}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewMockProvider(envLookup(tt.vars))
			got, err := p.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsUnauthorized(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMockProvider_ReadsAtCallTime(t *testing.T) {
	vars := map[string]string{}
	p := NewMockProvider(envLookup(vars))
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := p.Resolve(req)
	require.Error(t, err)

	vars[MockUserIDEnv] = "user-1"
	got, err := p.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)
}

func TestTokenProvider_Resolve(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	p := NewTokenProvider(tokens)

	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		got, err := p.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got)
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		got, err := p.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := p.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, apperror.IsUnauthorized(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _, err := NewTokenManager("other-secret", time.Hour).Issue("user-1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		_, err = p.Resolve(req)
		assert.True(t, apperror.IsUnauthorized(err))
	})
}

func TestTokenManager_Expired(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Minute)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	token, exp, err := tokens.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Minute), exp)

	tokens.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tokens.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_IssueRequiresUser(t *testing.T) {
	_, _, err := NewTokenManager("s", time.Minute).Issue("")
	assert.Error(t, err)
}
