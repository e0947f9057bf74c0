package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/genesehub/internal/logger"
)

func TestRequestLogger(t *testing.T) {
	testLogger, hook := test.NewNullLogger()
	prev := logger.Log
	logger.Log = testLogger
	t.Cleanup(func() { logger.Log = prev })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestIDKey))
	})

	t.Run("генерирует id", func(t *testing.T) {
		hook.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		requestID := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(requestID)
		require.NoError(t, err)
		assert.Equal(t, requestID, w.Body.String())

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, requestID, entry.Data["request_id"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "/ping", entry.Data["path"])
	})

	t.Run("сохраняет входящий id", func(t *testing.T) {
		incoming := uuid.NewString()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, incoming)
		r.ServeHTTP(w, req)

		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("заменяет невалидный id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})

	t.Run("404 пишется как warning", func(t *testing.T) {
		hook.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
	})
}
