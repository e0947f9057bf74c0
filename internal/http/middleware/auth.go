package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/genesehub/internal/auth"
	"github.com/ignatzorin/genesehub/internal/dto"
	"github.com/ignatzorin/genesehub/internal/logger"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// ContextUserIDKey хранит в gin.Context идентификатор текущего профиля (string).
const ContextUserIDKey = "userID"

// LoginPath: сюда перенаправляются неаутентифицированные запросы страниц.
const LoginPath = "/login"

// AuthPolicy описывает поведение маршрута без аутентифицированного пользователя.
type AuthPolicy int

const (
	// Public маршруты не требуют пользователя.
	Public AuthPolicy = iota
	// RedirectToLogin отвечает 302 на /login.
	RedirectToLogin
	// RejectUnauthorized отвечает 401 {"error":"Not authenticated"}.
	RejectUnauthorized
)

func (p AuthPolicy) String() string {
	switch p {
	case RedirectToLogin:
		return "redirect-login"
	case RejectUnauthorized:
		return "reject-401"
	default:
		return "public"
	}
}

// RequireUser разрешает текущего пользователя через provider и применяет policy.
// Для Public пропускает запрос без проверки.
func RequireUser(provider auth.Provider, policy AuthPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy == Public {
			c.Next()
			return
		}

		userID, err := provider.Resolve(c.Request)
		if err != nil {
			logger.Log.WithError(err).WithField("path", c.Request.URL.Path).Debug("auth: пользователь не определён")

			if policy == RedirectToLogin {
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperror.ErrNotAuthenticated.Message})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
