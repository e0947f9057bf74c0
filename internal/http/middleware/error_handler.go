package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/genesehub/internal/dto"
	"github.com/ignatzorin/genesehub/internal/logger"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

const (
	// Шаблон страницы ошибки.
	ErrorTemplate = "error.html"
	// ContextHTMLErrorsKey помечает запросы, ошибки которых отдаются страницей.
	ContextHTMLErrorsKey = "htmlErrors"
)

// HTMLErrors помечает маршрут страницы: ошибки отображаются через error.html.
func HTMLErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextHTMLErrorsKey, true)
		c.Next()
	}
}

// ErrorHandler обрабатывает ошибки централизованно.
// Хэндлеры кладут ошибку в c.Error и прерывают цепочку; здесь она превращается в ответ:
// HTML-страницу для запросов страниц (или редирект на /login при 401),
// JSON {"error": ...} для остальных.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Ответ уже отправлен
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		message := appErr.PublicMessage()

		entry := logger.Log.WithFields(logrus.Fields{
			"error":  appErr.Error(),
			"code":   appErr.Code,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		if c.GetBool(ContextHTMLErrorsKey) {
			// Страница без пользователя ведёт на вход, как и политика RedirectToLogin.
			if apperror.IsUnauthorized(appErr) {
				c.Redirect(http.StatusFound, LoginPath)
				return
			}
			c.HTML(appErr.HTTPStatus, ErrorTemplate, gin.H{"message": message})
			return
		}
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse{Error: message})
	}
}
