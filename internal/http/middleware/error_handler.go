package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
	"github.com/ignatzorin/sponsorship-backend/internal/logger"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

// ErrorHandler перехватывает панику и ошибки из c.Errors, если ответ ещё не отправлен.
// Клиент получает конверт с INTERNAL_ERROR, детали остаются в логе.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Log.WithFields(logrus.Fields{
					"panic":  recovered,
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
					"stack":  string(debug.Stack()),
				}).Error("паника при обработке запроса")
				abortInternal(c)
			}
		}()

		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("ошибка запроса")
		response.Error(c, err.Err)
	}
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Error: &response.ErrorInfo{
			Code:    string(apperror.ErrCodeInternal),
			Message: "внутренняя ошибка сервера",
		},
	})
}
