package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
)

// bindJSON разбирает тело запроса и сам отвечает 400 при ошибке.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return false
	}
	return true
}
