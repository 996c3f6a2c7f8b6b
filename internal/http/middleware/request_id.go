package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID генерирует или пробрасывает X-Request-ID для сквозной трассировки
// запросов в логах.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(requestIDKey, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// GetRequestID возвращает request ID текущего запроса.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
