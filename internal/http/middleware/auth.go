package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/auth"
)

const principalKey = "principal"

// Auth проверяет Bearer-токен и кладёт субъект токена в контекст запроса.
func Auth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(principalKey, claims.Subject)
		c.Next()
	}
}

// MustPrincipal возвращает субъект токена из контекста запроса.
func MustPrincipal(c *gin.Context) (string, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return "", false
	}
	subject, ok := value.(string)
	return subject, ok
}
