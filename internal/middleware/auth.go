package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"guest_management/internal/models"
	"guest_management/internal/service"
	"guest_management/internal/utils"
)

// adminContextKey 是 gin context 中存放已驗證管理員的鍵
const adminContextKey = "admin"

// TokenResolver 將 bearer token 解析為管理員
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*models.Admin, error)
}

// AuthMiddleware 是一個 Gin 中間件，驗證 bearer token 並載入對應的管理員
func AuthMiddleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zerolog.Ctx(c.Request.Context())

		// 從請求頭中取出 token
		token, err := utils.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			logger.Debug().Msg("missing or malformed authorization header")
			abortUnauthorized(c, service.ErrUnauthorized.Error())
			return
		}

		admin, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				logger.Info().Msg("rejected bearer token")
				abortUnauthorized(c, service.ErrUnauthorized.Error())
				return
			}
			logger.Error().Err(err).Msg("resolve bearer token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		// 將管理員設置到上下文中
		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// CurrentAdmin 取回 AuthMiddleware 注入的管理員
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	value, ok := c.Get(adminContextKey)
	if !ok {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}

// abortUnauthorized 回傳 401 並附上 WWW-Authenticate challenge
func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
