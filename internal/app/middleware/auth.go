package middleware

import (
	"net/http"
	"strings"

	"github.com/codepulse-cc/codepulse-app/internal/pkg/auth"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
	"github.com/codepulse-cc/codepulse-app/pkg/response"
	service_auth "github.com/codepulse-cc/codepulse-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// WriterAuth 校验当前用户是否属于 Writer 组（组 ID 1），必须在 JWTAuth 之后使用。
func (m *Middleware) WriterAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusForbidden, "权限信息获取失败")
			c.Abort()
			return
		}

		claims, ok := claimsValue.(*auth.CustomClaims)
		if !ok {
			response.Fail(c, http.StatusForbidden, "权限信息格式错误")
			c.Abort()
			return
		}

		groupID, entityType, err := idgen.DecodePublicID(claims.UserGroupID)
		if err != nil || entityType != idgen.EntityTypeUserGroup {
			response.Fail(c, http.StatusForbidden, "用户组信息无效")
			c.Abort()
			return
		}

		if groupID != model.UserGroupWriterID {
			response.Fail(c, http.StatusForbidden, "需要 Writer 权限")
			c.Abort()
			return
		}

		c.Next()
	}
}
