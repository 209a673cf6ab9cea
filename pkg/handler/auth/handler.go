package auth

import (
	"errors"
	"net/http"

	"github.com/codepulse-cc/codepulse-app/pkg/constant"
	"github.com/codepulse-cc/codepulse-app/pkg/domain/model"
	"github.com/codepulse-cc/codepulse-app/pkg/response"
	auth_service "github.com/codepulse-cc/codepulse-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 封装了认证相关的 HTTP 处理器。
type Handler struct {
	svc auth_service.AuthService
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc auth_service.AuthService) *Handler {
	return &Handler{svc: svc}
}

// Register 注册新用户，新用户默认进入 Reader 组。
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.svc.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, constant.ErrEmailExists) {
			response.Fail(c, http.StatusConflict, "该邮箱已被注册")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "注册失败: "+err.Error())
		return
	}

	c.Status(http.StatusCreated)
}

// Login 校验凭证并返回会话令牌。
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, constant.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "邮箱或密码错误")
			return
		}
		if errors.Is(err, constant.ErrForbidden) {
			response.Fail(c, http.StatusForbidden, "账号状态异常，禁止登录")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "登录失败: "+err.Error())
		return
	}

	response.JSON(c, session)
}

// Refresh 用刷新令牌换取新的访问令牌。
func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	accessToken, expiresAt, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, constant.ErrInvalidToken) {
			response.Fail(c, http.StatusUnauthorized, "无效或已吊销的刷新令牌")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "刷新令牌失败: "+err.Error())
		return
	}

	response.JSON(c, gin.H{
		"accessToken": accessToken,
		"expiresAt":   expiresAt,
	})
}

// Logout 吊销刷新令牌。
func (h *Handler) Logout(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		response.Fail(c, http.StatusInternalServerError, "登出失败: "+err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
