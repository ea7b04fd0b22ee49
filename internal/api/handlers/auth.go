package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"guest_management/internal/metrics"
	"guest_management/internal/middleware"
	"guest_management/internal/service"
)

// AuthHandler 處理登入與管理員帳號相關的請求
type AuthHandler struct {
	authService *service.AuthService
	metrics     *metrics.Metrics
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(authService *service.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: m}
}

// LoginInput 定義登入請求的結構（表單編碼，username 為 email）
type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// AdminInput 定義建立管理員請求的結構
type AdminInput struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// Login 處理 POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.observe(metrics.LoginFailure)
		}
		respondError(c, err)
		return
	}

	h.observe(metrics.LoginSuccess)
	c.JSON(http.StatusOK, token)
}

// CreateAdmin 處理 POST /admin/；email 已被使用時回傳 400
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var input AdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	admin, err := h.authService.CreateAdmin(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Me 回傳目前 token 對應的管理員
func (h *AuthHandler) Me(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		respondError(c, service.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, service.ConvertAdmin(admin))
}

func (h *AuthHandler) observe(result string) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(result)
	}
}
