package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest_management/internal/service"
)

// UserHandler 提供跨子類型的用戶查詢
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers 回傳所有用戶的基礎資料（含 type）
func (h *UserHandler) ListUsers(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser 依 type 回傳嘉賓、工作人員或委員的完整資料
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
