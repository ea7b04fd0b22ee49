package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"guest_management/internal/service"
)

// GuestHandler 處理與嘉賓相關的請求
type GuestHandler struct {
	guestService *service.GuestService
}

func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// CreateGuest 處理 POST /guests/
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var input service.GuestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// ListGuests 處理 GET /guests/
func (h *GuestHandler) ListGuests(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	guests, err := h.guestService.ListGuests(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuest 處理 GET /guests/:id
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdateGuest 處理 PUT /guests/:id，只更新請求中出現的欄位
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.GuestUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest 處理 DELETE /guests/:id
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

// SearchGuests 處理 GET /guests/search/?name=
func (h *GuestHandler) SearchGuests(c *gin.Context) {
	var query struct {
		Name string `form:"name" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	guests, err := h.guestService.SearchGuests(c.Request.Context(), query.Name, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// ListGuestsByLevel 處理 GET /guests/level/:guest_level
func (h *GuestHandler) ListGuestsByLevel(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("guest_level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest_level"})
		return
	}
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	guests, err := h.guestService.ListGuestsByLevel(c.Request.Context(), level, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
