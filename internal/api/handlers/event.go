package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"guest_management/internal/service"
)

// EventHandler 處理活動以及活動成員的請求
type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input service.EventCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.EventUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) AddGuest(c *gin.Context) {
	h.changeMembership(c, "guest_id", h.eventService.AddGuest)
}

func (h *EventHandler) RemoveGuest(c *gin.Context) {
	h.changeMembership(c, "guest_id", h.eventService.RemoveGuest)
}

func (h *EventHandler) AddManager(c *gin.Context) {
	h.changeMembership(c, "member_id", h.eventService.AddManager)
}

func (h *EventHandler) RemoveManager(c *gin.Context) {
	h.changeMembership(c, "member_id", h.eventService.RemoveManager)
}

// changeMembership 解析 /events/:id/<kind>/:<param> 並回傳更新後的活動
func (h *EventHandler) changeMembership(c *gin.Context, param string, change func(ctx context.Context, eventID, memberID uint) (*service.Event, error)) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseID(c, param)
	if !ok {
		return
	}

	event, err := change(c.Request.Context(), eventID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
