package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest_management/internal/service"
)

// CommitteeHandler 處理與委員會成員相關的請求
type CommitteeHandler struct {
	committeeService *service.CommitteeService
}

func NewCommitteeHandler(committeeService *service.CommitteeService) *CommitteeHandler {
	return &CommitteeHandler{committeeService: committeeService}
}

func (h *CommitteeHandler) CreateMember(c *gin.Context) {
	var input service.CommitteeMemberCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.committeeService.CreateMember(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CommitteeHandler) ListMembers(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	members, err := h.committeeService.ListMembers(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *CommitteeHandler) GetMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	member, err := h.committeeService.GetMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CommitteeHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.CommitteeMemberUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.committeeService.UpdateMember(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CommitteeHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.committeeService.DeleteMember(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Committee member deleted successfully"})
}
