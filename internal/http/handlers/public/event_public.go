package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetEvents 获取已发布活动列表
func (h *Handler) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	upcoming := c.Query("upcoming") == "true"

	events, total, err := h.EventService.ListPublic(page, pageSize, upcoming)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch events failed", err)
		return
	}

	response.SuccessWithPage(c, events, buildPagination(page, pageSize, total))
}

// GetEventBySlug 通过 slug 获取已发布活动详情
func (h *Handler) GetEventBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug required", nil)
		return
	}

	event, err := h.EventService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "event not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "fetch event failed", err)
		return
	}
	response.Success(c, event)
}
