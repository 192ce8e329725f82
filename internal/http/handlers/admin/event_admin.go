package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminEvents 获取活动列表 (Admin)
func (h *Handler) GetAdminEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	search := c.Query("search")

	events, total, err := h.EventService.ListAdmin(search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch events failed", err)
		return
	}

	response.SuccessWithPage(c, events, buildPagination(page, pageSize, total))
}

// GetAdminEvent 获取活动详情 (Admin)
func (h *Handler) GetAdminEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := h.EventService.Get(id)
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

// EventRequest 创建/更新活动请求
type EventRequest struct {
	Slug        string     `json:"slug" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Location    string     `json:"location"`
	CoverImage  string     `json:"cover_image"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	IsPublished *bool      `json:"is_published"`
	SortOrder   *int       `json:"sort_order"`
}

func (r EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		Location:    r.Location,
		CoverImage:  r.CoverImage,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		IsPublished: r.IsPublished,
		SortOrder:   r.SortOrder,
	}
}

// CreateEvent 创建活动
func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	event, err := h.EventService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create event failed")
		return
	}
	response.Success(c, event)
}

// UpdateEvent 更新活动
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	event, err := h.EventService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update event failed")
		return
	}
	response.Success(c, event)
}

// DeleteEvent 删除活动
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.EventService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete event failed")
		return
	}
	response.Success(c, nil)
}

// respondContentError 内容管理接口的统一错误映射
func (h *Handler) respondContentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "record not found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeConflict, "slug already exists", nil)
	case errors.Is(err, service.ErrInvalidParam):
		respondError(c, response.CodeBadRequest, "bad request", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}
