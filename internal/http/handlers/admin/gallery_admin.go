package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminGalleryItems 获取相册列表 (Admin)
func (h *Handler) GetAdminGalleryItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	eventID, _ := strconv.ParseUint(c.Query("event_id"), 10, 64)

	items, total, err := h.GalleryService.ListAdmin(uint(eventID), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch gallery failed", err)
		return
	}

	response.SuccessWithPage(c, items, buildPagination(page, pageSize, total))
}

// GetAdminGalleryItem 获取相册条目详情 (Admin)
func (h *Handler) GetAdminGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.GalleryService.Get(id)
	if err != nil {
		h.respondContentError(c, err, "fetch gallery item failed")
		return
	}
	response.Success(c, item)
}

// GalleryItemRequest 创建/更新相册条目请求
type GalleryItemRequest struct {
	Title       string `json:"title"`
	Image       string `json:"image" binding:"required"`
	Caption     string `json:"caption"`
	EventID     *uint  `json:"event_id"`
	IsPublished *bool  `json:"is_published"`
	SortOrder   *int   `json:"sort_order"`
}

func (r GalleryItemRequest) toInput() service.GalleryItemInput {
	return service.GalleryItemInput{
		Title:       r.Title,
		Image:       r.Image,
		Caption:     r.Caption,
		EventID:     r.EventID,
		IsPublished: r.IsPublished,
		SortOrder:   r.SortOrder,
	}
}

// CreateGalleryItem 创建相册条目
func (h *Handler) CreateGalleryItem(c *gin.Context) {
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.GalleryService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create gallery item failed")
		return
	}
	response.Success(c, item)
}

// UpdateGalleryItem 更新相册条目
func (h *Handler) UpdateGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.GalleryService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update gallery item failed")
		return
	}
	response.Success(c, item)
}

// DeleteGalleryItem 删除相册条目
func (h *Handler) DeleteGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.GalleryService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete gallery item failed")
		return
	}
	response.Success(c, nil)
}
