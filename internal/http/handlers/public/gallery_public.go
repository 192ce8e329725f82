package public

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetGallery 获取公开相册列表
func (h *Handler) GetGallery(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var eventID uint
	if raw := c.Query("event_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid event_id", nil)
			return
		}
		eventID = uint(parsed)
	}

	items, total, err := h.GalleryService.ListPublic(eventID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch gallery failed", err)
		return
	}

	response.SuccessWithPage(c, items, buildPagination(page, pageSize, total))
}
