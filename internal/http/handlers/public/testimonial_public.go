package public

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetTestimonials 获取公开感言列表
func (h *Handler) GetTestimonials(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	testimonials, total, err := h.TestimonialService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch testimonials failed", err)
		return
	}

	response.SuccessWithPage(c, testimonials, buildPagination(page, pageSize, total))
}
