package public

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPartners 获取公开合作伙伴列表
func (h *Handler) GetPartners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)

	partners, total, err := h.PartnerService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch partners failed", err)
		return
	}

	response.SuccessWithPage(c, partners, buildPagination(page, pageSize, total))
}
