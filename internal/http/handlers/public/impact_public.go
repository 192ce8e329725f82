package public

import (
	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetImpactStats 获取公开影响力统计
func (h *Handler) GetImpactStats(c *gin.Context) {
	stats, err := h.ImpactStatService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "fetch impact stats failed", err)
		return
	}
	response.Success(c, stats)
}
