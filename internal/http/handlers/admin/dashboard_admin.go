package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 获取仪表盘概览
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	rangeDays, _ := strconv.Atoi(c.DefaultQuery("range_days", "7"))

	overview, err := h.DashboardService.GetOverview(rangeDays)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch dashboard overview failed", err)
		return
	}
	response.Success(c, overview)
}

// GetDashboardTrends 获取捐赠趋势
func (h *Handler) GetDashboardTrends(c *gin.Context) {
	rangeDays, _ := strconv.Atoi(c.DefaultQuery("range_days", "7"))

	trends, err := h.DashboardService.GetDonationTrends(rangeDays)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch donation trends failed", err)
		return
	}
	response.Success(c, trends)
}
