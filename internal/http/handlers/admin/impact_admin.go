package admin

import (
	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminImpactStats 获取影响力指标列表 (Admin)
func (h *Handler) GetAdminImpactStats(c *gin.Context) {
	stats, err := h.ImpactStatService.ListAdmin()
	if err != nil {
		respondError(c, response.CodeInternal, "fetch impact stats failed", err)
		return
	}
	response.Success(c, stats)
}

// GetAdminImpactStat 获取指标详情 (Admin)
func (h *Handler) GetAdminImpactStat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	stat, err := h.ImpactStatService.Get(id)
	if err != nil {
		h.respondContentError(c, err, "fetch impact stat failed")
		return
	}
	response.Success(c, stat)
}

// ImpactStatRequest 创建/更新指标请求
type ImpactStatRequest struct {
	Label     string `json:"label" binding:"required"`
	Value     *int64 `json:"value"`
	Unit      string `json:"unit"`
	Icon      string `json:"icon"`
	IsActive  *bool  `json:"is_active"`
	SortOrder *int   `json:"sort_order"`
}

func (r ImpactStatRequest) toInput() service.ImpactStatInput {
	return service.ImpactStatInput{
		Label:     r.Label,
		Value:     r.Value,
		Unit:      r.Unit,
		Icon:      r.Icon,
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// CreateImpactStat 创建指标
func (h *Handler) CreateImpactStat(c *gin.Context) {
	var req ImpactStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	stat, err := h.ImpactStatService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create impact stat failed")
		return
	}
	response.Success(c, stat)
}

// UpdateImpactStat 更新指标
func (h *Handler) UpdateImpactStat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ImpactStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	stat, err := h.ImpactStatService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update impact stat failed")
		return
	}
	response.Success(c, stat)
}

// DeleteImpactStat 删除指标
func (h *Handler) DeleteImpactStat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ImpactStatService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete impact stat failed")
		return
	}
	response.Success(c, nil)
}
