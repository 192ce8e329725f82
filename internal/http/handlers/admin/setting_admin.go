package admin

import (
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSiteConfig 获取站点配置 (Admin)
func (h *Handler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.SettingService.GetConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "fetch site config failed", err)
		return
	}
	response.Success(c, cfg)
}

// UpdateSiteConfig 更新站点配置
func (h *Handler) UpdateSiteConfig(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	value, err := h.SettingService.Update(c.Request.Context(), constants.SettingKeySiteConfig, req)
	if err != nil {
		respondError(c, response.CodeInternal, "update site config failed", err)
		return
	}

	adminID, _ := getAdminID(c)
	requestLog(c).Infow("site_config_updated", "admin_id", adminID)
	response.Success(c, value)
}
