package public

import (
	"github.com/aidlink-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSiteConfig 获取公开站点配置
func (h *Handler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.SettingService.GetPublicConfig(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "fetch site config failed", err)
		return
	}
	response.Success(c, cfg)
}
