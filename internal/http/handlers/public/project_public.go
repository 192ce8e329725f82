package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProjects 获取公开项目列表
func (h *Handler) GetProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := strings.TrimSpace(c.Query("status"))

	projects, total, err := h.ProjectService.ListPublic(status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch projects failed", err)
		return
	}

	response.SuccessWithPage(c, projects, buildPagination(page, pageSize, total))
}

// GetProjectBySlug 通过 slug 获取公开项目详情
func (h *Handler) GetProjectBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug required", nil)
		return
	}

	project, err := h.ProjectService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "project not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "fetch project failed", err)
		return
	}
	response.Success(c, project)
}
