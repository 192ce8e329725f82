package admin

import (
	"errors"
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminProjects 获取项目列表 (Admin)
func (h *Handler) GetAdminProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := c.Query("status")
	search := c.Query("search")

	projects, total, err := h.ProjectService.ListAdmin(status, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch projects failed", err)
		return
	}

	response.SuccessWithPage(c, projects, buildPagination(page, pageSize, total))
}

// GetAdminProject 获取项目详情 (Admin)
func (h *Handler) GetAdminProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.ProjectService.Get(id)
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

// ProjectRequest 创建/更新项目请求
type ProjectRequest struct {
	Slug        string   `json:"slug" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"cover_image"`
	Status      string   `json:"status"`
	GoalAmount  *float64 `json:"goal_amount"`
	IsPublished *bool    `json:"is_published"`
	SortOrder   *int     `json:"sort_order"`
}

func (r ProjectRequest) toInput() service.ProjectInput {
	input := service.ProjectInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		CoverImage:  r.CoverImage,
		Status:      r.Status,
		IsPublished: r.IsPublished,
		SortOrder:   r.SortOrder,
	}
	if r.GoalAmount != nil {
		goal := models.NewMoneyFromFloat(*r.GoalAmount)
		input.GoalAmount = &goal
	}
	return input
}

// CreateProject 创建项目
func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	project, err := h.ProjectService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create project failed")
		return
	}
	response.Success(c, project)
}

// UpdateProject 更新项目
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	project, err := h.ProjectService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update project failed")
		return
	}
	response.Success(c, project)
}

// DeleteProject 删除项目
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete project failed")
		return
	}
	response.Success(c, nil)
}
