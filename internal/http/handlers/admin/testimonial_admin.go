package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminTestimonials 获取感言列表 (Admin)
func (h *Handler) GetAdminTestimonials(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	testimonials, total, err := h.TestimonialService.ListAdmin(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch testimonials failed", err)
		return
	}

	response.SuccessWithPage(c, testimonials, buildPagination(page, pageSize, total))
}

// TestimonialRequest 创建/更新感言请求
type TestimonialRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorTitle string `json:"author_title"`
	Avatar      string `json:"avatar"`
	Quote       string `json:"quote" binding:"required"`
	IsPublished *bool  `json:"is_published"`
	SortOrder   *int   `json:"sort_order"`
}

func (r TestimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		AuthorName:  r.AuthorName,
		AuthorTitle: r.AuthorTitle,
		Avatar:      r.Avatar,
		Quote:       r.Quote,
		IsPublished: r.IsPublished,
		SortOrder:   r.SortOrder,
	}
}

// CreateTestimonial 创建感言
func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	testimonial, err := h.TestimonialService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create testimonial failed")
		return
	}
	response.Success(c, testimonial)
}

// UpdateTestimonial 更新感言
func (h *Handler) UpdateTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	testimonial, err := h.TestimonialService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update testimonial failed")
		return
	}
	response.Success(c, testimonial)
}

// DeleteTestimonial 删除感言
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.TestimonialService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete testimonial failed")
		return
	}
	response.Success(c, nil)
}
