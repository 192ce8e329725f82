package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminPartners 获取合作伙伴列表 (Admin)
func (h *Handler) GetAdminPartners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	partners, total, err := h.PartnerService.ListAdmin(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch partners failed", err)
		return
	}

	response.SuccessWithPage(c, partners, buildPagination(page, pageSize, total))
}

// PartnerRequest 创建/更新合作伙伴请求
type PartnerRequest struct {
	Name      string `json:"name" binding:"required"`
	Logo      string `json:"logo"`
	Website   string `json:"website"`
	Blurb     string `json:"blurb"`
	IsActive  *bool  `json:"is_active"`
	SortOrder *int   `json:"sort_order"`
}

func (r PartnerRequest) toInput() service.PartnerInput {
	return service.PartnerInput{
		Name:      r.Name,
		Logo:      r.Logo,
		Website:   r.Website,
		Blurb:     r.Blurb,
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// CreatePartner 创建合作伙伴
func (h *Handler) CreatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	partner, err := h.PartnerService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create partner failed")
		return
	}
	response.Success(c, partner)
}

// UpdatePartner 更新合作伙伴
func (h *Handler) UpdatePartner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	partner, err := h.PartnerService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update partner failed")
		return
	}
	response.Success(c, partner)
}

// DeletePartner 删除合作伙伴
func (h *Handler) DeletePartner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.PartnerService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete partner failed")
		return
	}
	response.Success(c, nil)
}
