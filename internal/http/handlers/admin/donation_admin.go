package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminDonations 获取捐赠列表 (Admin)
func (h *Handler) GetAdminDonations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	projectID, _ := strconv.ParseUint(c.Query("project_id"), 10, 64)

	filter := repository.DonationListFilter{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Method:    c.Query("method"),
		ProjectID: uint(projectID),
	}

	donations, total, err := h.DonationService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch donations failed", err)
		return
	}

	response.SuccessWithPage(c, donations, buildPagination(page, pageSize, total))
}

// GetAdminDonation 获取捐赠详情 (Admin)
func (h *Handler) GetAdminDonation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	donation, err := h.DonationService.Get(id)
	if err != nil {
		h.respondContentError(c, err, "fetch donation failed")
		return
	}
	response.Success(c, donation)
}

// DonationRequest 录入/更新捐赠请求
type DonationRequest struct {
	DonorName  string   `json:"donor_name" binding:"required"`
	DonorEmail string   `json:"donor_email"`
	DonorPhone string   `json:"donor_phone"`
	Amount     *float64 `json:"amount" binding:"required"`
	Currency   string   `json:"currency"`
	Method     string   `json:"method" binding:"required"`
	Status     string   `json:"status"`
	ProjectID  *uint    `json:"project_id"`
	Note       string   `json:"note"`
}

func (r DonationRequest) toInput() service.DonationInput {
	input := service.DonationInput{
		DonorName:  r.DonorName,
		DonorEmail: r.DonorEmail,
		DonorPhone: r.DonorPhone,
		Currency:   r.Currency,
		Method:     r.Method,
		Status:     r.Status,
		ProjectID:  r.ProjectID,
		Note:       r.Note,
	}
	if r.Amount != nil {
		amount := models.NewMoneyFromFloat(*r.Amount)
		input.Amount = &amount
	}
	return input
}

// CreateDonation 录入捐赠
func (h *Handler) CreateDonation(c *gin.Context) {
	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	donation, err := h.DonationService.Create(req.toInput())
	if err != nil {
		h.respondContentError(c, err, "create donation failed")
		return
	}

	requestLog(c).Infow("donation_recorded", "donation_id", donation.ID, "amount", donation.Amount.String(), "method", donation.Method)
	response.Success(c, donation)
}

// UpdateDonation 更新捐赠
func (h *Handler) UpdateDonation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	donation, err := h.DonationService.Update(id, req.toInput())
	if err != nil {
		h.respondContentError(c, err, "update donation failed")
		return
	}
	response.Success(c, donation)
}

// MarkDonationReceived 标记捐赠到账
func (h *Handler) MarkDonationReceived(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	donation, err := h.DonationService.MarkReceived(id)
	if err != nil {
		h.respondContentError(c, err, "mark donation received failed")
		return
	}

	requestLog(c).Infow("donation_received", "donation_id", donation.ID, "receipt_no", donation.ReceiptNo)
	response.Success(c, donation)
}

// DeleteDonation 删除捐赠
func (h *Handler) DeleteDonation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.DonationService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete donation failed")
		return
	}
	response.Success(c, nil)
}
