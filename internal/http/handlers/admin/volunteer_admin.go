package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminVolunteers 获取志愿者报名列表 (Admin)
func (h *Handler) GetAdminVolunteers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	eventID, _ := strconv.ParseUint(c.Query("event_id"), 10, 64)

	filter := repository.VolunteerListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		EventID:  uint(eventID),
	}

	volunteers, total, err := h.VolunteerService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch volunteers failed", err)
		return
	}

	response.SuccessWithPage(c, volunteers, buildPagination(page, pageSize, total))
}

// GetAdminVolunteer 获取报名详情 (Admin)
func (h *Handler) GetAdminVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	volunteer, err := h.VolunteerService.Get(id)
	if err != nil {
		h.respondContentError(c, err, "fetch volunteer failed")
		return
	}
	response.Success(c, volunteer)
}

// UpdateVolunteerStatusRequest 审核报名请求
type UpdateVolunteerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateVolunteerStatus 审核志愿者报名
func (h *Handler) UpdateVolunteerStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateVolunteerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	volunteer, err := h.VolunteerService.UpdateStatus(id, req.Status)
	if err != nil {
		h.respondContentError(c, err, "update volunteer failed")
		return
	}

	requestLog(c).Infow("volunteer_status_updated", "volunteer_id", volunteer.ID, "status", volunteer.Status)
	response.Success(c, volunteer)
}

// DeleteVolunteer 删除报名
func (h *Handler) DeleteVolunteer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.VolunteerService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete volunteer failed")
		return
	}
	response.Success(c, nil)
}
