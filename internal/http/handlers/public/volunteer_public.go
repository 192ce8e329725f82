package public

import (
	"errors"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// VolunteerSignupRequest 志愿者报名请求
type VolunteerSignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Skills      string `json:"skills"`
	Motivation  string `json:"motivation"`
	EventID     *uint  `json:"event_id"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// VolunteerSignup 前台志愿者报名
func (h *Handler) VolunteerSignup(c *gin.Context) {
	var req VolunteerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		respondError(c, response.CodeBadRequest, "captcha invalid", nil)
		return
	}

	volunteer, err := h.VolunteerService.Signup(service.VolunteerSignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		Motivation: req.Motivation,
		EventID:    req.EventID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSignup):
			response.Conflict(c, "already signed up for this event")
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "event not found", nil)
		case errors.Is(err, service.ErrInvalidParam):
			respondError(c, response.CodeBadRequest, "invalid signup", nil)
		default:
			respondError(c, response.CodeInternal, "signup failed", err)
		}
		return
	}

	requestLog(c).Infow("volunteer_signed_up", "volunteer_id", volunteer.ID)
	response.Success(c, gin.H{"id": volunteer.ID, "status": volunteer.Status})
}
