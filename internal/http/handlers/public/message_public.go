package public

import (
	"errors"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitMessageRequest 联系表单请求
type SubmitMessageRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Body        string `json:"body" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// SubmitMessage 前台提交联系消息
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		respondError(c, response.CodeBadRequest, "captcha invalid", nil)
		return
	}

	message, err := h.MessageService.Submit(service.SubmitMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Body:     req.Body,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidParam) {
			respondError(c, response.CodeBadRequest, "invalid message", nil)
			return
		}
		respondError(c, response.CodeInternal, "submit message failed", err)
		return
	}

	requestLog(c).Infow("message_submitted", "message_id", message.ID)
	response.Success(c, gin.H{"id": message.ID})
}
