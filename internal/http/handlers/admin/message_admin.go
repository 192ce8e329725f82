package admin

import (
	"strconv"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminMessages 获取消息列表 (Admin)
func (h *Handler) GetAdminMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.MessageListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_read"); raw != "" {
		isRead := raw == "true" || raw == "1"
		filter.IsRead = &isRead
	}

	messages, total, err := h.MessageService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch messages failed", err)
		return
	}

	response.SuccessWithPage(c, messages, buildPagination(page, pageSize, total))
}

// GetAdminMessage 获取消息详情 (Admin)
func (h *Handler) GetAdminMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	message, err := h.MessageService.Get(id)
	if err != nil {
		h.respondContentError(c, err, "fetch message failed")
		return
	}
	response.Success(c, message)
}

// MarkMessageReadRequest 标记已读请求
type MarkMessageReadRequest struct {
	IsRead bool `json:"is_read"`
}

// MarkMessageRead 标记消息已读状态
func (h *Handler) MarkMessageRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req MarkMessageReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.MessageService.MarkRead(id, req.IsRead); err != nil {
		h.respondContentError(c, err, "update message failed")
		return
	}
	response.Success(c, nil)
}

// DeleteMessage 删除消息
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.MessageService.Delete(id); err != nil {
		h.respondContentError(c, err, "delete message failed")
		return
	}
	response.Success(c, nil)
}

// GetUnreadMessageCount 未读消息数量
func (h *Handler) GetUnreadMessageCount(c *gin.Context) {
	count, err := h.MessageService.UnreadCount()
	if err != nil {
		respondError(c, response.CodeInternal, "fetch unread count failed", err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
