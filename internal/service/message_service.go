package service

import (
	"strings"

	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/queue"
	"github.com/aidlink-next/internal/repository"
)

// MessageService 联系消息业务服务
type MessageService struct {
	repo  repository.MessageRepository
	queue *queue.Client
}

// NewMessageService 创建消息服务
func NewMessageService(repo repository.MessageRepository, queueClient *queue.Client) *MessageService {
	return &MessageService{repo: repo, queue: queueClient}
}

// SubmitMessageInput 前台提交消息输入
type SubmitMessageInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Body     string
	ClientIP string
}

// Submit 前台提交联系消息
func (s *MessageService) Submit(input SubmitMessageInput) (*models.Message, error) {
	name := strings.TrimSpace(input.Name)
	body := strings.TrimSpace(input.Body)
	if name == "" || body == "" {
		return nil, ErrInvalidParam
	}

	message := models.Message{
		Name:     name,
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Subject:  strings.TrimSpace(input.Subject),
		Body:     body,
		ClientIP: input.ClientIP,
	}
	if err := s.repo.Create(&message); err != nil {
		return nil, err
	}

	s.enqueueUnreadSync("message_submitted")
	return &message, nil
}

// ListAdmin 获取后台消息列表
func (s *MessageService) ListAdmin(filter repository.MessageListFilter) ([]models.Message, int64, error) {
	return s.repo.List(filter)
}

// Get 消息详情
func (s *MessageService) Get(id uint) (*models.Message, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// MarkRead 标记已读状态
func (s *MessageService) MarkRead(id uint, read bool) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	if err := s.repo.MarkRead(id, read); err != nil {
		return err
	}
	s.enqueueUnreadSync("message_read_state_changed")
	return nil
}

// Delete 删除消息
func (s *MessageService) Delete(id uint) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.enqueueUnreadSync("message_deleted")
	return nil
}

// UnreadCount 未读消息数量
func (s *MessageService) UnreadCount() (int64, error) {
	return s.repo.CountUnread()
}

func (s *MessageService) enqueueUnreadSync(reason string) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueMessageUnreadSync(queue.MessageUnreadSyncPayload{Reason: reason}); err != nil {
		logger.Warnw("message_unread_sync_enqueue_failed", "reason", reason, "error", err)
	}
}
