package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aidlink-next/internal/cache"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/provider"
	"github.com/aidlink-next/internal/queue"

	"github.com/hibiken/asynq"
)

// unreadCountCacheKey 未读消息计数缓存键
const unreadCountCacheKey = "messages:unread_count"

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskDonationReceipt, c.handleDonationReceipt)
	mux.HandleFunc(queue.TaskMessageUnreadSync, c.handleMessageUnreadSync)
}

func (c *Consumer) handleDonationReceipt(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_donation_receipt_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.DonationReceiptPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_donation_receipt_unmarshal_failed", "error", err)
		return err
	}
	if payload.DonationID == 0 {
		logger.Debugw("worker_donation_receipt_skip_invalid_payload", "donation_id", payload.DonationID)
		return nil
	}
	donation, err := c.DonationRepo.GetByID(payload.DonationID)
	if err != nil {
		logger.Warnw("worker_donation_receipt_fetch_failed", "donation_id", payload.DonationID, "error", err)
		return err
	}
	if donation == nil {
		logger.Debugw("worker_donation_receipt_skip_not_found", "donation_id", payload.DonationID)
		return nil
	}
	// 未到账的捐赠不生成回执编号
	if donation.Status != constants.DonationStatusReceived {
		logger.Debugw("worker_donation_receipt_skip_not_received", "donation_id", donation.ID, "status", donation.Status)
		return nil
	}
	// 已有编号的不重复生成，保证任务可安全重试
	if donation.ReceiptNo != "" {
		logger.Debugw("worker_donation_receipt_skip_exists", "donation_id", donation.ID, "receipt_no", donation.ReceiptNo)
		return nil
	}
	donation.ReceiptNo = buildReceiptNo(donation.CreatedAt, donation.ID)
	if err := c.DonationRepo.Update(donation); err != nil {
		logger.Warnw("worker_donation_receipt_update_failed", "donation_id", donation.ID, "error", err)
		return err
	}
	logger.Infow("worker_donation_receipt_assigned", "donation_id", donation.ID, "receipt_no", donation.ReceiptNo)
	return nil
}

func (c *Consumer) handleMessageUnreadSync(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_message_unread_sync_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.MessageUnreadSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_message_unread_sync_unmarshal_failed", "error", err)
		return err
	}
	count, err := c.MessageRepo.CountUnread()
	if err != nil {
		logger.Warnw("worker_message_unread_sync_count_failed", "error", err)
		return err
	}
	if err := cache.SetJSON(ctx, unreadCountCacheKey, count, 10*time.Minute); err != nil {
		logger.Warnw("worker_message_unread_sync_cache_failed", "error", err)
	}
	logger.Debugw("worker_message_unread_sync_done", "reason", payload.Reason, "unread", count)
	return nil
}

// buildReceiptNo 生成捐赠收据编号，按创建年份加 ID 零填充
func buildReceiptNo(createdAt time.Time, donationID uint) string {
	year := createdAt.Year()
	if createdAt.IsZero() {
		year = time.Now().Year()
	}
	return fmt.Sprintf("RCPT-%d-%06d", year, donationID)
}
