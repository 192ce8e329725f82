package queue

import (
	"encoding/json"

	"github.com/aidlink-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDonationReceipt 捐赠收据编号生成任务
	TaskDonationReceipt = constants.TaskDonationReceipt
	// TaskMessageUnreadSync 未读消息计数刷新任务
	TaskMessageUnreadSync = constants.TaskMessageUnreadSync
)

// DonationReceiptPayload 捐赠收据任务载荷
type DonationReceiptPayload struct {
	DonationID uint `json:"donation_id"`
}

// MessageUnreadSyncPayload 未读消息计数刷新任务载荷
type MessageUnreadSyncPayload struct {
	Reason string `json:"reason"`
}

// NewDonationReceiptTask 创建捐赠收据任务
func NewDonationReceiptTask(payload DonationReceiptPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDonationReceipt, body), nil
}

// NewMessageUnreadSyncTask 创建未读消息计数刷新任务
func NewMessageUnreadSyncTask(payload MessageUnreadSyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMessageUnreadSync, body), nil
}
