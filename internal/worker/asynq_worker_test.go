package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/provider"
	"github.com/aidlink-next/internal/queue"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupReceiptConsumerTest(t *testing.T) (*Consumer, repository.DonationRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Donation{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	repo := repository.NewDonationRepository(db)
	return NewConsumer(&provider.Container{DonationRepo: repo}), repo
}

func receiptTask(t *testing.T, donationID uint) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(queue.DonationReceiptPayload{DonationID: donationID})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskDonationReceipt, payload)
}

func TestHandleDonationReceiptAssignsNumberWhenReceived(t *testing.T) {
	consumer, repo := setupReceiptConsumerTest(t)

	now := time.Now()
	donation := &models.Donation{
		DonorName:  "Ann",
		Amount:     models.NewMoneyFromFloat(50),
		Currency:   "USD",
		Method:     constants.DonationMethodCash,
		Status:     constants.DonationStatusReceived,
		ReceivedAt: &now,
	}
	if err := repo.Create(donation); err != nil {
		t.Fatalf("create donation failed: %v", err)
	}

	if err := consumer.handleDonationReceipt(context.Background(), receiptTask(t, donation.ID)); err != nil {
		t.Fatalf("handle receipt failed: %v", err)
	}

	refreshed, err := repo.GetByID(donation.ID)
	if err != nil {
		t.Fatalf("get donation failed: %v", err)
	}
	if refreshed.ReceiptNo != buildReceiptNo(refreshed.CreatedAt, refreshed.ID) {
		t.Fatalf("receipt no want %q got %q", buildReceiptNo(refreshed.CreatedAt, refreshed.ID), refreshed.ReceiptNo)
	}
}

func TestHandleDonationReceiptSkipsPledgedDonation(t *testing.T) {
	consumer, repo := setupReceiptConsumerTest(t)

	donation := &models.Donation{
		DonorName: "Ben",
		Amount:    models.NewMoneyFromFloat(25),
		Currency:  "USD",
		Method:    constants.DonationMethodBankTransfer,
		Status:    constants.DonationStatusPledged,
	}
	if err := repo.Create(donation); err != nil {
		t.Fatalf("create donation failed: %v", err)
	}

	if err := consumer.handleDonationReceipt(context.Background(), receiptTask(t, donation.ID)); err != nil {
		t.Fatalf("handle receipt failed: %v", err)
	}

	refreshed, err := repo.GetByID(donation.ID)
	if err != nil {
		t.Fatalf("get donation failed: %v", err)
	}
	if refreshed.ReceiptNo != "" {
		t.Fatalf("pledged donation must not get receipt no, got %q", refreshed.ReceiptNo)
	}
}

func TestHandleDonationReceiptKeepsExistingNumber(t *testing.T) {
	consumer, repo := setupReceiptConsumerTest(t)

	now := time.Now()
	donation := &models.Donation{
		DonorName:  "Cam",
		Amount:     models.NewMoneyFromFloat(80),
		Currency:   "USD",
		Method:     constants.DonationMethodCash,
		Status:     constants.DonationStatusReceived,
		ReceivedAt: &now,
		ReceiptNo:  "RCPT-2025-000099",
	}
	if err := repo.Create(donation); err != nil {
		t.Fatalf("create donation failed: %v", err)
	}

	if err := consumer.handleDonationReceipt(context.Background(), receiptTask(t, donation.ID)); err != nil {
		t.Fatalf("handle receipt failed: %v", err)
	}

	refreshed, err := repo.GetByID(donation.ID)
	if err != nil {
		t.Fatalf("get donation failed: %v", err)
	}
	if refreshed.ReceiptNo != "RCPT-2025-000099" {
		t.Fatalf("existing receipt no must be kept, got %q", refreshed.ReceiptNo)
	}
}

func TestBuildReceiptNoPadsDonationID(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	got := buildReceiptNo(createdAt, 42)
	want := "RCPT-2026-000042"
	if got != want {
		t.Fatalf("unexpected receipt no, want %q, got %q", want, got)
	}
}

func TestBuildReceiptNoLargeIDNotTruncated(t *testing.T) {
	createdAt := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	got := buildReceiptNo(createdAt, 1234567)
	want := "RCPT-2025-1234567"
	if got != want {
		t.Fatalf("unexpected receipt no, want %q, got %q", want, got)
	}
}

func TestBuildReceiptNoZeroTimeUsesCurrentYear(t *testing.T) {
	got := buildReceiptNo(time.Time{}, 7)
	want := "RCPT-" + time.Now().Format("2006") + "-000007"
	if got != want {
		t.Fatalf("unexpected receipt no, want %q, got %q", want, got)
	}
}
