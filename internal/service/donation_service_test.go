package service

import (
	"errors"
	"testing"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDonationServiceTest(t *testing.T) (*DonationService, *ProjectService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Project{}, &models.Donation{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	projectRepo := repository.NewProjectRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	return NewDonationService(donationRepo, projectRepo, nil), NewProjectService(projectRepo)
}

func money(t *testing.T, amount float64) *models.Money {
	t.Helper()
	m := models.NewMoneyFromFloat(amount)
	return &m
}

func TestDonationCreateValidation(t *testing.T) {
	svc, _ := setupDonationServiceTest(t)

	if _, err := svc.Create(DonationInput{DonorName: "", Amount: money(t, 10), Method: constants.DonationMethodCash}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("empty donor name want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Create(DonationInput{DonorName: "Ann", Amount: money(t, 0), Method: constants.DonationMethodCash}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero amount want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Create(DonationInput{DonorName: "Ann", Amount: money(t, 10), Method: "crypto"}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("unknown method want ErrInvalidParam got %v", err)
	}
}

func TestDonationCreateDefaultsToPledged(t *testing.T) {
	svc, _ := setupDonationServiceTest(t)

	donation, err := svc.Create(DonationInput{
		DonorName: "Ann",
		Amount:    money(t, 25.50),
		Method:    constants.DonationMethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("create donation failed: %v", err)
	}
	if donation.Status != constants.DonationStatusPledged {
		t.Fatalf("status want pledged got %q", donation.Status)
	}
	if donation.Currency != "USD" {
		t.Fatalf("currency want USD got %q", donation.Currency)
	}
	if donation.ReceivedAt != nil {
		t.Fatalf("pledged donation should not have received time")
	}
}

func TestDonationMarkReceivedUpdatesProjectRaised(t *testing.T) {
	svc, projectSvc := setupDonationServiceTest(t)

	project, err := projectSvc.Create(ProjectInput{Slug: "well", Title: "Clean Water Well", GoalAmount: money(t, 1000)})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	donation, err := svc.Create(DonationInput{
		DonorName: "Ann",
		Amount:    money(t, 100),
		Method:    constants.DonationMethodCash,
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("create donation failed: %v", err)
	}

	received, err := svc.MarkReceived(donation.ID)
	if err != nil {
		t.Fatalf("mark received failed: %v", err)
	}
	if received.Status != constants.DonationStatusReceived {
		t.Fatalf("status want received got %q", received.Status)
	}
	if received.ReceivedAt == nil {
		t.Fatalf("expected received time to be set")
	}

	// 重复标记不再累加
	if _, err := svc.MarkReceived(donation.ID); err != nil {
		t.Fatalf("idempotent mark received failed: %v", err)
	}

	refreshed, err := projectSvc.Get(project.ID)
	if err != nil {
		t.Fatalf("get project failed: %v", err)
	}
	if refreshed.RaisedAmount.String() != "100.00" {
		t.Fatalf("raised amount want 100.00 got %s", refreshed.RaisedAmount.String())
	}
}

func TestDonationCreateWithMissingProjectRejected(t *testing.T) {
	svc, _ := setupDonationServiceTest(t)

	missing := uint(9999)
	if _, err := svc.Create(DonationInput{
		DonorName: "Ann",
		Amount:    money(t, 10),
		Method:    constants.DonationMethodCash,
		ProjectID: &missing,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing project want ErrNotFound got %v", err)
	}
}
