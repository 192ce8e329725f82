package service

import (
	"strings"
	"time"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/queue"
	"github.com/aidlink-next/internal/repository"
)

// DonationService 捐赠业务服务
type DonationService struct {
	repo        repository.DonationRepository
	projectRepo repository.ProjectRepository
	queue       *queue.Client
}

// NewDonationService 创建捐赠服务
func NewDonationService(repo repository.DonationRepository, projectRepo repository.ProjectRepository, queueClient *queue.Client) *DonationService {
	return &DonationService{
		repo:        repo,
		projectRepo: projectRepo,
		queue:       queueClient,
	}
}

// DonationInput 创建/更新捐赠输入
type DonationInput struct {
	DonorName  string
	DonorEmail string
	DonorPhone string
	Amount     *models.Money
	Currency   string
	Method     string
	Status     string
	ProjectID  *uint
	Note       string
}

var allowedDonationMethods = map[string]struct{}{
	constants.DonationMethodCash:         {},
	constants.DonationMethodBankTransfer: {},
	constants.DonationMethodInKind:       {},
	constants.DonationMethodOther:        {},
}

var allowedDonationStatuses = map[string]struct{}{
	constants.DonationStatusPledged:  {},
	constants.DonationStatusReceived: {},
}

// List 捐赠列表
func (s *DonationService) List(filter repository.DonationListFilter) ([]models.Donation, int64, error) {
	return s.repo.List(filter)
}

// Get 捐赠详情
func (s *DonationService) Get(id uint) (*models.Donation, error) {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrNotFound
	}
	return donation, nil
}

// Create 录入捐赠，收据编号由异步任务生成
func (s *DonationService) Create(input DonationInput) (*models.Donation, error) {
	donorName := strings.TrimSpace(input.DonorName)
	if donorName == "" || input.Amount == nil || !input.Amount.IsPositive() {
		return nil, ErrInvalidParam
	}
	if _, ok := allowedDonationMethods[input.Method]; !ok {
		return nil, ErrInvalidParam
	}

	status := input.Status
	if status == "" {
		status = constants.DonationStatusPledged
	}
	if _, ok := allowedDonationStatuses[status]; !ok {
		return nil, ErrInvalidParam
	}
	if err := s.ensureProjectExists(input.ProjectID); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	donation := models.Donation{
		DonorName:  donorName,
		DonorEmail: strings.TrimSpace(input.DonorEmail),
		DonorPhone: strings.TrimSpace(input.DonorPhone),
		Amount:     *input.Amount,
		Currency:   currency,
		Method:     input.Method,
		Status:     status,
		ProjectID:  input.ProjectID,
		Note:       input.Note,
	}
	if status == constants.DonationStatusReceived {
		now := time.Now()
		donation.ReceivedAt = &now
	}

	if err := s.repo.Create(&donation); err != nil {
		return nil, err
	}

	if status == constants.DonationStatusReceived {
		if donation.ProjectID != nil {
			if err := s.projectRepo.AddRaisedAmount(*donation.ProjectID, donation.Amount); err != nil {
				logger.Warnw("donation_add_raised_amount_failed", "donation_id", donation.ID, "project_id", *donation.ProjectID, "error", err)
			}
		}
		// 回执编号仅在捐赠到账后生成
		s.enqueueReceipt(donation.ID)
	}

	return &donation, nil
}

// MarkReceived 标记捐赠到账
func (s *DonationService) MarkReceived(id uint) (*models.Donation, error) {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrNotFound
	}
	if donation.Status == constants.DonationStatusReceived {
		return donation, nil
	}

	now := time.Now()
	donation.Status = constants.DonationStatusReceived
	donation.ReceivedAt = &now
	if err := s.repo.Update(donation); err != nil {
		return nil, err
	}

	if donation.ProjectID != nil {
		if err := s.projectRepo.AddRaisedAmount(*donation.ProjectID, donation.Amount); err != nil {
			logger.Warnw("donation_add_raised_amount_failed", "donation_id", donation.ID, "project_id", *donation.ProjectID, "error", err)
		}
	}
	s.enqueueReceipt(donation.ID)
	return donation, nil
}

// Update 更新捐赠基础信息
func (s *DonationService) Update(id uint, input DonationInput) (*models.Donation, error) {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(input.DonorName); name != "" {
		donation.DonorName = name
	}
	if input.DonorEmail != "" {
		donation.DonorEmail = strings.TrimSpace(input.DonorEmail)
	}
	if input.DonorPhone != "" {
		donation.DonorPhone = strings.TrimSpace(input.DonorPhone)
	}
	if input.Method != "" {
		if _, ok := allowedDonationMethods[input.Method]; !ok {
			return nil, ErrInvalidParam
		}
		donation.Method = input.Method
	}
	if input.Note != "" {
		donation.Note = input.Note
	}

	if err := s.repo.Update(donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// Delete 删除捐赠
func (s *DonationService) Delete(id uint) error {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if donation == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *DonationService) ensureProjectExists(projectID *uint) error {
	if projectID == nil || *projectID == 0 {
		return nil
	}
	project, err := s.projectRepo.GetByID(*projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}
	return nil
}

func (s *DonationService) enqueueReceipt(donationID uint) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueDonationReceipt(queue.DonationReceiptPayload{DonationID: donationID}); err != nil {
		logger.Warnw("donation_receipt_enqueue_failed", "donation_id", donationID, "error", err)
	}
}
