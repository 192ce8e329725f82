package service

import (
	"strings"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// VolunteerService 志愿者报名业务服务
type VolunteerService struct {
	repo      repository.VolunteerRepository
	eventRepo repository.EventRepository
}

// NewVolunteerService 创建志愿者服务
func NewVolunteerService(repo repository.VolunteerRepository, eventRepo repository.EventRepository) *VolunteerService {
	return &VolunteerService{repo: repo, eventRepo: eventRepo}
}

// VolunteerSignupInput 前台报名输入
type VolunteerSignupInput struct {
	Name       string
	Email      string
	Phone      string
	Skills     string
	Motivation string
	EventID    *uint
}

var allowedVolunteerStatuses = map[string]struct{}{
	constants.VolunteerStatusPending:  {},
	constants.VolunteerStatusApproved: {},
	constants.VolunteerStatusRejected: {},
}

// Signup 前台提交志愿者报名
func (s *VolunteerService) Signup(input VolunteerSignupInput) (*models.Volunteer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, ErrInvalidParam
	}

	if input.EventID != nil && *input.EventID > 0 {
		event, err := s.eventRepo.GetByID(*input.EventID)
		if err != nil {
			return nil, err
		}
		if event == nil || !event.IsPublished {
			return nil, ErrNotFound
		}
	}

	exists, err := s.repo.ExistsByEmailAndEvent(email, input.EventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSignup
	}

	volunteer := models.Volunteer{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		Skills:     input.Skills,
		Motivation: input.Motivation,
		Status:     constants.VolunteerStatusPending,
		EventID:    input.EventID,
	}
	if err := s.repo.Create(&volunteer); err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// ListAdmin 获取后台报名列表
func (s *VolunteerService) ListAdmin(filter repository.VolunteerListFilter) ([]models.Volunteer, int64, error) {
	return s.repo.List(filter)
}

// Get 报名详情
func (s *VolunteerService) Get(id uint) (*models.Volunteer, error) {
	volunteer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, ErrNotFound
	}
	return volunteer, nil
}

// UpdateStatus 审核报名状态
func (s *VolunteerService) UpdateStatus(id uint, status string) (*models.Volunteer, error) {
	if _, ok := allowedVolunteerStatuses[status]; !ok {
		return nil, ErrInvalidParam
	}

	volunteer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, ErrNotFound
	}

	volunteer.Status = status
	if err := s.repo.Update(volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

// Delete 删除报名
func (s *VolunteerService) Delete(id uint) error {
	volunteer, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if volunteer == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
