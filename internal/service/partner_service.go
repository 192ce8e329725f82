package service

import (
	"strings"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// PartnerService 合作伙伴业务服务
type PartnerService struct {
	repo repository.PartnerRepository
}

// NewPartnerService 创建合作伙伴服务
func NewPartnerService(repo repository.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

// PartnerInput 创建/更新合作伙伴输入
type PartnerInput struct {
	Name      string
	Logo      string
	Website   string
	Blurb     string
	IsActive  *bool
	SortOrder *int
}

// ListPublic 获取公开合作伙伴列表
func (s *PartnerService) ListPublic(page, pageSize int) ([]models.Partner, int64, error) {
	filter := repository.PartnerListFilter{
		Page:       page,
		PageSize:   pageSize,
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// ListAdmin 获取后台合作伙伴列表
func (s *PartnerService) ListAdmin(page, pageSize int) ([]models.Partner, int64, error) {
	filter := repository.PartnerListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	return s.repo.List(filter)
}

// Get 合作伙伴详情
func (s *PartnerService) Get(id uint) (*models.Partner, error) {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrNotFound
	}
	return partner, nil
}

// Create 创建合作伙伴
func (s *PartnerService) Create(input PartnerInput) (*models.Partner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidParam
	}

	partner := models.Partner{
		Name:    name,
		Logo:    input.Logo,
		Website: strings.TrimSpace(input.Website),
		Blurb:   input.Blurb,
	}
	partner.IsActive = true
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		partner.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// Update 更新合作伙伴
func (s *PartnerService) Update(id uint, input PartnerInput) (*models.Partner, error) {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidParam
	}

	partner.Name = name
	partner.Logo = input.Logo
	partner.Website = strings.TrimSpace(input.Website)
	partner.Blurb = input.Blurb
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		partner.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Delete 删除合作伙伴
func (s *PartnerService) Delete(id uint) error {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if partner == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
