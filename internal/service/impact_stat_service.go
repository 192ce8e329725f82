package service

import (
	"strings"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// ImpactStatService 影响力指标业务服务
type ImpactStatService struct {
	repo repository.ImpactStatRepository
}

// NewImpactStatService 创建指标服务
func NewImpactStatService(repo repository.ImpactStatRepository) *ImpactStatService {
	return &ImpactStatService{repo: repo}
}

// ImpactStatInput 创建/更新指标输入
type ImpactStatInput struct {
	Label     string
	Value     *int64
	Unit      string
	Icon      string
	IsActive  *bool
	SortOrder *int
}

// ListPublic 获取公开指标列表
func (s *ImpactStatService) ListPublic() ([]models.ImpactStat, error) {
	return s.repo.List(true)
}

// ListAdmin 获取后台指标列表
func (s *ImpactStatService) ListAdmin() ([]models.ImpactStat, error) {
	return s.repo.List(false)
}

// Get 指标详情
func (s *ImpactStatService) Get(id uint) (*models.ImpactStat, error) {
	stat, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, ErrNotFound
	}
	return stat, nil
}

// Create 创建指标
func (s *ImpactStatService) Create(input ImpactStatInput) (*models.ImpactStat, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, ErrInvalidParam
	}

	stat := models.ImpactStat{
		Label: label,
		Unit:  input.Unit,
		Icon:  input.Icon,
	}
	if input.Value != nil {
		stat.Value = *input.Value
	}
	stat.IsActive = true
	if input.IsActive != nil {
		stat.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		stat.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

// Update 更新指标
func (s *ImpactStatService) Update(id uint, input ImpactStatInput) (*models.ImpactStat, error) {
	stat, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, ErrNotFound
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, ErrInvalidParam
	}

	stat.Label = label
	stat.Unit = input.Unit
	stat.Icon = input.Icon
	if input.Value != nil {
		stat.Value = *input.Value
	}
	if input.IsActive != nil {
		stat.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		stat.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// Delete 删除指标
func (s *ImpactStatService) Delete(id uint) error {
	stat, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if stat == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
