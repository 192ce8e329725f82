package service

import (
	"strings"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// TestimonialService 感言业务服务
type TestimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService 创建感言服务
func NewTestimonialService(repo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// TestimonialInput 创建/更新感言输入
type TestimonialInput struct {
	AuthorName  string
	AuthorTitle string
	Avatar      string
	Quote       string
	IsPublished *bool
	SortOrder   *int
}

// ListPublic 获取公开感言列表
func (s *TestimonialService) ListPublic(page, pageSize int) ([]models.Testimonial, int64, error) {
	filter := repository.TestimonialListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
	}
	return s.repo.List(filter)
}

// ListAdmin 获取后台感言列表
func (s *TestimonialService) ListAdmin(page, pageSize int) ([]models.Testimonial, int64, error) {
	filter := repository.TestimonialListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	return s.repo.List(filter)
}

// Get 感言详情
func (s *TestimonialService) Get(id uint) (*models.Testimonial, error) {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, ErrNotFound
	}
	return testimonial, nil
}

// Create 创建感言
func (s *TestimonialService) Create(input TestimonialInput) (*models.Testimonial, error) {
	authorName := strings.TrimSpace(input.AuthorName)
	quote := strings.TrimSpace(input.Quote)
	if authorName == "" || quote == "" {
		return nil, ErrInvalidParam
	}

	testimonial := models.Testimonial{
		AuthorName:  authorName,
		AuthorTitle: strings.TrimSpace(input.AuthorTitle),
		Avatar:      input.Avatar,
		Quote:       quote,
	}
	if input.IsPublished != nil {
		testimonial.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		testimonial.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&testimonial); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update 更新感言
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*models.Testimonial, error) {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, ErrNotFound
	}

	authorName := strings.TrimSpace(input.AuthorName)
	quote := strings.TrimSpace(input.Quote)
	if authorName == "" || quote == "" {
		return nil, ErrInvalidParam
	}

	testimonial.AuthorName = authorName
	testimonial.AuthorTitle = strings.TrimSpace(input.AuthorTitle)
	testimonial.Avatar = input.Avatar
	testimonial.Quote = quote
	if input.IsPublished != nil {
		testimonial.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		testimonial.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete 删除感言
func (s *TestimonialService) Delete(id uint) error {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if testimonial == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
