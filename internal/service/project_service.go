package service

import (
	"strings"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// ProjectService 项目业务服务
type ProjectService struct {
	repo repository.ProjectRepository
}

// NewProjectService 创建项目服务
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectInput 创建/更新项目输入
type ProjectInput struct {
	Slug        string
	Title       string
	Summary     string
	Content     string
	CoverImage  string
	Status      string
	GoalAmount  *models.Money
	IsPublished *bool
	SortOrder   *int
}

var allowedProjectStatuses = map[string]struct{}{
	constants.ProjectStatusOngoing:   {},
	constants.ProjectStatusCompleted: {},
}

// ListPublic 获取公开项目列表
func (s *ProjectService) ListPublic(status string, page, pageSize int) ([]models.Project, int64, error) {
	filter := repository.ProjectListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        status,
		OnlyPublished: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug 获取公开项目详情
func (s *ProjectService) GetPublicBySlug(slug string) (*models.Project, error) {
	project, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// ListAdmin 获取后台项目列表
func (s *ProjectService) ListAdmin(status, search string, page, pageSize int) ([]models.Project, int64, error) {
	filter := repository.ProjectListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
		Search:   search,
		OrderBy:  "created_at DESC",
	}
	return s.repo.List(filter)
}

// Get 项目详情
func (s *ProjectService) Get(id uint) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// Create 创建项目
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidParam
	}

	status := input.Status
	if status == "" {
		status = constants.ProjectStatusOngoing
	}
	if _, ok := allowedProjectStatuses[status]; !ok {
		return nil, ErrInvalidParam
	}

	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	project := models.Project{
		Slug:       slug,
		Title:      title,
		Summary:    input.Summary,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Status:     status,
	}
	if input.GoalAmount != nil {
		project.GoalAmount = *input.GoalAmount
	}
	if input.IsPublished != nil {
		project.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update 更新项目
func (s *ProjectService) Update(id uint, input ProjectInput) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidParam
	}
	if input.Status != "" {
		if _, ok := allowedProjectStatuses[input.Status]; !ok {
			return nil, ErrInvalidParam
		}
		project.Status = input.Status
	}

	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	project.Slug = slug
	project.Title = title
	project.Summary = input.Summary
	project.Content = input.Content
	project.CoverImage = input.CoverImage
	if input.GoalAmount != nil {
		project.GoalAmount = *input.GoalAmount
	}
	if input.IsPublished != nil {
		project.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete 删除项目
func (s *ProjectService) Delete(id uint) error {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
