package service

import (
	"strings"

	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// AdminAccountService 管理员账号管理服务，仅超级管理员可操作
type AdminAccountService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
	auth      *AuthService
}

// NewAdminAccountService 创建账号管理服务
func NewAdminAccountService(cfg *config.Config, adminRepo repository.AdminRepository, auth *AuthService) *AdminAccountService {
	return &AdminAccountService{
		cfg:       cfg,
		adminRepo: adminRepo,
		auth:      auth,
	}
}

// CreateAdminInput 创建账号入参
type CreateAdminInput struct {
	Username    string
	Password    string
	Role        string
	Permissions []string
}

// UpdateAdminInput 更新账号入参
type UpdateAdminInput struct {
	Role        *string
	Permissions *[]string
}

// List 账号列表
func (s *AdminAccountService) List() ([]models.Admin, error) {
	return s.adminRepo.List()
}

// Get 账号详情
func (s *AdminAccountService) Get(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create 创建账号
func (s *AdminAccountService) Create(input CreateAdminInput) (*models.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidParam
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.AdminRoleEditor
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}
	permissions, err := normalizePermissions(role, input.Permissions)
	if err != nil {
		return nil, err
	}

	if err := s.auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Permissions:  permissions,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Update 更新账号角色与权限
func (s *AdminAccountService) Update(id uint, input UpdateAdminInput) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}

	role := admin.Role
	if input.Role != nil {
		role = strings.TrimSpace(*input.Role)
		if err := validateRole(role); err != nil {
			return nil, err
		}
	}

	// 降级最后一名超级管理员同样视为移除，计数与写入在仓库层同一事务内完成
	guardRole := ""
	if admin.Role == constants.AdminRoleSuperadmin && role != constants.AdminRoleSuperadmin {
		guardRole = constants.AdminRoleSuperadmin
	}

	permissions := []string(admin.Permissions)
	if input.Permissions != nil {
		permissions = *input.Permissions
	}
	normalized, err := normalizePermissions(role, permissions)
	if err != nil {
		return nil, err
	}

	admin.Role = role
	admin.Permissions = normalized
	allowed, err := s.adminRepo.UpdateGuarded(admin, guardRole)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrLastSuperadmin
	}
	return admin, nil
}

// ResetPassword 重置账号密码
func (s *AdminAccountService) ResetPassword(id uint, newPassword string) error {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	if err := s.auth.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.adminRepo.Update(admin)
}

// Delete 删除账号，拒绝删除最后一名超级管理员
func (s *AdminAccountService) Delete(id uint) error {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	guardRole := ""
	if admin.Role == constants.AdminRoleSuperadmin {
		guardRole = constants.AdminRoleSuperadmin
	}
	allowed, err := s.adminRepo.DeleteGuarded(id, guardRole)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrLastSuperadmin
	}
	return nil
}

// Capabilities 返回固定的权限目录
func (s *AdminAccountService) Capabilities() []string {
	capabilities := make([]string, 0, len(constants.Capabilities))
	capabilities = append(capabilities, constants.Capabilities...)
	return capabilities
}

func validateRole(role string) error {
	switch role {
	case constants.AdminRoleSuperadmin, constants.AdminRoleEditor:
		return nil
	default:
		return ErrInvalidRole
	}
}

// normalizePermissions 校验并去重权限列表。
// 超级管理员不存储权限快照，编辑者允许空列表。
func normalizePermissions(role string, permissions []string) (models.StringList, error) {
	if role == constants.AdminRoleSuperadmin {
		return models.StringList{}, nil
	}
	normalized := make(models.StringList, 0, len(permissions))
	seen := make(map[string]struct{}, len(permissions))
	for _, permission := range permissions {
		permission = strings.TrimSpace(permission)
		if permission == "" {
			continue
		}
		if !constants.IsValidCapability(permission) {
			return nil, ErrInvalidCapability
		}
		if _, ok := seen[permission]; ok {
			continue
		}
		seen[permission] = struct{}{}
		normalized = append(normalized, permission)
	}
	return normalized, nil
}
