package admin

import (
	"errors"

	"github.com/aidlink-next/internal/http/response"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminAccounts 获取管理员账号列表
func (h *Handler) GetAdminAccounts(c *gin.Context) {
	admins, err := h.AdminAccountService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "fetch admins failed", err)
		return
	}
	response.Success(c, admins)
}

// GetAdminAccount 获取管理员账号详情
func (h *Handler) GetAdminAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	admin, err := h.AdminAccountService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "admin not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "fetch admin failed", err)
		return
	}
	response.Success(c, admin)
}

// CreateAdminAccountRequest 创建管理员账号请求
type CreateAdminAccountRequest struct {
	Username    string   `json:"username" binding:"required"`
	Password    string   `json:"password" binding:"required"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// CreateAdminAccount 创建管理员账号
func (h *Handler) CreateAdminAccount(c *gin.Context) {
	var req CreateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	admin, err := h.AdminAccountService.Create(service.CreateAdminInput{
		Username:    req.Username,
		Password:    req.Password,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.respondAccountError(c, err, "create admin failed")
		return
	}

	requestLog(c).Infow("admin_account_created", "admin_id", admin.ID, "username", admin.Username, "role", admin.Role)
	response.Success(c, admin)
}

// UpdateAdminAccountRequest 更新管理员账号请求
type UpdateAdminAccountRequest struct {
	Role        *string   `json:"role"`
	Permissions *[]string `json:"permissions"`
}

// UpdateAdminAccount 更新管理员角色与权限
func (h *Handler) UpdateAdminAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	admin, err := h.AdminAccountService.Update(id, service.UpdateAdminInput{
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.respondAccountError(c, err, "update admin failed")
		return
	}

	requestLog(c).Infow("admin_account_updated", "admin_id", admin.ID, "role", admin.Role)
	response.Success(c, admin)
}

// ResetAdminPasswordRequest 重置密码请求
type ResetAdminPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetAdminAccountPassword 重置管理员密码
func (h *Handler) ResetAdminAccountPassword(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ResetAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.AdminAccountService.ResetPassword(id, req.NewPassword); err != nil {
		h.respondAccountError(c, err, "reset password failed")
		return
	}

	requestLog(c).Infow("admin_password_reset", "admin_id", id)
	response.Success(c, nil)
}

// DeleteAdminAccount 删除管理员账号
func (h *Handler) DeleteAdminAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.AdminAccountService.Delete(id); err != nil {
		h.respondAccountError(c, err, "delete admin failed")
		return
	}

	requestLog(c).Infow("admin_account_deleted", "admin_id", id)
	response.Success(c, nil)
}

// GetCapabilities 获取权限目录
func (h *Handler) GetCapabilities(c *gin.Context) {
	response.Success(c, h.AdminAccountService.Capabilities())
}

func (h *Handler) respondAccountError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "admin not found", nil)
	case errors.Is(err, service.ErrUsernameExists):
		respondError(c, response.CodeConflict, "username already exists", nil)
	case errors.Is(err, service.ErrLastSuperadmin):
		respondError(c, response.CodeConflict, "cannot remove the last superadmin", nil)
	case errors.Is(err, service.ErrInvalidRole):
		respondError(c, response.CodeBadRequest, "unknown role", nil)
	case errors.Is(err, service.ErrInvalidCapability):
		respondError(c, response.CodeBadRequest, "unknown capability", nil)
	case errors.Is(err, service.ErrWeakPassword):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidParam):
		respondError(c, response.CodeBadRequest, "bad request", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}
