package service

import (
	"errors"
	"testing"

	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminAccountServiceTest(t *testing.T) (*AdminAccountService, repository.AdminRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate admin failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	repo := repository.NewAdminRepository(db)
	auth := NewAuthService(cfg, repo)
	return NewAdminAccountService(cfg, repo, auth), repo
}

func TestCreateAdminValidation(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	if _, err := svc.Create(CreateAdminInput{Username: "", Password: "pw"}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("empty username want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Create(CreateAdminInput{Username: "x", Password: "pw", Role: "owner"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("unknown role want ErrInvalidRole got %v", err)
	}
	if _, err := svc.Create(CreateAdminInput{
		Username:    "x",
		Password:    "pw",
		Role:        constants.AdminRoleEditor,
		Permissions: []string{"manage_everything"},
	}); !errors.Is(err, ErrInvalidCapability) {
		t.Fatalf("unknown capability want ErrInvalidCapability got %v", err)
	}
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	if _, err := svc.Create(CreateAdminInput{Username: "editor", Password: "pw", Role: constants.AdminRoleEditor}); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if _, err := svc.Create(CreateAdminInput{Username: "editor", Password: "pw2", Role: constants.AdminRoleEditor}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("duplicate username want ErrUsernameExists got %v", err)
	}
}

func TestCreateEditorWithEmptyPermissionsIsValid(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	admin, err := svc.Create(CreateAdminInput{Username: "limited", Password: "pw", Role: constants.AdminRoleEditor})
	if err != nil {
		t.Fatalf("create editor failed: %v", err)
	}
	if len(admin.Permissions) != 0 {
		t.Fatalf("expected empty permission list, got %v", admin.Permissions)
	}
}

func TestCreateAdminDeduplicatesPermissions(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	admin, err := svc.Create(CreateAdminInput{
		Username: "editor",
		Password: "pw",
		Role:     constants.AdminRoleEditor,
		Permissions: []string{
			constants.CapabilityManageEvents,
			constants.CapabilityManageEvents,
			constants.CapabilityManageGallery,
		},
	})
	if err != nil {
		t.Fatalf("create editor failed: %v", err)
	}
	if len(admin.Permissions) != 2 {
		t.Fatalf("expected deduplicated permissions, got %v", admin.Permissions)
	}
}

func TestDeleteLastSuperadminRejected(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	boss, err := svc.Create(CreateAdminInput{Username: "boss", Password: "pw", Role: constants.AdminRoleSuperadmin})
	if err != nil {
		t.Fatalf("create superadmin failed: %v", err)
	}

	if err := svc.Delete(boss.ID); !errors.Is(err, ErrLastSuperadmin) {
		t.Fatalf("deleting last superadmin want ErrLastSuperadmin got %v", err)
	}

	// 有第二名超级管理员后允许删除
	if _, err := svc.Create(CreateAdminInput{Username: "boss2", Password: "pw", Role: constants.AdminRoleSuperadmin}); err != nil {
		t.Fatalf("create second superadmin failed: %v", err)
	}
	if err := svc.Delete(boss.ID); err != nil {
		t.Fatalf("delete with remaining superadmin failed: %v", err)
	}
}

func TestDemoteLastSuperadminRejected(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	boss, err := svc.Create(CreateAdminInput{Username: "boss", Password: "pw", Role: constants.AdminRoleSuperadmin})
	if err != nil {
		t.Fatalf("create superadmin failed: %v", err)
	}

	editorRole := constants.AdminRoleEditor
	if _, err := svc.Update(boss.ID, UpdateAdminInput{Role: &editorRole}); !errors.Is(err, ErrLastSuperadmin) {
		t.Fatalf("demoting last superadmin want ErrLastSuperadmin got %v", err)
	}
}

func TestUpdatePermissionsDoesNotAffectExistingBehavior(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	admin, err := svc.Create(CreateAdminInput{
		Username:    "editor",
		Password:    "pw",
		Role:        constants.AdminRoleEditor,
		Permissions: []string{constants.CapabilityManageEvents},
	})
	if err != nil {
		t.Fatalf("create editor failed: %v", err)
	}

	newPerms := []string{constants.CapabilityManageDonations}
	updated, err := svc.Update(admin.ID, UpdateAdminInput{Permissions: &newPerms})
	if err != nil {
		t.Fatalf("update permissions failed: %v", err)
	}
	if len(updated.Permissions) != 1 || updated.Permissions[0] != constants.CapabilityManageDonations {
		t.Fatalf("unexpected permissions after update: %v", updated.Permissions)
	}
}

func TestCapabilitiesCatalogStable(t *testing.T) {
	svc, _ := setupAdminAccountServiceTest(t)

	catalog := svc.Capabilities()
	if len(catalog) != len(constants.Capabilities) {
		t.Fatalf("catalog size want %d got %d", len(constants.Capabilities), len(catalog))
	}
	// 返回副本，调用方修改不影响目录
	catalog[0] = "mutated"
	if constants.Capabilities[0] == "mutated" {
		t.Fatalf("catalog must not share backing array with constants")
	}
}
