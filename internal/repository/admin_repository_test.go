package repository

import (
	"testing"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminRepositoryTest(t *testing.T) *GormAdminRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate admin failed: %v", err)
	}
	return NewAdminRepository(db)
}

func createAdminRow(t *testing.T, repo *GormAdminRepository, username, role string) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		Username:     username,
		PasswordHash: "x",
		Role:         role,
		Permissions:  models.StringList{},
	}
	if err := repo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestDeleteGuardedKeepsLastOfRole(t *testing.T) {
	repo := setupAdminRepositoryTest(t)
	boss := createAdminRow(t, repo, "boss", constants.AdminRoleSuperadmin)

	allowed, err := repo.DeleteGuarded(boss.ID, constants.AdminRoleSuperadmin)
	if err != nil {
		t.Fatalf("guarded delete failed: %v", err)
	}
	if allowed {
		t.Fatalf("deleting the only superadmin must be refused")
	}
	remaining, err := repo.GetByID(boss.ID)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if remaining == nil {
		t.Fatalf("refused delete must not remove the row")
	}
}

func TestDeleteGuardedAllowsWhenOthersRemain(t *testing.T) {
	repo := setupAdminRepositoryTest(t)
	boss := createAdminRow(t, repo, "boss", constants.AdminRoleSuperadmin)
	createAdminRow(t, repo, "boss2", constants.AdminRoleSuperadmin)

	allowed, err := repo.DeleteGuarded(boss.ID, constants.AdminRoleSuperadmin)
	if err != nil {
		t.Fatalf("guarded delete failed: %v", err)
	}
	if !allowed {
		t.Fatalf("delete with a remaining superadmin should be allowed")
	}
	gone, err := repo.GetByID(boss.ID)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("allowed delete must remove the row")
	}
}

func TestDeleteGuardedWithoutGuardRole(t *testing.T) {
	repo := setupAdminRepositoryTest(t)
	editor := createAdminRow(t, repo, "editor", constants.AdminRoleEditor)

	allowed, err := repo.DeleteGuarded(editor.ID, "")
	if err != nil {
		t.Fatalf("guarded delete failed: %v", err)
	}
	if !allowed {
		t.Fatalf("delete without guard role should be allowed")
	}
}

func TestUpdateGuardedRefusesDemotingLastOfRole(t *testing.T) {
	repo := setupAdminRepositoryTest(t)
	boss := createAdminRow(t, repo, "boss", constants.AdminRoleSuperadmin)

	boss.Role = constants.AdminRoleEditor
	allowed, err := repo.UpdateGuarded(boss, constants.AdminRoleSuperadmin)
	if err != nil {
		t.Fatalf("guarded update failed: %v", err)
	}
	if allowed {
		t.Fatalf("demoting the only superadmin must be refused")
	}
	stored, err := repo.GetByID(boss.ID)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if stored.Role != constants.AdminRoleSuperadmin {
		t.Fatalf("refused update must not change role, got %q", stored.Role)
	}
}

func TestUpdateGuardedAllowsWhenOthersRemain(t *testing.T) {
	repo := setupAdminRepositoryTest(t)
	boss := createAdminRow(t, repo, "boss", constants.AdminRoleSuperadmin)
	createAdminRow(t, repo, "boss2", constants.AdminRoleSuperadmin)

	boss.Role = constants.AdminRoleEditor
	allowed, err := repo.UpdateGuarded(boss, constants.AdminRoleSuperadmin)
	if err != nil {
		t.Fatalf("guarded update failed: %v", err)
	}
	if !allowed {
		t.Fatalf("demotion with a remaining superadmin should be allowed")
	}
	stored, err := repo.GetByID(boss.ID)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if stored.Role != constants.AdminRoleEditor {
		t.Fatalf("role want editor got %q", stored.Role)
	}
}
