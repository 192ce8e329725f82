package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.AdminRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate admin failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-auth-service"
	cfg.JWT.ExpireHours = 24
	repo := repository.NewAdminRepository(db)
	return NewAuthService(cfg, repo), repo
}

func createAdmin(t *testing.T, repo repository.AdminRepository, username, password, role string, permissions []string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  models.StringList(permissions),
	}
	if err := repo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestLoginSuccessReturnsTokenWithSnapshot(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	createAdmin(t, repo, "editor", "secret123", constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	admin, token, expiresAt, err := svc.Login("editor", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("expected last login time to be set")
	}
	if remaining := time.Until(expiresAt); remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.Role != constants.AdminRoleEditor {
		t.Fatalf("role want editor got %q", claims.Role)
	}
	if len(claims.Permissions) != 1 || claims.Permissions[0] != constants.CapabilityManageEvents {
		t.Fatalf("unexpected permissions snapshot: %v", claims.Permissions)
	}
}

func TestLoginSameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	createAdmin(t, repo, "known", "correct-pw", constants.AdminRoleEditor, nil)

	_, _, _, errUnknown := svc.Login("missing", "whatever")
	_, _, _, errWrongPw := svc.Login("known", "wrong-pw")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user error want ErrInvalidCredentials got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password error want ErrInvalidCredentials got %v", errWrongPw)
	}
}

func TestVerifySessionEmptyToken(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	if _, err := svc.VerifySession("", constants.CapabilityManageEvents); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token want ErrUnauthorized got %v", err)
	}
	if _, err := svc.VerifySession("   ", ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("blank token want ErrUnauthorized got %v", err)
	}
}

func TestVerifySessionTamperedTokenRejected(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	admin := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	token, _, err := svc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	// 篡改载荷部分：把角色改成 superadmin 后重编码，签名必然失效
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	tampered := strings.Replace(string(payload), `"editor"`, `"superadmin"`, 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))
	forged := strings.Join(parts, ".")

	if _, err := svc.VerifySession(forged, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("tampered token want ErrUnauthorized got %v", err)
	}
}

func TestVerifySessionWrongSigningKeyRejected(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	admin := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, nil)

	otherCfg := &config.Config{}
	otherCfg.JWT.SecretKey = "a-completely-different-secret"
	otherCfg.JWT.ExpireHours = 24
	otherSvc := NewAuthService(otherCfg, nil)

	token, _, err := otherSvc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if _, err := svc.VerifySession(token, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong key token want ErrUnauthorized got %v", err)
	}
}

func TestVerifySessionUnsignedAlgorithmRejected(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	admin := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, nil)

	claims := JWTClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     constants.AdminRoleSuperadmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token failed: %v", err)
	}

	if _, err := svc.VerifySession(unsigned, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("alg=none token want ErrUnauthorized got %v", err)
	}
}

func TestVerifySessionExpiredTokenRejected(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	claims := JWTClaims{
		AdminID:  1,
		Username: "editor",
		Role:     constants.AdminRoleEditor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expired, err := token.SignedString([]byte("test-secret-key-for-auth-service"))
	if err != nil {
		t.Fatalf("sign expired token failed: %v", err)
	}

	if _, err := svc.VerifySession(expired, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expired token want ErrUnauthorized got %v", err)
	}
}

func TestVerifySessionExpiryBoundary(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	signAt := func(t *testing.T, expiresAt time.Time) string {
		t.Helper()
		claims := JWTClaims{
			AdminID:  1,
			Username: "editor",
			Role:     constants.AdminRoleEditor,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key-for-auth-service"))
		if err != nil {
			t.Fatalf("sign token failed: %v", err)
		}
		return token
	}

	// 刚过期一秒即拒绝
	if _, err := svc.VerifySession(signAt(t, time.Now().Add(-time.Second)), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("token expired 1s ago want ErrUnauthorized got %v", err)
	}
	// 还剩一秒仍放行
	if _, err := svc.VerifySession(signAt(t, time.Now().Add(time.Second)), ""); err != nil {
		t.Fatalf("token with 1s left should pass, got %v", err)
	}
}

func TestVerifySessionCapabilityChecks(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	editor := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})
	superadmin := createAdmin(t, repo, "boss", "pw", constants.AdminRoleSuperadmin, nil)

	editorToken, _, err := svc.GenerateJWT(editor)
	if err != nil {
		t.Fatalf("generate editor token failed: %v", err)
	}
	superToken, _, err := svc.GenerateJWT(superadmin)
	if err != nil {
		t.Fatalf("generate superadmin token failed: %v", err)
	}

	// 拥有的权限放行
	if _, err := svc.VerifySession(editorToken, constants.CapabilityManageEvents); err != nil {
		t.Fatalf("granted capability should pass: %v", err)
	}
	// 未授予的权限拒绝
	if _, err := svc.VerifySession(editorToken, constants.CapabilityManageDonations); !errors.Is(err, ErrForbidden) {
		t.Fatalf("missing capability want ErrForbidden got %v", err)
	}
	// 空权限要求仅需登录
	if _, err := svc.VerifySession(editorToken, ""); err != nil {
		t.Fatalf("auth-only check should pass: %v", err)
	}
	// 超级管理员跳过权限匹配
	for _, capability := range constants.Capabilities {
		if _, err := svc.VerifySession(superToken, capability); err != nil {
			t.Fatalf("superadmin should pass capability %q: %v", capability, err)
		}
	}
}

func TestVerifySessionIdempotent(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	editor := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, []string{constants.CapabilityManageGallery})

	token, _, err := svc.GenerateJWT(editor)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		claims, err := svc.VerifySession(token, constants.CapabilityManageGallery)
		if err != nil {
			t.Fatalf("verification %d failed: %v", i, err)
		}
		if claims.AdminID != editor.ID {
			t.Fatalf("verification %d admin id want %d got %d", i, editor.ID, claims.AdminID)
		}
	}
}

func TestPermissionSnapshotNotAffectedByLaterRevocation(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	editor := createAdmin(t, repo, "editor", "pw", constants.AdminRoleEditor, []string{constants.CapabilityManageMessages})

	token, _, err := svc.GenerateJWT(editor)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	// 签发后收回权限，旧 token 在有效期内仍按签发时快照放行
	editor.Permissions = models.StringList{}
	if err := repo.Update(editor); err != nil {
		t.Fatalf("update admin failed: %v", err)
	}

	if _, err := svc.VerifySession(token, constants.CapabilityManageMessages); err != nil {
		t.Fatalf("snapshot semantics: issued token should still pass, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	admin := createAdmin(t, repo, "editor", "old-password", constants.AdminRoleEditor, nil)

	if err := svc.ChangePassword(admin.ID, "wrong-old", "new-password-1"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(admin.ID+100, "old-password", "new-password-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing admin want ErrNotFound got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "old-password", "new-password-1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, _, err := svc.Login("editor", "old-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, _, err := svc.Login("editor", "new-password-1"); err != nil {
		t.Fatalf("new password login failed: %v", err)
	}
}
