package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/service"

	"github.com/gin-gonic/gin"
)

const testCookieName = "admin_session"

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.JWT.ExpireHours = 1
	return service.NewAuthService(cfg, nil)
}

func issueTestToken(t *testing.T, auth *service.AuthService, role string, permissions []string) string {
	t.Helper()
	admin := &models.Admin{
		Username:    "router-tester",
		Role:        role,
		Permissions: models.StringList(permissions),
	}
	admin.ID = 7
	token, _, err := auth.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	return token
}

func decodeEnvelope(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp
}

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.org", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.org", []string{"*"}, true)
	if got != "https://example.org" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.org", []string{"https://a.example.org"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestSessionAuthMiddlewareMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)

	r := gin.New()
	r.Use(RequireAuth(auth, testCookieName))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w.Body.Bytes())
	if code, _ := resp["status_code"].(float64); int(code) != 401 {
		t.Fatalf("missing token want business code 401 got %v", resp["status_code"])
	}
}

func TestSessionAuthMiddlewareCookieToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	r := gin.New()
	r.Use(RequireCapability(auth, testCookieName, constants.CapabilityManageEvents))
	r.GET("/admin/events", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id":    c.GetUint("admin_id"),
			"username":    c.GetString("admin_username"),
			"permissions": c.GetStringSlice("admin_permissions"),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/events", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w.Body.Bytes())
	if id, _ := resp["admin_id"].(float64); uint(id) != 7 {
		t.Fatalf("admin_id want 7 got %v", resp["admin_id"])
	}
	if resp["username"] != "router-tester" {
		t.Fatalf("username want router-tester got %v", resp["username"])
	}
	perms, _ := resp["permissions"].([]interface{})
	if len(perms) != 1 || perms[0] != constants.CapabilityManageEvents {
		t.Fatalf("permissions want [%s] got %v", constants.CapabilityManageEvents, resp["permissions"])
	}
}

func TestSessionAuthMiddlewareBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleEditor, []string{constants.CapabilityManageProjects})

	r := gin.New()
	r.Use(RequireCapability(auth, testCookieName, constants.CapabilityManageProjects))
	r.GET("/admin/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestSessionAuthMiddlewareMissingCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	r := gin.New()
	r.Use(RequireCapability(auth, testCookieName, constants.CapabilityManageDonations))
	r.GET("/admin/donations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/donations", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w.Body.Bytes())
	if code, _ := resp["status_code"].(float64); int(code) != 403 {
		t.Fatalf("missing capability want business code 403 got %v", resp["status_code"])
	}
}

func TestSessionAuthMiddlewareSuperadminBypassesCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleSuperadmin, nil)

	r := gin.New()
	r.Use(RequireCapability(auth, testCookieName, constants.CapabilityManageDonations))
	r.GET("/admin/donations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/donations", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("superadmin should pass capability gate, got %d", w.Code)
	}
}

func TestSessionAuthMiddlewareTamperedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	r := gin.New()
	r.Use(RequireAuth(auth, testCookieName))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tampered := token[:len(token)-2] + "xx"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: tampered})
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w.Body.Bytes())
	if code, _ := resp["status_code"].(float64); int(code) != 401 {
		t.Fatalf("tampered token want business code 401 got %v", resp["status_code"])
	}
}

func TestRequireSuperadminRejectsEditor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newTestAuthService(t)
	token := issueTestToken(t, auth, constants.AdminRoleEditor, []string{constants.CapabilityManageEvents})

	r := gin.New()
	r.Use(RequireAuth(auth, testCookieName), RequireSuperadmin())
	r.GET("/admin/accounts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/accounts", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w.Body.Bytes())
	if code, _ := resp["status_code"].(float64); int(code) != 403 {
		t.Fatalf("editor on superadmin route want business code 403 got %v", resp["status_code"])
	}
}

func TestExtractSessionTokenPrefersCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")

	if got := extractSessionToken(c, testCookieName); got != "cookie-token" {
		t.Fatalf("cookie should win over header, got %s", got)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.Header.Set("Authorization", "Bearer header-token")
	if got := extractSessionToken(c2, testCookieName); got != "header-token" {
		t.Fatalf("bearer fallback failed, got %s", got)
	}
}
