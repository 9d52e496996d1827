package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/service"
)

func runGuard(t *testing.T, guard gin.HandlerFunc, permissions []string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if permissions != nil {
		r.Use(func(c *gin.Context) {
			c.Set(ContextKeyClaims, &service.Claims{AdminID: 1, Permissions: permissions})
		})
	}
	r.GET("/guarded", guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequirePermission(t *testing.T) {
	if code := runGuard(t, RequirePermission("banners:write"), []string{"banners:read", "banners:write"}); code != http.StatusOK {
		t.Fatalf("granted permission rejected: status %d", code)
	}
	if code := runGuard(t, RequirePermission("banners:write"), []string{"banners:read"}); code != http.StatusForbidden {
		t.Fatalf("missing permission allowed: status %d", code)
	}
}

func TestRequireAnyPermission(t *testing.T) {
	guard := RequireAnyPermission("hashtags:read", "news:write")

	if code := runGuard(t, guard, []string{"news:write"}); code != http.StatusOK {
		t.Fatalf("one of ANY set rejected: status %d", code)
	}
	if code := runGuard(t, guard, []string{"banners:read"}); code != http.StatusForbidden {
		t.Fatalf("disjoint permissions allowed: status %d", code)
	}
}

func TestRequireAllPermissions(t *testing.T) {
	guard := RequireAllPermissions("applications:read", "applications:export")

	if code := runGuard(t, guard, []string{"applications:read", "applications:export"}); code != http.StatusOK {
		t.Fatalf("full ALL set rejected: status %d", code)
	}
	if code := runGuard(t, guard, []string{"applications:read"}); code != http.StatusForbidden {
		t.Fatalf("partial ALL set allowed: status %d", code)
	}
}

func TestEmptyRequirementAllowsAnyAdmin(t *testing.T) {
	if code := runGuard(t, RequireAllPermissions(), []string{}); code != http.StatusOK {
		t.Fatalf("empty requirement rejected: status %d", code)
	}
}

func TestMissingClaimsRejected(t *testing.T) {
	if code := runGuard(t, RequirePermission("banners:read"), nil); code != http.StatusUnauthorized {
		t.Fatalf("request without claims allowed: status %d", code)
	}
}
