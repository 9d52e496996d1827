package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/service"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		GinMode:            gin.TestMode,
		UploadDir:          t.TempDir(),
		ResumeDir:          t.TempDir(),
		PublicRateLimit:    100,
		PublicRateInterval: time.Minute,
		JWTSecret:          "test-secret",
		JWTExpiry:          time.Hour,
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Static serving must expose uploaded images and nothing else. Resumes are
// private and only reachable through the authenticated download endpoint.
func TestStaticServesImagesOnly(t *testing.T) {
	cfg := testConfig(t)
	mustWrite(t, filepath.Join(cfg.UploadDir, "images", "pic.png"), "image bytes")
	mustWrite(t, filepath.Join(cfg.ResumeDir, "cv.pdf"), "candidate resume")
	// A resumes dir under UploadDir must not be reachable either, even if
	// something ends up there by mistake.
	mustWrite(t, filepath.Join(cfg.UploadDir, "resumes", "stray.pdf"), "stray resume")

	authService := service.NewAuthService(cfg, redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	r := SetupRouter(authService, &Handlers{}, cfg)

	cases := []struct {
		path   string
		status int
	}{
		{"/uploads/images/pic.png", http.StatusOK},
		{"/uploads/resumes/stray.pdf", http.StatusNotFound},
		{"/uploads/cv.pdf", http.StatusNotFound},
		{"/uploads/images/../resumes/stray.pdf", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Errorf("GET %s: status %d, want %d", tc.path, w.Code, tc.status)
		}
	}
}
