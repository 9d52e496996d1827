package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathlight/corpsite-backend/internal/config"
)

type memUpload struct{ *bytes.Reader }

func (memUpload) Close() error { return nil }

func resumeHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "cv.pdf",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

// Resumes carry PII and must never land under the statically served
// uploads tree.
func TestSaveResumeStoredOutsideUploads(t *testing.T) {
	cfg := &config.Config{
		UploadDir:      t.TempDir(),
		ResumeDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	}
	svc := NewApplicationService(nil, nil, cfg)

	content := []byte("resume bytes")
	path, err := svc.saveResume(memUpload{bytes.NewReader(content)}, resumeHeader("application/pdf", int64(len(content))))
	if err != nil {
		t.Fatalf("saveResume: %v", err)
	}

	if !strings.HasPrefix(path, cfg.ResumeDir+string(filepath.Separator)) {
		t.Fatalf("resume stored at %q, want under %q", path, cfg.ResumeDir)
	}
	if rel, err := filepath.Rel(cfg.UploadDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		t.Fatalf("resume stored inside uploads tree: %q", path)
	}
	if got, err := os.ReadFile(path); err != nil || !bytes.Equal(got, content) {
		t.Fatalf("stored resume = %q, err=%v", got, err)
	}
}

func TestSaveResumeRejectsBadInput(t *testing.T) {
	cfg := &config.Config{
		UploadDir:      t.TempDir(),
		ResumeDir:      t.TempDir(),
		MaxUploadBytes: 16,
	}
	svc := NewApplicationService(nil, nil, cfg)

	if _, err := svc.saveResume(memUpload{bytes.NewReader(nil)}, resumeHeader("image/png", 4)); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
	if _, err := svc.saveResume(memUpload{bytes.NewReader(nil)}, resumeHeader("application/pdf", 64)); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}
