package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/pathlight/corpsite-backend/internal/config"
)

func imageHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "upload",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestSaveImageAcceptedTypes(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), MaxUploadBytes: 1 << 20}
	svc := NewMediaService(cfg)

	content := []byte("png bytes")
	url, err := svc.SaveImage(memUpload{bytes.NewReader(content)}, imageHeader("image/png", int64(len(content))))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/images/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q", url)
	}
}

// SVG can carry scripts and uploads are served inline, so it stays out of
// the accepted set.
func TestSaveImageRejectsSVG(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), MaxUploadBytes: 1 << 20}
	svc := NewMediaService(cfg)

	_, err := svc.SaveImage(memUpload{bytes.NewReader([]byte("<svg/>"))}, imageHeader("image/svg+xml", 6))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
}
