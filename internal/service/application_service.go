package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

// ErrJobNotOpen is returned when an application targets a missing or
// disabled posting.
var ErrJobNotOpen = errors.New("job posting is not open")

// Resume MIME types accepted from applicants.
var allowedResumeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// ApplicationService handles candidate submissions and their resumes.
type ApplicationService struct {
	appRepo *repository.ApplicationRepository
	jobRepo *repository.JobRepository
	cfg     *config.Config
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo *repository.ApplicationRepository, jobRepo *repository.JobRepository, cfg *config.Config) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, jobRepo: jobRepo, cfg: cfg}
}

// Submit validates the target posting, stores the resume and records the
// application. Resumes live outside the public uploads tree; they are only
// reachable through the authenticated download endpoint.
func (s *ApplicationService) Submit(ctx context.Context, jobID int, name, email, phone, message string, resume multipart.File, header *multipart.FileHeader) (*model.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotOpen
		}
		return nil, err
	}
	if !job.Enabled {
		return nil, ErrJobNotOpen
	}

	path, err := s.saveResume(resume, header)
	if err != nil {
		return nil, err
	}

	app := &model.JobApplication{
		JobID:      jobID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		ResumePath: path,
		ResumeName: header.Filename,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		os.Remove(path)
		return nil, err
	}
	app.JobTitle = job.Title
	return app, nil
}

// List retrieves a paginated list of applications, optionally scoped to one
// posting.
func (s *ApplicationService) List(ctx context.Context, jobID *int, q *model.ListQuery) ([]model.JobApplication, int, error) {
	return s.appRepo.ListPaginated(ctx, jobID, q)
}

// Get retrieves a single application.
func (s *ApplicationService) Get(ctx context.Context, id int) (*model.JobApplication, error) {
	return s.appRepo.GetByID(ctx, id)
}

// OpenResume returns a reader over an application's stored resume along
// with the filename it was submitted under. The caller closes the reader.
func (s *ApplicationService) OpenResume(ctx context.Context, id int) (io.ReadCloser, string, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(app.ResumePath)
	if err != nil {
		return nil, "", fmt.Errorf("open resume: %w", err)
	}
	return f, app.ResumeName, nil
}

// ExportCSV streams every application as CSV rows.
func (s *ApplicationService) ExportCSV(ctx context.Context, w io.Writer) error {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "job_id", "job_title", "name", "email", "phone", "message", "resume_name", "created_at"}); err != nil {
		return err
	}
	for _, a := range apps {
		row := []string{
			strconv.Itoa(a.ID),
			strconv.Itoa(a.JobID),
			a.JobTitle,
			a.Name,
			a.Email,
			a.Phone,
			a.Message,
			a.ResumeName,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ApplicationService) saveResume(file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedResumeTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	dir := s.cfg.ResumeDir
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create resume dir: %w", err)
	}

	path := filepath.Join(dir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
