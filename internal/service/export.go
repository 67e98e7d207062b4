package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/storage"
)

// HTMLRenderer renders a resume page. A nil template means the default style.
type HTMLRenderer interface {
	Render(w io.Writer, r model.Resume, t *model.Template) error
}

// PDFPrinter converts a rendered page to PDF bytes.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

// ExportResult points at a freshly exported PDF.
type ExportResult struct {
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService renders resumes for preview and PDF download.
type ExportService interface {
	// Preview returns the resume's HTML page.
	Preview(ctx context.Context, userID, id string) ([]byte, error)

	// Export prints the resume to PDF, stores it and returns a time-limited download link.
	Export(ctx context.Context, userID, id string) (*ExportResult, error)
}

type exportService struct {
	resumes   ResumeService
	templates repository.TemplateRepository
	html      HTMLRenderer
	pdf       PDFPrinter
	store     storage.Storage
	expiry    time.Duration
	now       func() time.Time
}

// NewExportService constructs an ExportService. With a nil store or printer, Export fails with storage.ErrUnavailable.
func NewExportService(resumes ResumeService, templates repository.TemplateRepository, html HTMLRenderer, pdf PDFPrinter, store storage.Storage, expiry time.Duration) ExportService {
	return &exportService{
		resumes:   resumes,
		templates: templates,
		html:      html,
		pdf:       pdf,
		store:     store,
		expiry:    expiry,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) Preview(ctx context.Context, userID, id string) ([]byte, error) {
	res, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, res)
}

func (s *exportService) Export(ctx context.Context, userID, id string) (*ExportResult, error) {
	res, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if s.store == nil || s.pdf == nil {
		return nil, storage.ErrUnavailable
	}

	html, err := s.render(ctx, res)
	if err != nil {
		return nil, err
	}
	doc, err := s.pdf.PrintPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	filename := ExportFilename(res.Title)
	key := storage.ExportKey(res.ID)
	info, err := s.store.Put(ctx, key, bytes.NewReader(doc), storage.PutObjectOptions{
		Size:               int64(len(doc)),
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Metadata:           map[string]string{"resume-id": res.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &ExportResult{
		URL:       url,
		Filename:  filename,
		Size:      info.Size,
		ExpiresAt: s.now().Add(s.expiry),
	}, nil
}

func (s *exportService) render(ctx context.Context, res *model.Resume) ([]byte, error) {
	var tpl *model.Template
	if res.TemplateID != "" {
		t, err := s.templates.FindByID(ctx, res.TemplateID)
		switch {
		case err == nil:
			tpl = t
		case errors.Is(err, sql.ErrNoRows):
			// dangling reference, keep the default style
		default:
			return nil, fmt.Errorf("load template: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := s.html.Render(&buf, *res, tpl); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename returns "<title>.pdf" with characters that break a download header replaced.
func ExportFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
