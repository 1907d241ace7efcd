package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

var (
	ErrCertificateNotFound  = repository.ErrCertificateNotFound
	ErrTemplateNotFound     = repository.ErrTemplateNotFound
	ErrInvalidCertificateID = errors.New("certificate id has no NL- prefix")
)

const (
	verifyBaseURL = "https://neuroljus.se/verify/"
	dateLayout    = "2006-01-02"
)

type CertificateRepository interface {
	Insert(ctx context.Context, c domain.Certificate) (domain.Certificate, error)
	FindByID(ctx context.Context, id string) (domain.Certificate, error)
	FindByUserCourse(ctx context.Context, userID, courseID string) (domain.Certificate, error)
	List(ctx context.Context) ([]domain.Certificate, error)
	InsertTemplate(ctx context.Context, t domain.CertificateTemplate) (domain.CertificateTemplate, error)
	FindTemplate(ctx context.Context, id string) (domain.CertificateTemplate, error)
}

// DefaultTemplate is the standard Academy diploma layout.
func DefaultTemplate() domain.CertificateTemplate {
	return domain.CertificateTemplate{
		Title:           "Neuroljus Neurohus Diplom",
		Subtitle:        "Empati – Kunskap – Neurodiversitet",
		LogoURL:         "/brand/neuroljus-logo.svg",
		BackgroundColor: "#F0F9FF",
		TextColor:       "#1E40AF",
		BorderColor:     "#3B82F6",
		SignatureURL:    "/academy/signatur.png",
		SignatureText:   "Signerat: Neuroljus Neurohus",
		QRCodeURL:       "/academy/qr-kod.png",
		TitleFontSize:   24,
		TextFontSize:    14,
		SignatureSize:   12,
		Active:          true,
	}
}

type CertificateService struct {
	repo CertificateRepository
	now  func() time.Time
}

func NewCertificateService(repo CertificateRepository, now func() time.Time) *CertificateService {
	if now == nil {
		now = time.Now
	}

	return &CertificateService{
		repo: repo,
		now:  now,
	}
}

// Issue builds the diploma for recipient and stores it in the registry.
// userID and courseID may be empty for certificates not tied to a tracked
// course.
func (s *CertificateService) Issue(ctx context.Context, userID, courseID string, recipient domain.CertificateRecipient, course domain.CertificateCourse) (domain.Certificate, error) {
	now := s.now()
	id := fmt.Sprintf("%s%s-%s", domain.CertificateIDPrefix, now.Format("20060102"), shortHex(true))
	date := now.Format(dateLayout)

	cert := domain.Certificate{
		ID:          id,
		UserID:      userID,
		CourseID:    courseID,
		Template:    DefaultTemplate(),
		Recipient:   recipient,
		Course:      course,
		DiplomaText: DiplomaText(recipient.Name, course.Title, date),
		Date:        date,
		VerifyURL:   verifyBaseURL + id,
		QRCodeData:  verifyBaseURL + id,
		PDFURL:      "/academy/certifikat/pdf/" + id + ".pdf",
		IssuedAt:    now,
	}

	stored, err := s.repo.Insert(ctx, cert)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	zap.L().Info("certificate issued", zap.String("certificate_id", id), zap.String("course", course.Title))

	return stored, nil
}

func DiplomaText(name, courseTitle, date string) string {
	return fmt.Sprintf(`Det här intygar att %s
har genomfört kursen
"%s"
genom Neuroljus Neurohus Academy,
för att stärka förståelse och empati inom autism och omsorg.

Empati – Kunskap – Neurodiversitet
Datum: %s
Signerat: Neuroljus Neurohus`, name, courseTitle, date)
}

func shortHex(upper bool) string {
	h := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if upper {
		return strings.ToUpper(h)
	}

	return h
}

func (s *CertificateService) Get(ctx context.Context, id string) (domain.Certificate, error) {
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return cert, nil
}

func (s *CertificateService) ForUserCourse(ctx context.Context, userID, courseID string) (domain.Certificate, error) {
	cert, err := s.repo.FindByUserCourse(ctx, userID, courseID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("s.repo.FindByUserCourse -> %w", err)
	}

	return cert, nil
}

// Verify checks the id format and looks the certificate up in the registry.
func (s *CertificateService) Verify(ctx context.Context, id string) (domain.CertificateVerification, error) {
	if !strings.HasPrefix(id, domain.CertificateIDPrefix) {
		return domain.CertificateVerification{}, ErrInvalidCertificateID
	}

	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.CertificateVerification{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return domain.CertificateVerification{
		Valid:         true,
		CertificateID: cert.ID,
		Recipient:     cert.Recipient.Name,
		Course:        cert.Course.Title,
		Date:          cert.Date,
		VerifiedAt:    s.now(),
	}, nil
}

// CreateTemplate stores a custom template. Omitted fields take the values of
// the standard template.
func (s *CertificateService) CreateTemplate(ctx context.Context, t domain.CertificateTemplate) (domain.CertificateTemplate, error) {
	def := DefaultTemplate()
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&t.Title, def.Title)
	fill(&t.Subtitle, def.Subtitle)
	fill(&t.LogoURL, def.LogoURL)
	fill(&t.BackgroundColor, def.BackgroundColor)
	fill(&t.TextColor, def.TextColor)
	fill(&t.BorderColor, def.BorderColor)
	fill(&t.SignatureURL, def.SignatureURL)
	fill(&t.SignatureText, def.SignatureText)
	fill(&t.QRCodeURL, def.QRCodeURL)
	if t.TitleFontSize == 0 {
		t.TitleFontSize = def.TitleFontSize
	}
	if t.TextFontSize == 0 {
		t.TextFontSize = def.TextFontSize
	}
	if t.SignatureSize == 0 {
		t.SignatureSize = def.SignatureSize
	}

	t.ID = "mall-" + shortHex(false)
	t.CreatedAt = s.now()
	t.Active = true

	stored, err := s.repo.InsertTemplate(ctx, t)
	if err != nil {
		return domain.CertificateTemplate{}, fmt.Errorf("s.repo.InsertTemplate -> %w", err)
	}

	zap.L().Info("certificate template created", zap.String("template_id", stored.ID))

	return stored, nil
}

func (s *CertificateService) GetTemplate(ctx context.Context, id string) (domain.CertificateTemplate, error) {
	t, err := s.repo.FindTemplate(ctx, id)
	if err != nil {
		return domain.CertificateTemplate{}, fmt.Errorf("s.repo.FindTemplate -> %w", err)
	}

	return t, nil
}

func (s *CertificateService) Statistics(ctx context.Context) (domain.CertificateStatistics, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return domain.CertificateStatistics{}, fmt.Errorf("s.repo.List -> %w", err)
	}

	now := s.now()
	stats := domain.CertificateStatistics{Total: len(certs)}
	for _, c := range certs {
		if c.IssuedAt.Year() == now.Year() && c.IssuedAt.Month() == now.Month() {
			stats.ThisMonth++
			if c.IssuedAt.Day() == now.Day() {
				stats.Today++
			}
		}
	}
	if len(certs) > 0 {
		stats.LatestID = certs[len(certs)-1].ID
	}

	return stats, nil
}
