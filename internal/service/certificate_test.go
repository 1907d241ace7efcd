package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

func TestCertificateService_Issue(t *testing.T) {
	svc := NewCertificateService(repository.NewCertificateRepository(), (&testClock{t: testStart}).now)
	ctx := context.Background()

	cert, err := svc.Issue(ctx, "", "",
		domain.CertificateRecipient{Name: "Erik Svensson"},
		domain.CertificateCourse{Title: "Kommunikation och lugn kontakt"},
	)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^NL-20240501-[0-9A-F]{8}$`), cert.ID)
	assert.Equal(t, "2024-05-01", cert.Date)
	assert.Equal(t, "https://neuroljus.se/verify/"+cert.ID, cert.VerifyURL)
	assert.Equal(t, cert.VerifyURL, cert.QRCodeData)
	assert.Equal(t, "/academy/certifikat/pdf/"+cert.ID+".pdf", cert.PDFURL)
	assert.Equal(t, DefaultTemplate(), cert.Template)
	assert.Equal(t, `Det här intygar att Erik Svensson
har genomfört kursen
"Kommunikation och lugn kontakt"
genom Neuroljus Neurohus Academy,
för att stärka förståelse och empati inom autism och omsorg.

Empati – Kunskap – Neurodiversitet
Datum: 2024-05-01
Signerat: Neuroljus Neurohus`, cert.DiplomaText)

	got, err := svc.Get(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert, got)

	_, err = svc.ForUserCourse(ctx, "", "")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestCertificateService_Verify(t *testing.T) {
	svc := NewCertificateService(repository.NewCertificateRepository(), (&testClock{t: testStart}).now)
	ctx := context.Background()

	cert, err := svc.Issue(ctx, "u1", "kurs-1",
		domain.CertificateRecipient{Name: "Anna"},
		domain.CertificateCourse{Title: "Kurs"},
	)
	require.NoError(t, err)

	v, err := svc.Verify(ctx, cert.ID)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "Anna", v.Recipient)
	assert.Equal(t, "Kurs", v.Course)
	assert.Equal(t, "2024-05-01", v.Date)

	_, err = svc.Verify(ctx, "XX-20240501-ABCDEF12")
	assert.ErrorIs(t, err, ErrInvalidCertificateID)

	_, err = svc.Verify(ctx, "NL-20240501-00000000")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestCertificateService_Templates(t *testing.T) {
	svc := NewCertificateService(repository.NewCertificateRepository(), (&testClock{t: testStart}).now)
	ctx := context.Background()

	tpl, err := svc.CreateTemplate(ctx, domain.CertificateTemplate{
		Title:         "Eget diplom",
		TitleFontSize: 30,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^mall-[0-9a-f]{8}$`), tpl.ID)
	assert.Equal(t, "Eget diplom", tpl.Title)
	assert.Equal(t, 30, tpl.TitleFontSize)
	assert.Equal(t, DefaultTemplate().Subtitle, tpl.Subtitle)
	assert.Equal(t, DefaultTemplate().TextFontSize, tpl.TextFontSize)
	assert.True(t, tpl.Active)
	assert.Equal(t, testStart, tpl.CreatedAt)

	got, err := svc.GetTemplate(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl, got)

	_, err = svc.GetTemplate(ctx, "mall-saknas")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCertificateService_Statistics(t *testing.T) {
	clock := &testClock{t: testStart}
	svc := NewCertificateService(repository.NewCertificateRepository(), clock.now)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.LatestID)

	clock.t = testStart.AddDate(0, -1, 0)
	_, err = svc.Issue(ctx, "", "", domain.CertificateRecipient{Name: "A"}, domain.CertificateCourse{Title: "K"})
	require.NoError(t, err)

	clock.t = testStart
	latest, err := svc.Issue(ctx, "", "", domain.CertificateRecipient{Name: "B"}, domain.CertificateCourse{Title: "K"})
	require.NoError(t, err)

	stats, err = svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ThisMonth)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, latest.ID, stats.LatestID)
}
