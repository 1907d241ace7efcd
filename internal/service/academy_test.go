package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

var perfectAnswers = []int{0, 1, 1, 1, 0}

func newAcademy(t *testing.T) (*AcademyService, *CertificateService, *testClock) {
	t.Helper()

	clock := &testClock{t: testStart}
	courses := repository.NewCourseRepository()
	require.NoError(t, repository.SeedCourses(context.Background(), courses, clock.t))

	certs := NewCertificateService(repository.NewCertificateRepository(), clock.now)

	return NewAcademyService(courses, certs, clock.now), certs, clock
}

func TestAcademyService_ListAndGetCourse(t *testing.T) {
	svc, _, _ := newAcademy(t)
	ctx := context.Background()

	all, err := svc.ListCourses(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].ModuleCount)
	assert.Equal(t, 5, all[0].QuestionCount)

	family, err := svc.ListCourses(ctx, "familj")
	require.NoError(t, err)
	assert.Len(t, family, 1)

	none, err := svc.ListCourses(ctx, "kommun")
	require.NoError(t, err)
	assert.Empty(t, none)

	details, err := svc.GetCourse(ctx, repository.SeedCourseID)
	require.NoError(t, err)
	assert.Len(t, details.Modules, 5)
	assert.Len(t, details.Quiz, 5)

	_, err = svc.GetCourse(ctx, "finns-inte")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAcademyService_StartAndCompleteModules(t *testing.T) {
	svc, _, _ := newAcademy(t)
	ctx := context.Background()

	_, err := svc.CompleteModule(ctx, "u1", repository.SeedCourseID, 0)
	assert.ErrorIs(t, err, ErrCourseNotStarted)

	p, err := svc.StartCourse(ctx, "u1", repository.SeedCourseID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProgressStarted, p.Status)
	assert.Zero(t, p.ProgressPercent)

	again, err := svc.StartCourse(ctx, "u1", repository.SeedCourseID)
	require.NoError(t, err)
	assert.Equal(t, p.StartedAt, again.StartedAt)

	_, err = svc.CompleteModule(ctx, "u1", repository.SeedCourseID, 5)
	assert.ErrorIs(t, err, ErrInvalidModule)
	_, err = svc.CompleteModule(ctx, "u1", repository.SeedCourseID, -1)
	assert.ErrorIs(t, err, ErrInvalidModule)

	p, err = svc.CompleteModule(ctx, "u1", repository.SeedCourseID, 0)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, p.ProgressPercent, 1e-9)

	p, err = svc.CompleteModule(ctx, "u1", repository.SeedCourseID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p.CompletedModules)

	for i := 1; i < 5; i++ {
		p, err = svc.CompleteModule(ctx, "u1", repository.SeedCourseID, i)
		require.NoError(t, err)
	}
	assert.InDelta(t, 100.0, p.ProgressPercent, 1e-9)
	assert.Equal(t, domain.ProgressReadyForQuiz, p.Status)

	_, err = svc.StartCourse(ctx, "u1", "finns-inte")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAcademyService_SubmitQuizPartial(t *testing.T) {
	svc, _, _ := newAcademy(t)
	ctx := context.Background()

	_, err := svc.StartCourse(ctx, "u1", repository.SeedCourseID)
	require.NoError(t, err)

	res, err := svc.SubmitQuiz(ctx, "u1", repository.SeedCourseID, []int{0, 1, 1}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, res.CorrectAnswers)
	assert.Equal(t, 5, res.TotalQuestions)
	assert.InDelta(t, 60.0, res.ScorePercent, 1e-9)
	assert.False(t, res.CertificateAvailable)
	assert.Nil(t, res.Certificate)
	require.Len(t, res.Results, 5)
	assert.Equal(t, -1, res.Results[4].Answer)
	assert.False(t, res.Results[4].Correct)

	_, err = svc.GetCertificate(ctx, "u1", repository.SeedCourseID)
	assert.ErrorIs(t, err, ErrCourseNotFinished)
}

func TestAcademyService_SubmitQuizPerfect(t *testing.T) {
	svc, certs, _ := newAcademy(t)
	ctx := context.Background()

	_, err := svc.SubmitQuiz(ctx, "u1", repository.SeedCourseID, perfectAnswers, "")
	assert.ErrorIs(t, err, ErrCourseNotStarted)

	_, err = svc.StartCourse(ctx, "u1", repository.SeedCourseID)
	require.NoError(t, err)

	res, err := svc.SubmitQuiz(ctx, "u1", repository.SeedCourseID, perfectAnswers, "Anna Larsson")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.ScorePercent, 1e-9)
	assert.True(t, res.CertificateAvailable)
	assert.Equal(t, "/academy/certifikat/u1/"+repository.SeedCourseID, res.CertificateURL)
	require.NotNil(t, res.Certificate)
	assert.Equal(t, "Anna Larsson", res.Certificate.Recipient.Name)
	assert.True(t, strings.HasPrefix(res.Certificate.ID, "NL-20240501-"))

	again, err := svc.SubmitQuiz(ctx, "u1", repository.SeedCourseID, perfectAnswers, "")
	require.NoError(t, err)
	require.NotNil(t, again.Certificate)
	assert.Equal(t, res.Certificate.ID, again.Certificate.ID, "a passed course keeps its certificate")

	cert, err := svc.GetCertificate(ctx, "u1", repository.SeedCourseID)
	require.NoError(t, err)
	assert.Equal(t, res.Certificate.ID, cert.ID)

	stats, err := certs.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	courses, err := svc.UserCourses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, domain.ProgressCompleted, courses[0].Progress.Status)
	require.NotNil(t, courses[0].Progress.FinishedAt)
	assert.Equal(t, testStart, *courses[0].Progress.FinishedAt)
}

func TestAcademyService_SubmitQuizNameDefaultsToUser(t *testing.T) {
	svc, _, _ := newAcademy(t)
	ctx := context.Background()

	_, err := svc.StartCourse(ctx, "u2", repository.SeedCourseID)
	require.NoError(t, err)

	res, err := svc.SubmitQuiz(ctx, "u2", repository.SeedCourseID, perfectAnswers, "")
	require.NoError(t, err)
	require.NotNil(t, res.Certificate)
	assert.Equal(t, "u2", res.Certificate.Recipient.Name)
}

func TestAcademyService_CreateCourse(t *testing.T) {
	svc, _, clock := newAcademy(t)
	ctx := context.Background()
	clock.advance(time.Hour)

	c, err := svc.CreateCourse(ctx, domain.Course{
		Title:    "Sensorisk miljö",
		Category: "Miljö",
		Audience: []string{"assistent"},
		Modules:  []domain.CourseModule{{Title: "Ljud"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.True(t, c.Active)
	assert.Equal(t, "sv", c.Language)
	assert.Equal(t, clock.t, c.CreatedAt)

	list, err := svc.ListCourses(ctx, "assistent")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestScoreQuiz(t *testing.T) {
	questions := []domain.QuizQuestion{{CorrectAnswer: 1}, {CorrectAnswer: 0}}

	res := scoreQuiz(questions, []int{1, 0, 3})
	assert.Equal(t, 2, res.CorrectAnswers)
	assert.InDelta(t, 100.0, res.ScorePercent, 1e-9)

	res = scoreQuiz(nil, []int{1})
	assert.Zero(t, res.ScorePercent)
	assert.Empty(t, res.Results)
}
