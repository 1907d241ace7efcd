package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
	"github.com/neuroljus/neurohus/internal/repository"
)

var (
	ErrCourseNotFound    = repository.ErrCourseNotFound
	ErrCourseNotStarted  = repository.ErrProgressNotFound
	ErrCourseUnavailable = errors.New("course is not active")
	ErrInvalidModule     = errors.New("module index outside course")
	ErrCourseNotFinished = errors.New("course not completed")
)

type CourseRepository interface {
	CreateCourse(ctx context.Context, course domain.Course) (domain.Course, error)
	FindCourse(ctx context.Context, id string) (domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	StartProgress(ctx context.Context, p domain.CourseProgress) (domain.CourseProgress, error)
	UpdateProgress(ctx context.Context, userID, courseID string, fn func(*domain.CourseProgress) error) (domain.CourseProgress, error)
	FindProgress(ctx context.Context, userID, courseID string) (domain.CourseProgress, error)
	ListProgressByUser(ctx context.Context, userID string) ([]domain.CourseProgress, error)
}

type CertificateIssuer interface {
	Issue(ctx context.Context, userID, courseID string, recipient domain.CertificateRecipient, course domain.CertificateCourse) (domain.Certificate, error)
	ForUserCourse(ctx context.Context, userID, courseID string) (domain.Certificate, error)
}

type AcademyService struct {
	repo         CourseRepository
	certificates CertificateIssuer
	now          func() time.Time
}

func NewAcademyService(repo CourseRepository, certificates CertificateIssuer, now func() time.Time) *AcademyService {
	if now == nil {
		now = time.Now
	}

	return &AcademyService{
		repo:         repo,
		certificates: certificates,
		now:          now,
	}
}

// ListCourses returns the active courses, optionally only those aimed at
// audience.
func (s *AcademyService) ListCourses(ctx context.Context, audience string) ([]domain.CourseSummary, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCourses -> %w", err)
	}

	list := make([]domain.CourseSummary, 0, len(courses))
	for _, c := range courses {
		if !c.Active {
			continue
		}
		if audience != "" && !c.ForAudience(audience) {
			continue
		}
		list = append(list, c.Summary())
	}

	return list, nil
}

func (s *AcademyService) GetCourse(ctx context.Context, id string) (domain.CourseDetails, error) {
	course, err := s.repo.FindCourse(ctx, id)
	if err != nil {
		return domain.CourseDetails{}, fmt.Errorf("s.repo.FindCourse -> %w", err)
	}

	return course.Details(), nil
}

func (s *AcademyService) CreateCourse(ctx context.Context, course domain.Course) (domain.Course, error) {
	course.ID = ""
	course.CreatedAt = s.now()
	course.Active = true
	if course.Language == "" {
		course.Language = "sv"
	}

	created, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return domain.Course{}, fmt.Errorf("s.repo.CreateCourse -> %w", err)
	}

	zap.L().Info("course created", zap.String("course_id", created.ID), zap.String("title", created.Title))

	return created, nil
}

// StartCourse registers userID on the course. Starting twice returns the
// existing progress.
func (s *AcademyService) StartCourse(ctx context.Context, userID, courseID string) (domain.CourseProgress, error) {
	course, err := s.repo.FindCourse(ctx, courseID)
	if err != nil {
		return domain.CourseProgress{}, fmt.Errorf("s.repo.FindCourse -> %w", err)
	}
	if !course.Active {
		return domain.CourseProgress{}, ErrCourseUnavailable
	}

	p, err := s.repo.StartProgress(ctx, domain.CourseProgress{
		UserID:           userID,
		CourseID:         courseID,
		Status:           domain.ProgressStarted,
		StartedAt:        s.now(),
		CompletedModules: []int{},
		QuizAnswers:      []domain.QuizAnswerResult{},
	})
	if err != nil {
		return domain.CourseProgress{}, fmt.Errorf("s.repo.StartProgress -> %w", err)
	}

	return p, nil
}

func (s *AcademyService) CompleteModule(ctx context.Context, userID, courseID string, index int) (domain.CourseProgress, error) {
	course, err := s.repo.FindCourse(ctx, courseID)
	if err != nil {
		return domain.CourseProgress{}, fmt.Errorf("s.repo.FindCourse -> %w", err)
	}

	p, err := s.repo.UpdateProgress(ctx, userID, courseID, func(p *domain.CourseProgress) error {
		if index < 0 || index >= len(course.Modules) {
			return ErrInvalidModule
		}
		p.CompleteModule(index, len(course.Modules))

		return nil
	})
	if err != nil {
		return domain.CourseProgress{}, fmt.Errorf("s.repo.UpdateProgress -> %w", err)
	}

	return p, nil
}

// SubmitQuiz scores answers against the course quiz. A missing answer counts
// as wrong. A full score completes the course and issues a certificate in
// name, or in the user id when name is empty.
func (s *AcademyService) SubmitQuiz(ctx context.Context, userID, courseID string, answers []int, name string) (domain.QuizResult, error) {
	course, err := s.repo.FindCourse(ctx, courseID)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("s.repo.FindCourse -> %w", err)
	}

	result := scoreQuiz(course.Quiz, answers)
	now := s.now()
	certificateURL := fmt.Sprintf("/academy/certifikat/%s/%s", userID, courseID)

	_, err = s.repo.UpdateProgress(ctx, userID, courseID, func(p *domain.CourseProgress) error {
		p.QuizScore = result.ScorePercent
		p.QuizAnswers = result.Results
		if result.ScorePercent >= 100 && p.Status != domain.ProgressCompleted {
			p.Status = domain.ProgressCompleted
			p.FinishedAt = &now
			p.CertificateURL = certificateURL
		}

		return nil
	})
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("s.repo.UpdateProgress -> %w", err)
	}

	if result.ScorePercent < 100 {
		return result, nil
	}

	result.CertificateAvailable = true
	result.CertificateURL = certificateURL

	cert, err := s.certificates.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		if name == "" {
			name = userID
		}
		cert, err = s.certificates.Issue(ctx, userID, courseID,
			domain.CertificateRecipient{Name: name},
			domain.CertificateCourse{
				Title:         course.Title,
				Category:      course.Category,
				LengthMinutes: course.LengthMinutes,
				Difficulty:    course.Difficulty,
			},
		)
		if err != nil {
			return domain.QuizResult{}, fmt.Errorf("s.certificates.Issue -> %w", err)
		}
		metrics.CoursesCompleted.Inc()
	}
	result.Certificate = &cert

	zap.L().Info("course completed", zap.String("user_id", userID), zap.String("course_id", courseID))

	return result, nil
}

func scoreQuiz(questions []domain.QuizQuestion, answers []int) domain.QuizResult {
	result := domain.QuizResult{
		TotalQuestions: len(questions),
		Results:        make([]domain.QuizAnswerResult, 0, len(questions)),
	}

	for i, q := range questions {
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer == q.CorrectAnswer
		if correct {
			result.CorrectAnswers++
		}
		result.Results = append(result.Results, domain.QuizAnswerResult{
			Question:      q.Question,
			Answer:        answer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
		})
	}

	if len(questions) > 0 {
		result.ScorePercent = float64(result.CorrectAnswers) / float64(len(questions)) * 100
	}

	return result
}

// UserCourses lists the user's progress on every course they started.
func (s *AcademyService) UserCourses(ctx context.Context, userID string) ([]domain.UserCourse, error) {
	progress, err := s.repo.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListProgressByUser -> %w", err)
	}

	list := make([]domain.UserCourse, 0, len(progress))
	for _, p := range progress {
		course, err := s.repo.FindCourse(ctx, p.CourseID)
		if err != nil {
			continue
		}
		list = append(list, domain.UserCourse{Course: course.Summary(), Progress: p})
	}

	return list, nil
}

// GetCertificate returns the certificate of a completed course.
func (s *AcademyService) GetCertificate(ctx context.Context, userID, courseID string) (domain.Certificate, error) {
	p, err := s.repo.FindProgress(ctx, userID, courseID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("s.repo.FindProgress -> %w", err)
	}
	if p.Status != domain.ProgressCompleted {
		return domain.Certificate{}, ErrCourseNotFinished
	}

	cert, err := s.certificates.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("s.certificates.ForUserCourse -> %w", err)
	}

	return cert, nil
}
