package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/neuroljus/neurohus/internal/domain"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrTemplateNotFound    = errors.New("certificate template not found")
)

type userCourseKey struct {
	userID   string
	courseID string
}

// CertificateRepository is the registry of issued certificates and custom
// templates.
type CertificateRepository struct {
	mu sync.RWMutex

	certificates map[string]domain.Certificate
	order        []string
	byUserCourse map[userCourseKey]string

	templates map[string]domain.CertificateTemplate
}

func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{
		certificates: make(map[string]domain.Certificate),
		byUserCourse: make(map[userCourseKey]string),
		templates:    make(map[string]domain.CertificateTemplate),
	}
}

func (r *CertificateRepository) Insert(_ context.Context, c domain.Certificate) (domain.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.certificates[c.ID] = c
	r.order = append(r.order, c.ID)
	if c.UserID != "" && c.CourseID != "" {
		r.byUserCourse[userCourseKey{userID: c.UserID, courseID: c.CourseID}] = c.ID
	}

	return c, nil
}

func (r *CertificateRepository) FindByID(_ context.Context, id string) (domain.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.certificates[id]
	if !ok {
		return domain.Certificate{}, ErrCertificateNotFound
	}

	return c, nil
}

// FindByUserCourse returns the latest certificate issued to the user for the
// course.
func (r *CertificateRepository) FindByUserCourse(_ context.Context, userID, courseID string) (domain.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUserCourse[userCourseKey{userID: userID, courseID: courseID}]
	if !ok {
		return domain.Certificate{}, ErrCertificateNotFound
	}

	return r.certificates[id], nil
}

// List returns certificates in issue order.
func (r *CertificateRepository) List(_ context.Context) ([]domain.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Certificate, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.certificates[id])
	}

	return list, nil
}

func (r *CertificateRepository) InsertTemplate(_ context.Context, t domain.CertificateTemplate) (domain.CertificateTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[t.ID] = t

	return t, nil
}

func (r *CertificateRepository) FindTemplate(_ context.Context, id string) (domain.CertificateTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return domain.CertificateTemplate{}, ErrTemplateNotFound
	}

	return t, nil
}
