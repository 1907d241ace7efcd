package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/neuroljus/neurohus/internal/domain"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrProgressNotFound = errors.New("course not started")
)

type progressKey struct {
	userID   string
	courseID string
}

type CourseRepository struct {
	mu sync.RWMutex

	courses     map[string]domain.Course
	courseOrder []string

	progress      map[progressKey]*domain.CourseProgress
	progressOrder []progressKey
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses:  make(map[string]domain.Course),
		progress: make(map[progressKey]*domain.CourseProgress),
	}
}

func (r *CourseRepository) CreateCourse(_ context.Context, course domain.Course) (domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if _, ok := r.courses[course.ID]; !ok {
		r.courseOrder = append(r.courseOrder, course.ID)
	}
	r.courses[course.ID] = course

	return course, nil
}

func (r *CourseRepository) FindCourse(_ context.Context, id string) (domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return domain.Course{}, ErrCourseNotFound
	}

	return course, nil
}

func (r *CourseRepository) ListCourses(_ context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]domain.Course, 0, len(r.courseOrder))
	for _, id := range r.courseOrder {
		courses = append(courses, r.courses[id])
	}

	return courses, nil
}

// StartProgress stores p unless the user already has progress on the course,
// in which case the existing entry is returned untouched.
func (r *CourseRepository) StartProgress(_ context.Context, p domain.CourseProgress) (domain.CourseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := progressKey{userID: p.UserID, courseID: p.CourseID}
	if existing, ok := r.progress[key]; ok {
		return existing.Clone(), nil
	}

	stored := p.Clone()
	r.progress[key] = &stored
	r.progressOrder = append(r.progressOrder, key)

	return stored.Clone(), nil
}

// UpdateProgress applies fn to the stored progress under the write lock. An
// error from fn leaves the entry unchanged.
func (r *CourseRepository) UpdateProgress(_ context.Context, userID, courseID string, fn func(*domain.CourseProgress) error) (domain.CourseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.progress[progressKey{userID: userID, courseID: courseID}]
	if !ok {
		return domain.CourseProgress{}, ErrProgressNotFound
	}

	working := p.Clone()
	if err := fn(&working); err != nil {
		return domain.CourseProgress{}, err
	}
	*p = working

	return working.Clone(), nil
}

func (r *CourseRepository) FindProgress(_ context.Context, userID, courseID string) (domain.CourseProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.progress[progressKey{userID: userID, courseID: courseID}]
	if !ok {
		return domain.CourseProgress{}, ErrProgressNotFound
	}

	return p.Clone(), nil
}

func (r *CourseRepository) ListProgressByUser(_ context.Context, userID string) ([]domain.CourseProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.CourseProgress, 0)
	for _, key := range r.progressOrder {
		if key.userID == userID {
			list = append(list, r.progress[key].Clone())
		}
	}

	return list, nil
}
