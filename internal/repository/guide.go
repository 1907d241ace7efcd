package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/neuroljus/neurohus/internal/domain"
)

var ErrGuideNotFound = errors.New("guide not found")

type GuideRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Guide
	order []string
}

func NewGuideRepository() *GuideRepository {
	return &GuideRepository{items: make(map[string]domain.Guide)}
}

func (r *GuideRepository) Insert(_ context.Context, g domain.Guide) (domain.Guide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.StepCount = len(g.Steps)
	if _, ok := r.items[g.ID]; !ok {
		r.order = append(r.order, g.ID)
	}
	r.items[g.ID] = g

	return g, nil
}

func (r *GuideRepository) FindByID(_ context.Context, id string) (domain.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]
	if !ok {
		return domain.Guide{}, ErrGuideNotFound
	}

	return g, nil
}

func (r *GuideRepository) List(_ context.Context) ([]domain.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Guide, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.items[id])
	}

	return list, nil
}

// Update applies fn to the stored guide under the write lock.
func (r *GuideRepository) Update(_ context.Context, id string, fn func(*domain.Guide)) (domain.Guide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[id]
	if !ok {
		return domain.Guide{}, ErrGuideNotFound
	}
	fn(&g)
	g.StepCount = len(g.Steps)
	r.items[id] = g

	return g, nil
}
