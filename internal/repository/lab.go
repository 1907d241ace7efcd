package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/neuroljus/neurohus/internal/domain"
)

var (
	ErrResearchNotFound = errors.New("research post not found")
	ErrDatasetNotFound  = errors.New("dataset not found")
)

// LabRepository keeps research posts and open datasets.
type LabRepository struct {
	mu sync.RWMutex

	posts     map[string]domain.ResearchPost
	postOrder []string

	datasets     map[string]domain.Dataset
	datasetOrder []string
}

func NewLabRepository() *LabRepository {
	return &LabRepository{
		posts:    make(map[string]domain.ResearchPost),
		datasets: make(map[string]domain.Dataset),
	}
}

func (r *LabRepository) InsertPost(_ context.Context, p domain.ResearchPost) (domain.ResearchPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, ok := r.posts[p.ID]; !ok {
		r.postOrder = append(r.postOrder, p.ID)
	}
	r.posts[p.ID] = p

	return p, nil
}

func (r *LabRepository) FindPost(_ context.Context, id string) (domain.ResearchPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return domain.ResearchPost{}, ErrResearchNotFound
	}

	return p, nil
}

func (r *LabRepository) ListPosts(_ context.Context) ([]domain.ResearchPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.ResearchPost, 0, len(r.postOrder))
	for _, id := range r.postOrder {
		list = append(list, r.posts[id])
	}

	return list, nil
}

func (r *LabRepository) InsertDataset(_ context.Context, d domain.Dataset) (domain.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if _, ok := r.datasets[d.ID]; !ok {
		r.datasetOrder = append(r.datasetOrder, d.ID)
	}
	r.datasets[d.ID] = d

	return d, nil
}

func (r *LabRepository) FindDataset(_ context.Context, id string) (domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.datasets[id]
	if !ok {
		return domain.Dataset{}, ErrDatasetNotFound
	}

	return d, nil
}

func (r *LabRepository) ListDatasets(_ context.Context) ([]domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Dataset, 0, len(r.datasetOrder))
	for _, id := range r.datasetOrder {
		list = append(list, r.datasets[id])
	}

	return list, nil
}

// IncrementDownloads bumps the download counter of a dataset and returns the
// updated record.
func (r *LabRepository) IncrementDownloads(_ context.Context, id string) (domain.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.datasets[id]
	if !ok {
		return domain.Dataset{}, ErrDatasetNotFound
	}
	d.Downloads++
	r.datasets[id] = d

	return d, nil
}
