package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
	"github.com/neuroljus/neurohus/internal/repository"
)

var (
	ErrResearchNotFound = repository.ErrResearchNotFound
	ErrDatasetNotFound  = repository.ErrDatasetNotFound
)

const labOverviewSize = 3

type LabRepository interface {
	InsertPost(ctx context.Context, p domain.ResearchPost) (domain.ResearchPost, error)
	FindPost(ctx context.Context, id string) (domain.ResearchPost, error)
	ListPosts(ctx context.Context) ([]domain.ResearchPost, error)
	InsertDataset(ctx context.Context, d domain.Dataset) (domain.Dataset, error)
	FindDataset(ctx context.Context, id string) (domain.Dataset, error)
	ListDatasets(ctx context.Context) ([]domain.Dataset, error)
	IncrementDownloads(ctx context.Context, id string) (domain.Dataset, error)
}

type LabService struct {
	repo LabRepository
	now  func() time.Time
}

func NewLabService(repo LabRepository, now func() time.Time) *LabService {
	if now == nil {
		now = time.Now
	}

	return &LabService{
		repo: repo,
		now:  now,
	}
}

// ListResearch filters posts by category and search term and orders them by
// impact score, highest first.
func (s *LabService) ListResearch(ctx context.Context, category, term string) ([]domain.ResearchPost, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPosts -> %w", err)
	}

	term = strings.ToLower(strings.TrimSpace(term))
	list := make([]domain.ResearchPost, 0, len(posts))
	for _, p := range posts {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" && !p.Matches(term) {
			continue
		}
		list = append(list, p)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ImpactScore > list[j].ImpactScore
	})

	return list, nil
}

func (s *LabService) GetResearch(ctx context.Context, id string) (domain.ResearchPost, error) {
	p, err := s.repo.FindPost(ctx, id)
	if err != nil {
		return domain.ResearchPost{}, fmt.Errorf("s.repo.FindPost -> %w", err)
	}

	return p, nil
}

func (s *LabService) CreateResearch(ctx context.Context, p domain.ResearchPost) (domain.ResearchPost, error) {
	p.ID = ""
	p.CreatedAt = s.now()

	created, err := s.repo.InsertPost(ctx, p)
	if err != nil {
		return domain.ResearchPost{}, fmt.Errorf("s.repo.InsertPost -> %w", err)
	}

	zap.L().Info("research post created", zap.String("post_id", created.ID), zap.String("title", created.Title))

	return created, nil
}

// SearchResearch runs a term search and groups the hits by category.
func (s *LabService) SearchResearch(ctx context.Context, term string) (domain.ResearchSearch, error) {
	posts, err := s.ListResearch(ctx, "", term)
	if err != nil {
		return domain.ResearchSearch{}, err
	}

	grouped := make(map[string][]domain.ResearchPost)
	for _, p := range posts {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	return domain.ResearchSearch{
		Term:       term,
		Hits:       len(posts),
		Categories: grouped,
		Posts:      posts,
	}, nil
}

// ListDatasets returns active datasets, most downloaded first.
func (s *LabService) ListDatasets(ctx context.Context, category string) ([]domain.Dataset, error) {
	datasets, err := s.repo.ListDatasets(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDatasets -> %w", err)
	}

	list := make([]domain.Dataset, 0, len(datasets))
	for _, d := range datasets {
		if !d.Active {
			continue
		}
		if category != "" && d.Category != category {
			continue
		}
		list = append(list, d)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Downloads > list[j].Downloads
	})

	return list, nil
}

func (s *LabService) GetDataset(ctx context.Context, id string) (domain.Dataset, error) {
	d, err := s.repo.FindDataset(ctx, id)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("s.repo.FindDataset -> %w", err)
	}

	return d, nil
}

func (s *LabService) CreateDataset(ctx context.Context, d domain.Dataset) (domain.Dataset, error) {
	now := s.now()
	d.ID = ""
	d.CreatedAt = now
	d.UpdatedAt = now
	d.Downloads = 0
	d.Active = true

	created, err := s.repo.InsertDataset(ctx, d)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("s.repo.InsertDataset -> %w", err)
	}

	zap.L().Info("dataset created", zap.String("dataset_id", created.ID), zap.String("name", created.Name))

	return created, nil
}

// Download counts a download and returns where to fetch the file.
func (s *LabService) Download(ctx context.Context, id string) (domain.DatasetDownload, error) {
	d, err := s.repo.IncrementDownloads(ctx, id)
	if err != nil {
		return domain.DatasetDownload{}, fmt.Errorf("s.repo.IncrementDownloads -> %w", err)
	}

	metrics.DatasetDownloads.WithLabelValues(d.ID).Inc()

	return domain.DatasetDownload{
		Dataset:     d,
		DownloadURL: fmt.Sprintf("/lab/datasets/%s/download", d.ID),
	}, nil
}

func (s *LabService) Statistics(ctx context.Context) (domain.LabStatistics, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return domain.LabStatistics{}, fmt.Errorf("s.repo.ListPosts -> %w", err)
	}
	datasets, err := s.repo.ListDatasets(ctx)
	if err != nil {
		return domain.LabStatistics{}, fmt.Errorf("s.repo.ListDatasets -> %w", err)
	}

	stats := domain.LabStatistics{
		TotalPosts:    len(posts),
		TotalDatasets: len(datasets),
		GeneratedAt:   s.now(),
	}

	impact := 0.0
	researchCategories := make(map[string]bool)
	for _, p := range posts {
		if p.Published {
			stats.PublishedPosts++
		}
		impact += p.ImpactScore
		researchCategories[p.Category] = true
	}
	if len(posts) > 0 {
		stats.AverageImpact = impact / float64(len(posts))
	}

	datasetCategories := make(map[string]bool)
	for _, d := range datasets {
		if d.Active {
			stats.ActiveDatasets++
		}
		stats.TotalDownloads += d.Downloads
		datasetCategories[d.Category] = true
	}

	stats.ResearchCategories = sortedKeys(researchCategories)
	stats.DatasetCategories = sortedKeys(datasetCategories)

	return stats, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Overview returns the statistics, the newest posts and the most downloaded
// datasets.
func (s *LabService) Overview(ctx context.Context) (domain.LabOverview, error) {
	stats, err := s.Statistics(ctx)
	if err != nil {
		return domain.LabOverview{}, err
	}

	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return domain.LabOverview{}, fmt.Errorf("s.repo.ListPosts -> %w", err)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > labOverviewSize {
		posts = posts[:labOverviewSize]
	}

	datasets, err := s.ListDatasets(ctx, "")
	if err != nil {
		return domain.LabOverview{}, err
	}
	if len(datasets) > labOverviewSize {
		datasets = datasets[:labOverviewSize]
	}

	return domain.LabOverview{
		Statistics:      stats,
		LatestResearch:  posts,
		PopularDatasets: datasets,
	}, nil
}
