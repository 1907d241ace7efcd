package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

var ErrGuideNotFound = repository.ErrGuideNotFound

const (
	defaultLanguage = "sv"
	popularGuides   = 3
)

type GuideRepository interface {
	Insert(ctx context.Context, g domain.Guide) (domain.Guide, error)
	FindByID(ctx context.Context, id string) (domain.Guide, error)
	List(ctx context.Context) ([]domain.Guide, error)
	Update(ctx context.Context, id string, fn func(*domain.Guide)) (domain.Guide, error)
}

type DocsService struct {
	repo GuideRepository
	now  func() time.Time
}

func NewDocsService(repo GuideRepository, now func() time.Time) *DocsService {
	if now == nil {
		now = time.Now
	}

	return &DocsService{
		repo: repo,
		now:  now,
	}
}

// ListGuides returns active guides in language, optionally of one category.
func (s *DocsService) ListGuides(ctx context.Context, language, category string) ([]domain.Guide, error) {
	if language == "" {
		language = defaultLanguage
	}

	guides, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	list := make([]domain.Guide, 0, len(guides))
	for _, g := range guides {
		if !g.Active || g.Language != language {
			continue
		}
		if category != "" && g.Category != category {
			continue
		}
		list = append(list, g)
	}

	return list, nil
}

func (s *DocsService) GetGuide(ctx context.Context, id string) (domain.Guide, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return g, nil
}

func (s *DocsService) CreateGuide(ctx context.Context, g domain.Guide) (domain.Guide, error) {
	now := s.now()
	g.ID = ""
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Active = true
	if g.Language == "" {
		g.Language = defaultLanguage
	}
	if g.Audience == nil {
		g.Audience = []string{}
	}

	created, err := s.repo.Insert(ctx, g)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	zap.L().Info("guide created", zap.String("guide_id", created.ID), zap.String("title", created.Title))

	return created, nil
}

// UpdateGuide changes only the fields set in u and bumps UpdatedAt.
func (s *DocsService) UpdateGuide(ctx context.Context, id string, u domain.GuideUpdate) (domain.Guide, error) {
	now := s.now()
	g, err := s.repo.Update(ctx, id, func(g *domain.Guide) {
		if u.Title != nil {
			g.Title = *u.Title
		}
		if u.Description != nil {
			g.Description = *u.Description
		}
		if u.Category != nil {
			g.Category = *u.Category
		}
		if u.Steps != nil {
			g.Steps = u.Steps
		}
		if u.Audience != nil {
			g.Audience = u.Audience
		}
		g.UpdatedAt = now
	})
	if err != nil {
		return domain.Guide{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("guide updated", zap.String("guide_id", id))

	return g, nil
}

// Categories returns the sorted categories of the active guides.
func (s *DocsService) Categories(ctx context.Context) ([]string, error) {
	guides, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, g := range guides {
		if g.Active && !seen[g.Category] {
			seen[g.Category] = true
			categories = append(categories, g.Category)
		}
	}
	sort.Strings(categories)

	return categories, nil
}

// Search matches term case-insensitively against titles, descriptions and
// step headings and descriptions.
func (s *DocsService) Search(ctx context.Context, term, language string) ([]domain.Guide, error) {
	guides, err := s.ListGuides(ctx, language, "")
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	hits := make([]domain.Guide, 0)
	for _, g := range guides {
		if g.Matches(term) {
			hits = append(hits, g)
		}
	}

	return hits, nil
}

func (s *DocsService) Statistics(ctx context.Context) (domain.GuideStatistics, error) {
	guides, err := s.repo.List(ctx)
	if err != nil {
		return domain.GuideStatistics{}, fmt.Errorf("s.repo.List -> %w", err)
	}

	stats := domain.GuideStatistics{
		TotalGuides: len(guides),
		Categories:  make(map[string]int),
		Languages:   make(map[string]int),
		GeneratedAt: s.now(),
	}
	for _, g := range guides {
		if g.Active {
			stats.ActiveGuides++
		}
		stats.Categories[g.Category]++
		stats.Languages[g.Language]++
	}

	return stats, nil
}

// Overview returns the categories, the statistics and the most recently
// updated guides.
func (s *DocsService) Overview(ctx context.Context) (domain.DocsOverview, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return domain.DocsOverview{}, err
	}
	stats, err := s.Statistics(ctx)
	if err != nil {
		return domain.DocsOverview{}, err
	}
	guides, err := s.ListGuides(ctx, defaultLanguage, "")
	if err != nil {
		return domain.DocsOverview{}, err
	}

	sort.SliceStable(guides, func(i, j int) bool {
		return guides[i].UpdatedAt.After(guides[j].UpdatedAt)
	})
	if len(guides) > popularGuides {
		guides = guides[:popularGuides]
	}

	return domain.DocsOverview{
		Categories:    categories,
		Statistics:    stats,
		PopularGuides: guides,
	}, nil
}
