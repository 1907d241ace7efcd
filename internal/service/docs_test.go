package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

func newDocs(t *testing.T) (*DocsService, *testClock) {
	t.Helper()

	clock := &testClock{t: testStart}
	repo := repository.NewGuideRepository()
	require.NoError(t, repository.SeedGuides(context.Background(), repo, clock.t))

	return NewDocsService(repo, clock.now), clock
}

func guideIDs(guides []domain.Guide) []string {
	ids := make([]string, 0, len(guides))
	for _, g := range guides {
		ids = append(ids, g.ID)
	}

	return ids
}

func TestDocsService_ListGuides(t *testing.T) {
	svc, _ := newDocs(t)
	ctx := context.Background()

	all, err := svc.ListGuides(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"lss-ansökan-sv", "lss-överklagan-sv", "familjens-rättigheter-sv"}, guideIDs(all))
	assert.Equal(t, 4, all[0].StepCount)

	appeals, err := svc.ListGuides(ctx, "sv", "Överklagan")
	require.NoError(t, err)
	assert.Equal(t, []string{"lss-överklagan-sv"}, guideIDs(appeals))

	english, err := svc.ListGuides(ctx, "en", "")
	require.NoError(t, err)
	assert.Empty(t, english)

	_, err = svc.GetGuide(ctx, "finns-inte")
	assert.ErrorIs(t, err, ErrGuideNotFound)
}

func TestDocsService_Search(t *testing.T) {
	svc, _ := newDocs(t)
	ctx := context.Background()

	hits, err := svc.Search(ctx, "ÖVERKLAG", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"lss-överklagan-sv", "familjens-rättigheter-sv"}, guideIDs(hits))

	hits, err = svc.Search(ctx, "rymdresor", "")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestDocsService_CreateAndUpdate(t *testing.T) {
	svc, clock := newDocs(t)
	ctx := context.Background()

	g, err := svc.CreateGuide(ctx, domain.Guide{
		Title:    "Ledsagning",
		Category: "Insatser",
		Steps:    []domain.GuideStep{{Step: 1, Heading: "Ansök"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "sv", g.Language)
	assert.Equal(t, 1, g.StepCount)
	assert.NotNil(t, g.Audience)

	clock.advance(time.Hour)
	title := "Ledsagarservice"
	updated, err := svc.UpdateGuide(ctx, g.ID, domain.GuideUpdate{
		Title: &title,
		Steps: []domain.GuideStep{{Step: 1, Heading: "Ansök"}, {Step: 2, Heading: "Beslut"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ledsagarservice", updated.Title)
	assert.Equal(t, "Insatser", updated.Category)
	assert.Equal(t, 2, updated.StepCount)
	assert.Equal(t, clock.t, updated.UpdatedAt)
	assert.Equal(t, testStart, updated.CreatedAt)

	_, err = svc.UpdateGuide(ctx, "finns-inte", domain.GuideUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrGuideNotFound)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.PopularGuides, 3)
	assert.Equal(t, g.ID, overview.PopularGuides[0].ID)
	assert.Equal(t, []string{"Ansökan", "Insatser", "Rättigheter", "Överklagan"}, overview.Categories)
	assert.Equal(t, 4, overview.Statistics.TotalGuides)
	assert.Equal(t, map[string]int{"sv": 4}, overview.Statistics.Languages)
}
