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

func newLab(t *testing.T) (*LabService, *testClock) {
	t.Helper()

	clock := &testClock{t: testStart}
	repo := repository.NewLabRepository()
	require.NoError(t, repository.SeedLab(context.Background(), repo, clock.t))

	return NewLabService(repo, clock.now), clock
}

func TestLabService_Research(t *testing.T) {
	svc, _ := newLab(t)
	ctx := context.Background()

	all, err := svc.ListResearch(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "forskning-3", all[0].ID)
	assert.Equal(t, "forskning-1", all[1].ID)
	assert.Equal(t, "forskning-2", all[2].ID)

	tech, err := svc.ListResearch(ctx, "Teknologi", "")
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "forskning-1", tech[0].ID)

	search, err := svc.SearchResearch(ctx, "Perception")
	require.NoError(t, err)
	assert.Equal(t, 1, search.Hits)
	require.Contains(t, search.Categories, "Neurovetenskap")
	assert.Equal(t, "forskning-2", search.Categories["Neurovetenskap"][0].ID)

	_, err = svc.GetResearch(ctx, "forskning-9")
	assert.ErrorIs(t, err, ErrResearchNotFound)
}

func TestLabService_Datasets(t *testing.T) {
	svc, _ := newLab(t)
	ctx := context.Background()

	list, err := svc.ListDatasets(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "dataset-3", list[0].ID)
	assert.Equal(t, "dataset-1", list[1].ID)
	assert.Equal(t, "dataset-2", list[2].ID)

	dl, err := svc.Download(ctx, "dataset-2")
	require.NoError(t, err)
	assert.Equal(t, 90, dl.Dataset.Downloads)
	assert.Equal(t, "/lab/datasets/dataset-2/download", dl.DownloadURL)

	_, err = svc.Download(ctx, "dataset-9")
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = svc.GetDataset(ctx, "dataset-9")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestLabService_CreateAndStatistics(t *testing.T) {
	svc, clock := newLab(t)
	ctx := context.Background()

	clock.advance(time.Hour)
	post, err := svc.CreateResearch(ctx, domain.ResearchPost{
		Title:       "Sömn och stöd",
		Category:    "Neurovetenskap",
		ImpactScore: 5.2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, clock.t, post.CreatedAt)

	ds, err := svc.CreateDataset(ctx, domain.Dataset{Name: "Sömndata", Category: "Forskningsdata", Downloads: 500})
	require.NoError(t, err)
	assert.Zero(t, ds.Downloads)
	assert.True(t, ds.Active)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalPosts)
	assert.Equal(t, 3, stats.PublishedPosts)
	assert.InDelta(t, (8.5+7.2+9.1+5.2)/4, stats.AverageImpact, 1e-9)
	assert.Equal(t, 4, stats.TotalDatasets)
	assert.Equal(t, 479, stats.TotalDownloads)
	assert.Equal(t, []string{"Neurovetenskap", "Samhällsvetenskap", "Teknologi"}, stats.ResearchCategories)
	assert.Equal(t, []string{"Forskningsdata", "Kommunaldata", "Verksamhetsdata"}, stats.DatasetCategories)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.LatestResearch, 3)
	assert.Equal(t, post.ID, overview.LatestResearch[0].ID)
	require.Len(t, overview.PopularDatasets, 3)
	assert.Equal(t, "dataset-3", overview.PopularDatasets[0].ID)
}
