package repository

import (
	"context"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

// SeedForum loads the standard forum categories.
func SeedForum(ctx context.Context, r *ForumRepository, now time.Time) error {
	categories := []domain.ForumCategory{
		{ID: "allmänt", Name: "Allmänt", Description: "Allmänna diskussioner om LSS och neurodiversitet", Icon: "💬", Color: "#3B82F6"},
		{ID: "boende", Name: "Boende", Description: "Diskussioner om LSS-boenden och boendeformer", Icon: "🏠", Color: "#10B981"},
		{ID: "assistans", Name: "Assistans", Description: "Frågor och tips om personlig assistans", Icon: "🤝", Color: "#F59E0B"},
		{ID: "familj", Name: "Familj", Description: "Stöd och råd för familjer", Icon: "👨‍👩‍👧‍👦", Color: "#EF4444"},
		{ID: "forskning", Name: "Forskning", Description: "Senaste forskning och utveckling", Icon: "🔬", Color: "#8B5CF6"},
	}
	for _, c := range categories {
		c.CreatedAt = now
		c.Active = true
		if _, err := r.CreateCategory(ctx, c); err != nil {
			return err
		}
	}

	return nil
}
