package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
	"github.com/neuroljus/neurohus/internal/repository"
)

var (
	ErrCategoryNotFound   = repository.ErrCategoryNotFound
	ErrThreadNotFound     = repository.ErrThreadNotFound
	ErrReplyNotFound      = repository.ErrReplyNotFound
	ErrCircleNotFound     = repository.ErrCircleNotFound
	ErrThreadClosed       = errors.New("thread is closed for replies")
	ErrAlreadyMember      = errors.New("user is already a member")
	ErrNotMember          = errors.New("user is not a member")
	ErrCreatorRemoval     = errors.New("the creator cannot be removed from the circle")
	ErrInvalidContentType = errors.New("unknown content type")
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	latestThreads  = 5
)

type ForumRepository interface {
	ListCategories(ctx context.Context) ([]domain.ForumCategory, error)
	InsertThread(ctx context.Context, t domain.Thread) (domain.Thread, error)
	ListThreads(ctx context.Context, categoryID string) ([]domain.Thread, error)
	ViewThread(ctx context.Context, id string) (domain.ThreadWithReplies, error)
	InsertReply(ctx context.Context, reply domain.Reply, check func(domain.Thread) error) (domain.Reply, domain.Thread, error)
	ListReplies(ctx context.Context) ([]domain.Reply, error)
	ModerateThread(ctx context.Context, id string, action domain.ModerationAction) (domain.Thread, error)
	ModerateReply(ctx context.Context, id string, approved bool) (domain.Reply, error)
	InsertCircle(ctx context.Context, c domain.Circle) (domain.Circle, error)
	ListCircles(ctx context.Context, userID string) ([]domain.Circle, error)
	UpdateCircle(ctx context.Context, id string, fn func(*domain.Circle) error) (domain.Circle, error)
}

// ReplyPublisher is told about every accepted reply.
type ReplyPublisher interface {
	PublishReply(reply domain.Reply)
}

type CommunityService struct {
	repo      ForumRepository
	publisher ReplyPublisher
	now       func() time.Time
}

func NewCommunityService(repo ForumRepository, publisher ReplyPublisher, now func() time.Time) *CommunityService {
	if now == nil {
		now = time.Now
	}

	return &CommunityService{
		repo:      repo,
		publisher: publisher,
		now:       now,
	}
}

func (s *CommunityService) Categories(ctx context.Context) ([]domain.ForumCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}

	active := make([]domain.ForumCategory, 0, len(categories))
	for _, c := range categories {
		if c.Active {
			active = append(active, c)
		}
	}

	return active, nil
}

func (s *CommunityService) CreateThread(ctx context.Context, categoryID, authorID, title, content string) (domain.Thread, error) {
	now := s.now()
	t, err := s.repo.InsertThread(ctx, domain.Thread{
		CategoryID:  categoryID,
		AuthorID:    authorID,
		Title:       title,
		Content:     content,
		CreatedAt:   now,
		LastReplyAt: now,
	})
	if err != nil {
		return domain.Thread{}, fmt.Errorf("s.repo.InsertThread -> %w", err)
	}

	zap.L().Info("thread created", zap.String("thread_id", t.ID), zap.String("category_id", categoryID))

	return t, nil
}

// ListThreads pages through threads ordered by latest activity. page and
// perPage below 1 fall back to 1 and 20; perPage is capped at 100 and pages
// past the end come back empty.
func (s *CommunityService) ListThreads(ctx context.Context, categoryID string, page, perPage int) (domain.ThreadPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	threads, err := s.repo.ListThreads(ctx, categoryID)
	if err != nil {
		return domain.ThreadPage{}, fmt.Errorf("s.repo.ListThreads -> %w", err)
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastReplyAt.After(threads[j].LastReplyAt)
	})

	total := len(threads)
	start := total
	if page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return domain.ThreadPage{
		Threads: threads[start:end],
		Pagination: domain.Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   (total + perPage - 1) / perPage,
		},
	}, nil
}

// GetThread counts a view and returns the thread with its replies.
func (s *CommunityService) GetThread(ctx context.Context, id string) (domain.ThreadWithReplies, error) {
	t, err := s.repo.ViewThread(ctx, id)
	if err != nil {
		return domain.ThreadWithReplies{}, fmt.Errorf("s.repo.ViewThread -> %w", err)
	}

	return t, nil
}

func (s *CommunityService) CreateReply(ctx context.Context, threadID, authorID, content string) (domain.Reply, error) {
	reply, _, err := s.repo.InsertReply(ctx, domain.Reply{
		ThreadID:  threadID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: s.now(),
	}, func(t domain.Thread) error {
		if t.Closed {
			return ErrThreadClosed
		}

		return nil
	})
	if err != nil {
		return domain.Reply{}, fmt.Errorf("s.repo.InsertReply -> %w", err)
	}

	metrics.ForumReplies.Inc()
	if s.publisher != nil {
		s.publisher.PublishReply(reply)
	}

	return reply, nil
}

// CreateCircle makes a private circle. The creator is always a member and
// duplicate members are dropped, keeping first occurrence order.
func (s *CommunityService) CreateCircle(ctx context.Context, name, description, creatorID string, members []string) (domain.Circle, error) {
	seen := make(map[string]bool, len(members)+1)
	all := make([]string, 0, len(members)+1)
	for _, m := range append([]string{creatorID}, members...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		all = append(all, m)
	}

	c, err := s.repo.InsertCircle(ctx, domain.Circle{
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
		Members:     all,
		Private:     true,
		CreatedAt:   s.now(),
		Active:      true,
	})
	if err != nil {
		return domain.Circle{}, fmt.Errorf("s.repo.InsertCircle -> %w", err)
	}

	zap.L().Info("circle created", zap.String("circle_id", c.ID), zap.Int("members", c.MemberCount))

	return c, nil
}

func (s *CommunityService) UserCircles(ctx context.Context, userID string) ([]domain.Circle, error) {
	circles, err := s.repo.ListCircles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCircles -> %w", err)
	}

	return circles, nil
}

func (s *CommunityService) AddMember(ctx context.Context, circleID, userID string) (domain.Circle, error) {
	c, err := s.repo.UpdateCircle(ctx, circleID, func(c *domain.Circle) error {
		if c.HasMember(userID) {
			return ErrAlreadyMember
		}
		c.Members = append(c.Members, userID)

		return nil
	})
	if err != nil {
		return domain.Circle{}, fmt.Errorf("s.repo.UpdateCircle -> %w", err)
	}

	return c, nil
}

func (s *CommunityService) RemoveMember(ctx context.Context, circleID, userID string) (domain.Circle, error) {
	c, err := s.repo.UpdateCircle(ctx, circleID, func(c *domain.Circle) error {
		if !c.HasMember(userID) {
			return ErrNotMember
		}
		if userID == c.CreatorID {
			return ErrCreatorRemoval
		}

		members := c.Members[:0]
		for _, m := range c.Members {
			if m != userID {
				members = append(members, m)
			}
		}
		c.Members = members

		return nil
	})
	if err != nil {
		return domain.Circle{}, fmt.Errorf("s.repo.UpdateCircle -> %w", err)
	}

	return c, nil
}

// Moderate applies a moderation decision to a thread or a reply. Only the
// approval flag applies to replies.
func (s *CommunityService) Moderate(ctx context.Context, contentType domain.ContentType, id string, action domain.ModerationAction) error {
	switch contentType {
	case domain.ContentThread:
		if _, err := s.repo.ModerateThread(ctx, id, action); err != nil {
			return fmt.Errorf("s.repo.ModerateThread -> %w", err)
		}
	case domain.ContentReply:
		if _, err := s.repo.ModerateReply(ctx, id, action.Approved); err != nil {
			return fmt.Errorf("s.repo.ModerateReply -> %w", err)
		}
	default:
		return ErrInvalidContentType
	}

	zap.L().Info("content moderated",
		zap.String("content_type", string(contentType)),
		zap.String("id", id),
		zap.Bool("approved", action.Approved),
	)

	return nil
}

func (s *CommunityService) Statistics(ctx context.Context) (domain.CommunityStatistics, error) {
	now := s.now()
	week := now.AddDate(0, 0, -7)
	month := now.AddDate(0, 0, -30)

	threads, err := s.repo.ListThreads(ctx, "")
	if err != nil {
		return domain.CommunityStatistics{}, fmt.Errorf("s.repo.ListThreads -> %w", err)
	}
	replies, err := s.repo.ListReplies(ctx)
	if err != nil {
		return domain.CommunityStatistics{}, fmt.Errorf("s.repo.ListReplies -> %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return domain.CommunityStatistics{}, err
	}
	circles, err := s.repo.ListCircles(ctx, "")
	if err != nil {
		return domain.CommunityStatistics{}, fmt.Errorf("s.repo.ListCircles -> %w", err)
	}

	stats := domain.CommunityStatistics{
		TotalThreads:     len(threads),
		TotalReplies:     len(replies),
		ActiveCategories: len(categories),
		TotalCircles:     len(circles),
		GeneratedAt:      now,
	}
	for _, t := range threads {
		if !t.CreatedAt.Before(week) {
			stats.ThreadsLastWeek++
		}
		if !t.CreatedAt.Before(month) {
			stats.ThreadsLastMonth++
		}
	}
	for _, r := range replies {
		if !r.CreatedAt.Before(week) {
			stats.RepliesLastWeek++
		}
		if !r.CreatedAt.Before(month) {
			stats.RepliesLastMonth++
		}
	}
	for _, c := range circles {
		if c.Active {
			stats.ActiveCircles++
		}
		stats.TotalMemberships += len(c.Members)
	}

	return stats, nil
}

// Overview returns the categories, the statistics and the newest threads.
func (s *CommunityService) Overview(ctx context.Context) (domain.CommunityOverview, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return domain.CommunityOverview{}, err
	}
	stats, err := s.Statistics(ctx)
	if err != nil {
		return domain.CommunityOverview{}, err
	}
	threads, err := s.repo.ListThreads(ctx, "")
	if err != nil {
		return domain.CommunityOverview{}, fmt.Errorf("s.repo.ListThreads -> %w", err)
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].CreatedAt.After(threads[j].CreatedAt)
	})
	if len(threads) > latestThreads {
		threads = threads[:latestThreads]
	}

	return domain.CommunityOverview{
		Categories:    categories,
		Statistics:    stats,
		LatestThreads: threads,
	}, nil
}
