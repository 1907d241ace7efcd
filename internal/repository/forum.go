package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/neuroljus/neurohus/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrThreadNotFound   = errors.New("thread not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrCircleNotFound   = errors.New("circle not found")
)

// ForumRepository holds the forum categories, threads, replies and private
// circles.
type ForumRepository struct {
	mu sync.RWMutex

	categories    map[string]domain.ForumCategory
	categoryOrder []string

	threads     map[string]domain.Thread
	threadOrder []string

	replies     map[string]domain.Reply
	replyOrder  []string
	circles     map[string]domain.Circle
	circleOrder []string
}

func NewForumRepository() *ForumRepository {
	return &ForumRepository{
		categories: make(map[string]domain.ForumCategory),
		threads:    make(map[string]domain.Thread),
		replies:    make(map[string]domain.Reply),
		circles:    make(map[string]domain.Circle),
	}
}

func (r *ForumRepository) CreateCategory(_ context.Context, c domain.ForumCategory) (domain.ForumCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		r.categoryOrder = append(r.categoryOrder, c.ID)
	}
	r.categories[c.ID] = c

	return c, nil
}

// ListCategories returns the categories with their current thread count.
func (r *ForumRepository) ListCategories(_ context.Context) ([]domain.ForumCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.categories))
	for _, t := range r.threads {
		counts[t.CategoryID]++
	}

	list := make([]domain.ForumCategory, 0, len(r.categoryOrder))
	for _, id := range r.categoryOrder {
		c := r.categories[id]
		c.ThreadCount = counts[id]
		list = append(list, c)
	}

	return list, nil
}

func (r *ForumRepository) InsertThread(_ context.Context, t domain.Thread) (domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[t.CategoryID]; !ok {
		return domain.Thread{}, ErrCategoryNotFound
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.threads[t.ID] = t
	r.threadOrder = append(r.threadOrder, t.ID)

	return t, nil
}

// ListThreads returns threads in creation order, limited to one category
// when categoryID is not empty.
func (r *ForumRepository) ListThreads(_ context.Context, categoryID string) ([]domain.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Thread, 0)
	for _, id := range r.threadOrder {
		t := r.threads[id]
		if categoryID != "" && t.CategoryID != categoryID {
			continue
		}
		list = append(list, t)
	}

	return list, nil
}

// ViewThread bumps the view counter and returns the thread with its replies
// in creation order.
func (r *ForumRepository) ViewThread(_ context.Context, id string) (domain.ThreadWithReplies, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[id]
	if !ok {
		return domain.ThreadWithReplies{}, ErrThreadNotFound
	}
	t.ViewCount++
	r.threads[id] = t

	replies := make([]domain.Reply, 0, t.ReplyCount)
	for _, rid := range r.replyOrder {
		if reply := r.replies[rid]; reply.ThreadID == id {
			replies = append(replies, reply)
		}
	}

	return domain.ThreadWithReplies{Thread: t, Replies: replies}, nil
}

// InsertReply stores reply once check has accepted the parent thread, and
// updates the thread's reply count and last activity.
func (r *ForumRepository) InsertReply(_ context.Context, reply domain.Reply, check func(domain.Thread) error) (domain.Reply, domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[reply.ThreadID]
	if !ok {
		return domain.Reply{}, domain.Thread{}, ErrThreadNotFound
	}
	if check != nil {
		if err := check(t); err != nil {
			return domain.Reply{}, domain.Thread{}, err
		}
	}

	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}
	r.replies[reply.ID] = reply
	r.replyOrder = append(r.replyOrder, reply.ID)

	t.ReplyCount++
	t.LastReplyAt = reply.CreatedAt
	r.threads[t.ID] = t

	return reply, t, nil
}

func (r *ForumRepository) ListReplies(_ context.Context) ([]domain.Reply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Reply, 0, len(r.replyOrder))
	for _, id := range r.replyOrder {
		list = append(list, r.replies[id])
	}

	return list, nil
}

func (r *ForumRepository) ModerateThread(_ context.Context, id string, action domain.ModerationAction) (domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[id]
	if !ok {
		return domain.Thread{}, ErrThreadNotFound
	}
	t.Moderated = action.Approved
	if action.Close {
		t.Closed = true
	}
	if action.Pin {
		t.Pinned = true
	}
	r.threads[id] = t

	return t, nil
}

func (r *ForumRepository) ModerateReply(_ context.Context, id string, approved bool) (domain.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reply, ok := r.replies[id]
	if !ok {
		return domain.Reply{}, ErrReplyNotFound
	}
	reply.Moderated = approved
	r.replies[id] = reply

	return reply, nil
}

func (r *ForumRepository) InsertCircle(_ context.Context, c domain.Circle) (domain.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Members = append([]string(nil), c.Members...)
	c.MemberCount = len(c.Members)
	r.circles[c.ID] = c
	r.circleOrder = append(r.circleOrder, c.ID)

	return cloneCircle(c), nil
}

func (r *ForumRepository) FindCircle(_ context.Context, id string) (domain.Circle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.circles[id]
	if !ok {
		return domain.Circle{}, ErrCircleNotFound
	}

	return cloneCircle(c), nil
}

// ListCircles returns every circle, or only those userID belongs to when it
// is not empty.
func (r *ForumRepository) ListCircles(_ context.Context, userID string) ([]domain.Circle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Circle, 0)
	for _, id := range r.circleOrder {
		c := r.circles[id]
		if userID != "" && !c.HasMember(userID) {
			continue
		}
		list = append(list, cloneCircle(c))
	}

	return list, nil
}

// UpdateCircle applies fn to a copy of the circle under the write lock and
// stores the result unless fn fails.
func (r *ForumRepository) UpdateCircle(_ context.Context, id string, fn func(*domain.Circle) error) (domain.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.circles[id]
	if !ok {
		return domain.Circle{}, ErrCircleNotFound
	}

	working := cloneCircle(c)
	if err := fn(&working); err != nil {
		return domain.Circle{}, err
	}
	working.MemberCount = len(working.Members)
	r.circles[id] = working

	return cloneCircle(working), nil
}

func cloneCircle(c domain.Circle) domain.Circle {
	c.Members = append([]string(nil), c.Members...)
	return c
}
