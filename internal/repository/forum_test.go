package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
)

func newSeededForum(t *testing.T) *ForumRepository {
	t.Helper()

	r := NewForumRepository()
	require.NoError(t, SeedForum(context.Background(), r, time.Now()))

	return r
}

func TestForumRepository_Categories(t *testing.T) {
	r := newSeededForum(t)
	ctx := context.Background()

	_, err := r.InsertThread(ctx, domain.Thread{CategoryID: "boende", Title: "Hej"})
	require.NoError(t, err)

	categories, err := r.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)
	assert.Equal(t, "allmänt", categories[0].ID)
	assert.Equal(t, 0, categories[0].ThreadCount)
	assert.Equal(t, "boende", categories[1].ID)
	assert.Equal(t, 1, categories[1].ThreadCount)

	_, err = r.InsertThread(ctx, domain.Thread{CategoryID: "saknas"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestForumRepository_Replies(t *testing.T) {
	r := newSeededForum(t)
	ctx := context.Background()
	now := time.Now()

	thread, err := r.InsertThread(ctx, domain.Thread{CategoryID: "familj", Title: "Fråga", CreatedAt: now, LastReplyAt: now})
	require.NoError(t, err)

	later := now.Add(time.Minute)
	reply, updated, err := r.InsertReply(ctx, domain.Reply{ThreadID: thread.ID, Content: "Svar", CreatedAt: later}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, reply.ID)
	assert.Equal(t, 1, updated.ReplyCount)
	assert.Equal(t, later, updated.LastReplyAt)

	closed := errors.New("closed")
	_, _, err = r.InsertReply(ctx, domain.Reply{ThreadID: thread.ID}, func(domain.Thread) error { return closed })
	assert.ErrorIs(t, err, closed)

	view, err := r.ViewThread(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Thread.ViewCount)
	assert.Len(t, view.Replies, 1)

	view, err = r.ViewThread(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Thread.ViewCount)

	_, err = r.ViewThread(ctx, "saknas")
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestForumRepository_ConcurrentReplies(t *testing.T) {
	r := newSeededForum(t)
	ctx := context.Background()

	thread, err := r.InsertThread(ctx, domain.Thread{CategoryID: "allmänt"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := r.InsertReply(ctx, domain.Reply{ThreadID: thread.ID, CreatedAt: time.Now()}, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err := r.ViewThread(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, view.Thread.ReplyCount)
	assert.Len(t, view.Replies, 40)
}

func TestForumRepository_Moderate(t *testing.T) {
	r := newSeededForum(t)
	ctx := context.Background()

	thread, err := r.InsertThread(ctx, domain.Thread{CategoryID: "allmänt"})
	require.NoError(t, err)

	moderated, err := r.ModerateThread(ctx, thread.ID, domain.ModerationAction{Approved: true, Close: true})
	require.NoError(t, err)
	assert.True(t, moderated.Moderated)
	assert.True(t, moderated.Closed)
	assert.False(t, moderated.Pinned)

	_, err = r.ModerateReply(ctx, "saknas", true)
	assert.ErrorIs(t, err, ErrReplyNotFound)
}

func TestForumRepository_Circles(t *testing.T) {
	r := NewForumRepository()
	ctx := context.Background()

	circle, err := r.InsertCircle(ctx, domain.Circle{Name: "Föräldrar", CreatorID: "anna", Members: []string{"anna", "erik"}})
	require.NoError(t, err)
	assert.Equal(t, 2, circle.MemberCount)

	updated, err := r.UpdateCircle(ctx, circle.ID, func(c *domain.Circle) error {
		c.Members = append(c.Members, "maria")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MemberCount)

	mine, err := r.ListCircles(ctx, "maria")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := r.ListCircles(ctx, "okänd")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = r.UpdateCircle(ctx, "saknas", func(*domain.Circle) error { return nil })
	assert.ErrorIs(t, err, ErrCircleNotFound)
}
