package domain

import "time"

type ForumCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
	ThreadCount int       `json:"thread_count"`
}

type Thread struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Closed      bool      `json:"closed"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	LastReplyAt time.Time `json:"last_reply_at"`
	ReplyCount  int       `json:"reply_count"`
	ViewCount   int       `json:"view_count"`
	Moderated   bool      `json:"moderated"`
}

type Reply struct {
	ID        string     `json:"id"`
	ThreadID  string     `json:"thread_id"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	Moderated bool       `json:"moderated"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`
}

type ThreadWithReplies struct {
	Thread  Thread  `json:"thread"`
	Replies []Reply `json:"replies"`
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

type ThreadPage struct {
	Threads    []Thread   `json:"threads"`
	Pagination Pagination `json:"pagination"`
}

type Circle struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_id"`
	Members     []string  `json:"members"`
	MemberCount int       `json:"member_count"`
	Private     bool      `json:"private"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}

func (c Circle) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}

	return false
}

type ContentType string

const (
	ContentThread ContentType = "thread"
	ContentReply  ContentType = "reply"
)

type ModerationAction struct {
	Approved bool `json:"approved"`
	Close    bool `json:"close"`
	Pin      bool `json:"pin"`
}

type CommunityStatistics struct {
	TotalThreads     int       `json:"total_threads"`
	TotalReplies     int       `json:"total_replies"`
	ThreadsLastWeek  int       `json:"threads_last_week"`
	ThreadsLastMonth int       `json:"threads_last_month"`
	RepliesLastWeek  int       `json:"replies_last_week"`
	RepliesLastMonth int       `json:"replies_last_month"`
	ActiveCategories int       `json:"active_categories"`
	TotalCircles     int       `json:"total_circles"`
	ActiveCircles    int       `json:"active_circles"`
	TotalMemberships int       `json:"total_memberships"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type CommunityOverview struct {
	Categories    []ForumCategory     `json:"categories"`
	Statistics    CommunityStatistics `json:"statistics"`
	LatestThreads []Thread            `json:"latest_threads"`
}
