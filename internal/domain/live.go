package domain

import "time"

type LiveEventType string

const (
	LiveReply        LiveEventType = "reply"
	LiveConfirmation LiveEventType = "confirmation"
	LiveError        LiveEventType = "error"
)

// LiveEvent is one websocket frame on a thread's live feed.
type LiveEvent struct {
	Type     LiveEventType `json:"type"`
	ThreadID string        `json:"thread_id"`
	Reply    *Reply        `json:"reply,omitempty"`
	Message  string        `json:"message,omitempty"`
	SentAt   time.Time     `json:"sent_at"`
}

// LiveMessage is what a subscriber may send to post a reply.
type LiveMessage struct {
	AuthorID string `json:"author_id"`
	Content  string `json:"content"`
}
