package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 * 1024
	sendBuffer     = 64
)

// NewUpgrader accepts websocket handshakes from the configured CORS origins.
// An empty list accepts every origin.
func NewUpgrader(origins []string) websocket.Upgrader {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return len(allowed) == 0 || origin == "" || allowed[origin]
		},
	}
}

type liveClient struct {
	conn     *websocket.Conn
	send     chan []byte
	threadID string
}

// LiveHub fans out new forum replies to the websocket subscribers of their
// thread. Run must be running for PublishReply to make progress.
type LiveHub struct {
	threads      map[string]map[*liveClient]bool
	threadsMutex sync.RWMutex
	broadcast    chan domain.LiveEvent
	register     chan *liveClient
	unregister   chan *liveClient
	done         chan struct{}
	now          func() time.Time
}

func NewLiveHub(now func() time.Time) *LiveHub {
	return &LiveHub{
		threads:    make(map[string]map[*liveClient]bool),
		broadcast:  make(chan domain.LiveEvent, 256),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		done:       make(chan struct{}),
		now:        now,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// closes every open subscription.
func (h *LiveHub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.threadsMutex.Lock()
			for threadID, clients := range h.threads {
				for c := range clients {
					h.drop(threadID, c)
				}
			}
			h.threadsMutex.Unlock()
			return
		case c := <-h.register:
			h.threadsMutex.Lock()
			if h.threads[c.threadID] == nil {
				h.threads[c.threadID] = make(map[*liveClient]bool)
			}
			h.threads[c.threadID][c] = true
			h.threadsMutex.Unlock()
			metrics.LiveSubscribers.Inc()
		case c := <-h.unregister:
			h.threadsMutex.Lock()
			if h.threads[c.threadID][c] {
				h.drop(c.threadID, c)
			}
			h.threadsMutex.Unlock()
		case ev := <-h.broadcast:
			msg, err := json.Marshal(ev)
			if err != nil {
				zap.L().Error("marshal live event", zap.Error(err))
				continue
			}

			h.threadsMutex.Lock()
			for c := range h.threads[ev.ThreadID] {
				select {
				case c.send <- msg:
				default:
					h.drop(ev.ThreadID, c)
				}
			}
			h.threadsMutex.Unlock()
		}
	}
}

// drop must be called with threadsMutex held.
func (h *LiveHub) drop(threadID string, c *liveClient) {
	delete(h.threads[threadID], c)
	if len(h.threads[threadID]) == 0 {
		delete(h.threads, threadID)
	}
	close(c.send)
	metrics.LiveSubscribers.Dec()
}

func (h *LiveHub) PublishReply(reply domain.Reply) {
	ev := domain.LiveEvent{
		Type:     domain.LiveReply,
		ThreadID: reply.ThreadID,
		Reply:    &reply,
		SentAt:   h.now(),
	}

	select {
	case h.broadcast <- ev:
	case <-h.done:
	}
}

// Subscribers returns the number of open subscriptions to a thread.
func (h *LiveHub) Subscribers(threadID string) int {
	h.threadsMutex.RLock()
	defer h.threadsMutex.RUnlock()

	return len(h.threads[threadID])
}

func (h *LiveHub) subscribe(conn *websocket.Conn, threadID string) (*liveClient, bool) {
	c := &liveClient{
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		threadID: threadID,
	}

	select {
	case h.register <- c:
		return c, true
	case <-h.done:
		return nil, false
	}
}

func (h *LiveHub) unsubscribe(c *liveClient) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (c *liveClient) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump posts every message received from the client as a reply. The
// reply reaches all subscribers, the sender included, through the hub; the
// sender additionally gets a confirmation or an error frame.
func (c *liveClient) readPump(h *LiveHub, svc ReplyCreator) {
	defer func() {
		h.unsubscribe(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("live connection closed", zap.String("thread_id", c.threadID), zap.Error(err))
			}
			return
		}

		var msg domain.LiveMessage
		if err := json.Unmarshal(message, &msg); err != nil || msg.AuthorID == "" || msg.Content == "" {
			c.reply(h, domain.LiveEvent{Type: domain.LiveError, Message: "Ogiltigt meddelande"})
			continue
		}

		reply, err := svc.CreateReply(context.Background(), c.threadID, msg.AuthorID, msg.Content)
		if err != nil {
			c.reply(h, domain.LiveEvent{Type: domain.LiveError, Message: serviceErr("readPump -> svc.CreateReply", err).Message})
			continue
		}

		c.reply(h, domain.LiveEvent{Type: domain.LiveConfirmation, Reply: &reply, Message: "Svaret publicerades"})
	}
}

func (c *liveClient) reply(h *LiveHub, ev domain.LiveEvent) {
	ev.ThreadID = c.threadID
	ev.SentAt = h.now()

	msg, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.threadsMutex.RLock()
	defer h.threadsMutex.RUnlock()
	if h.threads[c.threadID][c] {
		select {
		case c.send <- msg:
		default:
		}
	}
}
