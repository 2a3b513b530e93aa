// Package websocket implements the real-time relay that pushes
// notification lifecycle events to connected admin dashboards.
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"go.uber.org/atomic"

	"github.com/velmara/heritage-panel/logger"
)

// EventType identifies a relay event.
type EventType string

const (
	EventNewNotification      EventType = "new-notification"
	EventNotificationUpdated  EventType = "notification-updated"
	EventAllNotificationsRead EventType = "all-notifications-read"
	EventNotificationDeleted  EventType = "notification-deleted"
)

// Message is the wire frame sent to admin dashboards.
type Message struct {
	Event   EventType `json:"event"`
	Payload any       `json:"payload"`
	Time    int64     `json:"time"`
}

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
)

// Client is one websocket connection. A client only receives broadcasts
// after the hub admits it into the admin room.
type Client struct {
	ID   string
	Conn *gorillaws.Conn
	Send chan []byte
	hub  *Hub
}

// NewClient wraps an upgraded connection. It is not a room member until
// Register is called.
func NewClient(hub *Hub, conn *gorillaws.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBufferSize),
		hub:  hub,
	}
}

// WritePump drains the send channel into the connection. One ordered
// channel per connection keeps per-connection delivery order.
func (c *Client) WritePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(gorillaws.TextMessage, message); err != nil {
			logger.Debug("websocket write error:", err)
			return
		}
	}
}

// Hub owns the admin room: the set of admitted connections that receive
// notification broadcasts. It is constructed once at startup and passed
// to whatever accepts connections; there is no package-level instance.
type Hub struct {
	members map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc

	sent atomic.Int64
}

// NewHub creates an admin-room hub. Call Run on its own goroutine.
func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		members:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client, 100),
		unregister: make(chan *Client, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run processes membership changes and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			h.mu.Lock()
			for member := range h.members {
				close(member.Send)
			}
			h.members = make(map[*Client]bool)
			h.mu.Unlock()
			logger.Info("websocket hub stopped")
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.members[client] = true
			count := len(h.members)
			h.mu.Unlock()
			logger.Debugf("admin room joined: %s (members: %d)", client.ID, count)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.members[client]; ok {
				delete(h.members, client)
				close(client.Send)
			}
			count := len(h.members)
			h.mu.Unlock()
			logger.Debugf("admin room left: %s (members: %d)", client.ID, count)

		case message := <-h.broadcast:
			if message == nil {
				continue
			}
			h.mu.RLock()
			members := make([]*Client, 0, len(h.members))
			for member := range h.members {
				members = append(members, member)
			}
			h.mu.RUnlock()
			if len(members) == 0 {
				continue
			}
			h.fanOut(members, message)
		}
	}
}

// fanOut delivers one frame to every member in parallel. A member whose
// send buffer is full is kicked out of the room; it recovers state on
// its next poll.
func (h *Hub) fanOut(members []*Client, message []byte) {
	var wg sync.WaitGroup
	for _, member := range members {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					// send channel may have been closed under us
					logger.Debugf("websocket send recovered for %s: %v", c.ID, r)
				}
			}()
			select {
			case c.Send <- message:
			default:
				logger.Debugf("websocket client %s send buffer full, disconnecting", c.ID)
				h.Unregister(c)
			}
		}(member)
	}
	wg.Wait()
	h.sent.Inc()
}

// Broadcast queues an event for delivery to every admin-room member.
// It never blocks the caller for longer than the enqueue timeout, so
// the HTTP path that triggered it is not held up.
func (h *Hub) Broadcast(event EventType, payload any) {
	if h == nil {
		return
	}

	msg := Message{
		Event:   event,
		Payload: payload,
		Time:    time.Now().UnixMilli(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal websocket message:", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-time.After(100 * time.Millisecond):
		logger.Warning("websocket broadcast channel full, dropping message")
	case <-h.ctx.Done():
	}
}

// Register admits a client into the admin room. Callers must have
// validated the client's credential first; an unauthenticated
// connection is simply never registered.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister removes a client from the admin room. Safe to call for
// clients that were never admitted.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// MemberCount returns the number of admitted connections.
func (h *Hub) MemberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.members)
}

// BroadcastsSent returns how many frames have been fanned out.
func (h *Hub) BroadcastsSent() int64 {
	return h.sent.Load()
}

// Stop shuts the hub down and closes all member channels.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	if h.cancel != nil {
		h.cancel()
	}
}
