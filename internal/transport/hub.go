package transport

import (
	"sync"
)

// Hub indexes live connections by ID and by the user they belong to, so
// an inbound message or an outbound broadcast can be routed without a
// scan. It owns the shared inbound channel every Connection feeds.
type Hub struct {
	mu          sync.RWMutex
	byID        map[string]*Connection
	byUser      map[string]*Connection
	InboundChan chan Inbound
}

func NewHub() *Hub {
	return &Hub{
		byID:        make(map[string]*Connection),
		byUser:      make(map[string]*Connection),
		InboundChan: make(chan Inbound, 256),
	}
}

// Register starts the connection's pumps and indexes it. A prior
// connection for the same user (a stale reconnect) is closed and
// replaced, matching this stack's single-active-session convention.
func (h *Hub) Register(c *Connection) {
	h.mu.Lock()
	if old, ok := h.byUser[c.UserID]; ok {
		old.Close()
	}
	h.byID[c.ID] = c
	h.byUser[c.UserID] = c
	h.mu.Unlock()

	go c.Run()
}

func (h *Hub) Remove(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.byID[connID]
	if !ok {
		return
	}
	delete(h.byID, connID)
	if h.byUser[c.UserID] == c {
		delete(h.byUser, c.UserID)
	}
}

func (h *Hub) ByUser(userID string) (*Connection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.byUser[userID]
	return c, ok
}

// Broadcast sends body to every connection belonging to userIDs, skipping
// users with no live connection (they will catch up on reconnect).
func (h *Hub) Broadcast(userIDs []string, body []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		if c, ok := h.byUser[userID]; ok {
			_ = c.Send(body)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byID)
}
