// Package transport carries a room's messages between seats and the
// wider cluster: a gorilla/websocket connection per seat, and a nats.go
// event bus that broadcasts settled rounds to whoever is listening.
package transport

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"scoreserver/internal/telemetry/log"
)

var ErrConnectionClosed = errors.New("transport: connection closed")

var (
	pongWait             = 10 * time.Second
	writeWait            = 10 * time.Second
	pingInterval         = (pongWait * 9) / 10
	maxMessageSize int64 = 4096
)

// Inbound is one message read off a seat's connection, tagged with the
// connection it arrived on so the hub can route a reply.
type Inbound struct {
	ConnID string
	Body   []byte
}

// Connection wraps one seat's websocket: a read pump, a write pump, and a
// ping ticker that keeps the socket alive across idle turns while another
// seat is acting.
type Connection struct {
	ID        string
	UserID    string
	conn      *websocket.Conn
	writeChan chan []byte
	inboundCh chan<- Inbound
	closeChan chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewConnection wraps an already-upgraded websocket connection. inboundCh
// is shared across every connection the hub owns; messages are tagged
// with ID so the hub can find the seat they came from.
func NewConnection(conn *websocket.Conn, userID string, inboundCh chan<- Inbound) *Connection {
	return &Connection{
		ID:        uuid.NewString(),
		UserID:    userID,
		conn:      conn,
		writeChan: make(chan []byte, 32),
		inboundCh: inboundCh,
		closeChan: make(chan struct{}),
	}
}

// Run starts the read and write pumps. It blocks until the write pump
// exits; call it from its own goroutine.
func (c *Connection) Run() {
	go c.readLoop()
	c.conn.SetPongHandler(c.onPong)
	c.writeLoop()
}

func (c *Connection) readLoop() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Error("transport: set read deadline for %s: %v", c.ID, err)
		return
	}

	for {
		messageType, body, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("transport: connection %s closed unexpectedly: %v", c.ID, err)
			}
			return
		}
		if messageType != websocket.BinaryMessage && messageType != websocket.TextMessage {
			continue
		}
		select {
		case c.inboundCh <- Inbound{ConnID: c.ID, Body: body}:
		case <-c.closeChan:
			return
		}
	}
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.writeChan:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error("transport: set write deadline for %s: %v", c.ID, err)
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				log.Error("transport: write to %s: %v", c.ID, err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.closeChan:
			return
		}
	}
}

func (c *Connection) onPong(string) error {
	return c.conn.SetReadDeadline(time.Now().Add(pongWait))
}

// Send queues a message for delivery. It returns ErrConnectionClosed once
// the connection has been closed rather than panicking on a send to a
// closed channel.
func (c *Connection) Send(body []byte) error {
	if c.closed.Load() {
		return ErrConnectionClosed
	}
	select {
	case c.writeChan <- body:
		return nil
	case <-c.closeChan:
		return ErrConnectionClosed
	}
}

func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.closeChan)
		log.Info("transport: connection %s closed", c.ID)
	})
}
