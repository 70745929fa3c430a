package transport

import (
	"errors"

	"github.com/nats-io/nats.go"

	"scoreserver/internal/telemetry/log"
)

var ErrBusNotConnected = errors.New("transport: event bus not connected")

// EventBus publishes settled-round events over NATS so
// other nodes (a hall tracking lobby state, a replay archiver) can follow
// a room without being wired directly to it.
type EventBus struct {
	conn *nats.Conn
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

func (b *EventBus) Connect(url string) error {
	log.Info("transport: connecting to nats at %s", url)
	conn, err := nats.Connect(url)
	if err != nil {
		log.Error("transport: nats connect: %v", err)
		return err
	}
	b.conn = conn
	log.Info("transport: nats connected")
	return nil
}

func (b *EventBus) Publish(subject string, data []byte) error {
	if b.conn == nil || !b.conn.IsConnected() {
		return ErrBusNotConnected
	}
	return b.conn.Publish(subject, data)
}

// Subscribe delivers every message on subject to handler, run on its own
// goroutine by the nats client the way this stack's other subscribers do.
func (b *EventBus) Subscribe(subject string, handler func([]byte)) error {
	if b.conn == nil || !b.conn.IsConnected() {
		return ErrBusNotConnected
	}
	_, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	return err
}

func (b *EventBus) Close() {
	if b.conn == nil {
		return
	}
	b.conn.Close()
	log.Info("transport: nats connection closed")
}
