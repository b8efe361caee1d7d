// Package rabbitmq forwards user notifications to a fanout exchange so other
// services (mail, push) can pick them up.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"purchasing/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "purchasing_notifications"

var ErrChannelClosed = errors.New("rabbitmq channel is closed")

// Message is the JSON body published for each notification.
type Message struct {
	Recipient string    `json:"recipient"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// Channel is the part of *amqp.Channel the notifier uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Notifier implements ports.Notifier. Publish failures are logged and never
// returned to the caller.
type Notifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   *slog.Logger
	now      func() time.Time
}

// Dial connects to url and declares a durable fanout exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Notifier, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	n := NewNotifier(ch, exchange, logger)
	n.conn = conn
	return n, nil
}

// NewNotifier publishes through an already opened channel.
func NewNotifier(ch Channel, exchange string, logger *slog.Logger) *Notifier {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Notifier{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_notifier"),
		now:      time.Now,
	}
}

func (n *Notifier) Notify(ctx context.Context, note ports.Notification) {
	if err := n.publish(ctx, note); err != nil {
		n.logger.WarnContext(ctx, "notification not published", "recipient", note.Recipient.String(), "error", err)
	}
}

func (n *Notifier) publish(ctx context.Context, note ports.Notification) error {
	at := n.now().UTC()
	body, err := json.Marshal(Message{
		Recipient: note.Recipient.String(),
		Level:     string(note.Level),
		Message:   note.Message,
		SentAt:    at,
	})
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.ch.IsClosed() {
		return ErrChannelClosed
	}
	return n.ch.PublishWithContext(ctx, n.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    at,
		Body:         body,
	})
}

func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var errList []error
	if !n.ch.IsClosed() {
		if err := n.ch.Close(); err != nil {
			errList = append(errList, fmt.Errorf("close rabbitmq channel: %w", err))
		}
	}
	if n.conn != nil && !n.conn.IsClosed() {
		if err := n.conn.Close(); err != nil {
			errList = append(errList, fmt.Errorf("close rabbitmq connection: %w", err))
		}
	}
	return errors.Join(errList...)
}
