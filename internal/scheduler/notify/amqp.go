package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue is the queue invitation events are published to.
const DefaultQueue = "booking.invite"

// InviteEvent is the JSON payload published for each invitation. A mailer
// worker consumes the queue and performs the actual delivery.
type InviteEvent struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	EventUID  string    `json:"event_uid,omitempty"`
	StartsAt  time.Time `json:"starts_at,omitzero"`
	Calendar  string    `json:"calendar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInviteEvent builds the queue payload for msg.
func NewInviteEvent(msg Message, now time.Time) (InviteEvent, error) {
	ev := InviteEvent{
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		CreatedAt: now.UTC(),
	}
	if msg.Event != nil {
		cal, err := msg.Event.Calendar(now)
		if err != nil {
			return InviteEvent{}, err
		}
		ev.EventUID = msg.Event.UID
		ev.StartsAt = msg.Event.StartsAt.UTC()
		ev.Calendar = cal
	}
	return ev, nil
}

// AMQPNotifier publishes invitations to a durable RabbitMQ queue. Each Send
// dials its own connection; invitations are rare enough that pooling is not
// worth the reconnect handling.
type AMQPNotifier struct {
	URL   string
	Queue string

	Now func() time.Time
}

func (n *AMQPNotifier) queue() string {
	if n.Queue == "" {
		return DefaultQueue
	}
	return n.Queue
}

func (n *AMQPNotifier) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	ev, err := NewInviteEvent(msg, now)
	if err != nil {
		return err
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("amqp marshal: %w", err)
	}

	conn, err := amqp.Dial(n.URL)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		n.queue(),
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("amqp queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now.UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", n.queue(), false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}
