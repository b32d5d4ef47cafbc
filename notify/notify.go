// Package notify delivers customer email events. Delivery is best effort:
// the mail service consumes the topic asynchronously and no caller-visible
// operation depends on a send succeeding.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Sender is the outbound notification channel the account flows use.
type Sender interface {
	SendPasswordReset(email, resetURL string) error
}

// ResetEmailEvent is the payload the mail consumer turns into an email.
type ResetEmailEvent struct {
	To       string    `json:"to"`
	ResetURL string    `json:"reset_url"`
	IssuedAt time.Time `json:"issued_at"`
}

// Producer publishes notification events to Kafka.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(broker, topic string) *Producer {
	if broker == "" || topic == "" {
		log.Println("notify: kafka broker/topic not configured, sends will be skipped")
		return &Producer{}
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func (p *Producer) SendPasswordReset(email, resetURL string) error {
	// Skip quietly when the broker is absent so account flows keep working.
	if p == nil || p.writer == nil {
		log.Println("notify: producer not ready, skipping publish")
		return nil
	}

	value, err := json.Marshal(ResetEmailEvent{
		To:       email,
		ResetURL: resetURL,
		IssuedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(email),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
