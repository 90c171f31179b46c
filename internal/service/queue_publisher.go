// Package service provides the best-effort publisher for catalog events.
// Publish errors are logged and returned so callers can ignore failures
// without interrupting the request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/queue"
)

const movieQueue = "movie.events"

// EventPublisher is the seam handlers publish through; tests substitute a
// recorder and main wires either the AMQP publisher or the no-op one.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.MovieEvent) error
}

// NopPublisher drops events. Used when no broker URL is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, queue.MovieEvent) error { return nil }

// AMQPPublisher publishes MovieEvents to the movie.events queue. Each call
// dials the broker, which keeps the type connection-state free; the event
// volume here is one message per catalog mutation.
type AMQPPublisher struct{ URL string }

func (p *AMQPPublisher) Publish(ctx context.Context, ev queue.MovieEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(movieQueue, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", movieQueue, false, false, pub); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
