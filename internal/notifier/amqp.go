// Package notifier publishes catalog events to an AMQP broker so companion
// tooling can react to imports and indexing. The core behaves identically
// with it disabled; services hold it behind a nil-able interface.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"paperbase/internal/domain"
)

type AMQP struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewAMQP(cfg Config, logger *slog.Logger) (*AMQP, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &AMQP{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

type articleAddedEvent struct {
	Event     string    `json:"event"`
	ArticleID int64     `json:"article_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	Pages     int       `json:"pages"`
	Timestamp time.Time `json:"timestamp"`
}

type articleIndexedEvent struct {
	Event     string    `json:"event"`
	ArticleID int64     `json:"article_id"`
	FilePath  string    `json:"file_path"`
	Pages     int       `json:"pages"`
	Timestamp time.Time `json:"timestamp"`
}

type batchCompletedEvent struct {
	Event      string    `json:"event"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Cancelled  int       `json:"cancelled"`
	DurationMS int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

func (a *AMQP) ArticleAdded(ctx context.Context, article *domain.Article) error {
	return a.publish(ctx, articleAddedEvent{
		Event:     "article_added",
		ArticleID: article.ID,
		Title:     article.Title,
		FilePath:  article.FilePath,
		Pages:     article.Pages,
		Timestamp: time.Now().UTC(),
	})
}

func (a *AMQP) ArticleIndexed(ctx context.Context, articleID int64, path string, pages int) error {
	return a.publish(ctx, articleIndexedEvent{
		Event:     "article_indexed",
		ArticleID: articleID,
		FilePath:  path,
		Pages:     pages,
		Timestamp: time.Now().UTC(),
	})
}

func (a *AMQP) BatchCompleted(ctx context.Context, stats *domain.BatchStats) error {
	return a.publish(ctx, batchCompletedEvent{
		Event:      "batch_completed",
		Succeeded:  stats.Succeeded,
		Failed:     stats.Failed,
		Cancelled:  stats.Cancelled,
		DurationMS: stats.Duration.Milliseconds(),
		Timestamp:  time.Now().UTC(),
	})
}

func (a *AMQP) publish(ctx context.Context, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = a.channel.PublishWithContext(
		ctx,
		a.exchange,
		a.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
