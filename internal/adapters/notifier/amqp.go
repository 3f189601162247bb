package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker/v2"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

const ExchangeName = "kanso.reminders"

var ErrBrokerUnavailable = errors.New("reminder broker unavailable")

// Publisher sends a raw payload to a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
	Close() error
}

// RabbitMQPublisher publishes to a durable topic exchange.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex
}

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("[NOTIFIER] RabbitMQ publisher connected (exchange %s)", ExchangeName)

	return &RabbitMQPublisher{
		conn:     conn,
		channel:  ch,
		exchange: ExchangeName,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         payload,
		},
	)
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			log.Printf("[NOTIFIER] error closing channel: %v", err)
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// BreakerSettings tunes the circuit breaker in front of the publisher.
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	PublishTimeout   time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		PublishTimeout:   5 * time.Second,
	}
}

// AMQPNotifier turns reminders into JSON messages routed as "reminder.<habitID>".
// After FailureThreshold consecutive publish errors the breaker opens and
// reminders fail fast with ErrBrokerUnavailable until OpenTimeout elapses.
type AMQPNotifier struct {
	publisher Publisher
	breaker   *gobreaker.CircuitBreaker[any]
	timeout   time.Duration
}

func NewAMQPNotifier(publisher Publisher, s BreakerSettings) *AMQPNotifier {
	if s.FailureThreshold == 0 {
		s.FailureThreshold = DefaultBreakerSettings().FailureThreshold
	}
	if s.PublishTimeout <= 0 {
		s.PublishTimeout = DefaultBreakerSettings().PublishTimeout
	}

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "reminder-publisher",
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[NOTIFIER] circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &AMQPNotifier{
		publisher: publisher,
		breaker:   breaker,
		timeout:   s.PublishTimeout,
	}
}

func RoutingKey(habitID string) string {
	return "reminder." + habitID
}

func (n *AMQPNotifier) Notify(ctx context.Context, r domain.Reminder) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("notifier: encode reminder: %w", err)
	}

	_, err = n.breaker.Execute(func() (any, error) {
		pubCtx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()
		return nil, n.publisher.Publish(pubCtx, RoutingKey(r.HabitID), payload)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("notifier: publish reminder: %w", err)
	}
	return nil
}

// State exposes the breaker state for health checks.
func (n *AMQPNotifier) State() string {
	return n.breaker.State().String()
}
