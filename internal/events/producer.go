// Package events publishes onboarding lifecycle events to Kafka.
// Publishing is fire-and-forget: events flow through a buffered channel to a
// background writer, and when the buffer is full the event is dropped and
// logged. A broker outage never affects request handling.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// EventType names an onboarding lifecycle event.
type EventType string

// CompanyOnboarded is emitted after a fully successful onboarding run.
const CompanyOnboarded EventType = "company_onboarded"

// envelope is the wire format written to the topic.
type envelope struct {
	Type       EventType `json:"type"`
	CompanyID  string    `json:"companyId"`
	OwnerID    string    `json:"ownerId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

// KafkaWriter is the subset of kafka.Writer the producer needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes onboarding events to a Kafka topic in the background.
type Producer struct {
	writer    KafkaWriter
	events    chan envelope
	logger    *slog.Logger
	closeChan chan struct{}
	doneChan  chan struct{}
}

// Ensure Producer satisfies the publisher port
var _ portssvc.OnboardingEventPublisher = (*Producer)(nil)

// NewProducer builds a producer writing to topic on the given brokers and
// starts its background loop.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		events:    make(chan envelope, 1000),
		logger:    logger,
		closeChan: make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

// PublishCompanyOnboarded enqueues a company_onboarded event. When the
// buffer is full the event is dropped rather than blocking the caller.
func (p *Producer) PublishCompanyOnboarded(company domain.Company) {
	ev := envelope{
		Type:       CompanyOnboarded,
		CompanyID:  company.CompanyID,
		OwnerID:    company.OwnerUserID,
		Name:       company.Name,
		OccurredAt: time.Now(),
	}
	select {
	case p.events <- ev:
	default:
		p.logger.Warn("Event queue full, dropping event",
			slog.String("event_type", string(ev.Type)),
			slog.String("company_id", ev.CompanyID),
		)
	}
}

func (p *Producer) eventLoop() {
	defer close(p.doneChan)
	for {
		select {
		case ev := <-p.events:
			p.write(ev)
		case <-p.closeChan:
			// Drain whatever is still buffered before shutting down.
			for {
				select {
				case ev := <-p.events:
					p.write(ev)
				default:
					return
				}
			}
		}
	}
}

func (p *Producer) write(ev envelope) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("Failed to marshal event", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.CompanyID),
		Value: payload,
	})
	if err != nil {
		p.logger.Warn("Failed to publish event",
			slog.String("event_type", string(ev.Type)),
			slog.String("company_id", ev.CompanyID),
			slog.String("error", err.Error()),
		)
	}
}

// Close stops the background loop, drains the buffer and closes the writer.
func (p *Producer) Close() error {
	close(p.closeChan)
	<-p.doneChan
	return p.writer.Close()
}
