package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/state"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Activity is one dispatched store action as published to the topic.
type Activity struct {
	Slice   string           `json:"slice"`
	Type    state.ActionType `json:"type"`
	At      time.Time        `json:"at"`
	Payload any              `json:"payload,omitempty"`
}

const activityBuffer = 256

// ActivityPublisher streams store actions to Kafka from a background
// goroutine so dispatch never waits on the broker. When the buffer is full
// the action is dropped and logged.
type ActivityPublisher struct {
	Writer MessageWriter
	Topic  string
	logger *logger.Logger
	queue  chan Activity
	done   chan struct{}
	once   sync.Once
	mu     sync.RWMutex
	closed bool
	now    func() time.Time
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func NewActivityPublisher(writer MessageWriter, topic string, log *logger.Logger) *ActivityPublisher {
	if log == nil {
		log = logger.Discard()
	}
	p := &ActivityPublisher{
		Writer: writer,
		Topic:  topic,
		logger: log,
		queue:  make(chan Activity, activityBuffer),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	go p.run()
	return p
}

// Subscriber adapts the publisher to state.Store.Subscribe.
func (p *ActivityPublisher) Subscriber() state.Subscriber {
	return func(a state.Action, _ state.State) {
		p.Publish(a)
	}
}

// Publish queues a for the background writer. Actions arriving after Close
// are dropped.
func (p *ActivityPublisher) Publish(a state.Action) {
	activity := Activity{Slice: a.Type.Slice(), Type: a.Type, At: p.now().UTC(), Payload: a.Payload}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.logger.Debug("KAFKA", fmt.Sprintf("Publisher closed, dropping %s", a.Type))
		return
	}
	select {
	case p.queue <- activity:
	default:
		p.logger.Warn("KAFKA", fmt.Sprintf("Activity buffer full, dropping %s", a.Type))
	}
}

func (p *ActivityPublisher) run() {
	defer close(p.done)
	for activity := range p.queue {
		if err := p.write(activity); err != nil {
			p.logger.Error("KAFKA", fmt.Sprintf("Failed to publish %s: %v", activity.Type, err))
		}
	}
}

func (p *ActivityPublisher) write(activity Activity) error {
	msgBytes, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to encode activity: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(activity.Slice),
		Value: msgBytes,
	}); err != nil {
		return err
	}
	p.logger.LogKafka("PUBLISH", p.Topic, string(activity.Type))
	return nil
}

// Close drains queued activity and closes the writer.
func (p *ActivityPublisher) Close() error {
	var err error
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()

		<-p.done
		err = p.Writer.Close()
	})
	return err
}
