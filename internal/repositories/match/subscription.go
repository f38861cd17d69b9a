package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Subscription delivers change events for one match until closed
type Subscription struct {
	pubsub *redis.PubSub
	events chan *Event
	done   chan struct{}
	once   sync.Once
}

// Subscribe opens a pub/sub subscription on the match's event channel.
// The subscription is confirmed before Subscribe returns, so no write made
// after this call is missed.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, eventsChannel(input.MatchID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to match: %w", err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan *Event, 16),
		done:   make(chan struct{}),
	}
	go sub.forward(r.log)

	return sub, nil
}

// Events returns the event stream. It is closed when the subscription closes.
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Close ends the subscription
func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}

func (s *Subscription) forward(log *zap.SugaredLogger) {
	defer close(s.events)

	for msg := range s.pubsub.Channel() {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Warnw("dropping malformed match event", "channel", msg.Channel, "error", err)
			continue
		}
		select {
		case s.events <- &event:
		case <-s.done:
			return
		}
	}
}
