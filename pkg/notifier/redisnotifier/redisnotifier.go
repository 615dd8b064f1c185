// Package redisnotifier delivers account events to a Redis stream. Consumers
// read the stream with XREAD/XREADGROUP, so delivery is at-least-once and
// decoupled from the HTTP request that triggered the event.
package redisnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"accounts/pkg/domain"
	"accounts/pkg/metrics"
)

// EventTypeAccountDeleted marks entries produced by SendDeleteNotification.
const EventTypeAccountDeleted = "account.deleted"

// Options configures the Redis notifier.
type Options struct {
	// Stream is the Redis stream key events are appended to.
	Stream string
}

// event is the wire format of a single stream entry.
type event struct {
	Type    string         `json:"type"`
	Key     string         `json:"key"`
	SentAt  time.Time      `json:"sentAt"`
	Account accountPayload `json:"account"`
}

// accountPayload is the account snapshot carried by an event. Password never
// leaves the service, so it has no field here.
type accountPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Notifier appends account events to a Redis stream.
type Notifier struct {
	client  redis.Cmdable
	options Options
}

// New returns a Notifier publishing to the stream named in options.
func New(client redis.Cmdable, options Options) *Notifier {
	return &Notifier{
		client:  client,
		options: options,
	}
}

// SendDeleteNotification appends an account.deleted entry to the stream.
func (n *Notifier) SendDeleteNotification(ctx context.Context, key string, account domain.Account) error {
	payload, err := json.Marshal(event{
		Type:   EventTypeAccountDeleted,
		Key:    key,
		SentAt: time.Now().UTC(),
		Account: accountPayload{
			ID:        account.ID.String(),
			Username:  account.Username,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		},
	})
	if err != nil {
		metrics.DeleteNotifications.WithLabelValues("error").Inc()

		return fmt.Errorf("cannot marshal delete event: %w", err)
	}

	if _, err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.options.Stream,
		Values: map[string]any{
			"event": payload,
		},
	}).Result(); err != nil {
		metrics.DeleteNotifications.WithLabelValues("error").Inc()

		return fmt.Errorf("cannot append delete event to stream: %w", err)
	}

	metrics.DeleteNotifications.WithLabelValues("success").Inc()

	return nil
}
