// Package activity publishes what visitors do (logins, registrations, marks
// submissions) on the in-process bus and logs it from a subscriber.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/marksweb/internal/pubsub"
)

// Topic is the bus topic every activity event is published on.
const Topic = "activity"

// Kind names what happened.
type Kind string

const (
	KindLogin    Kind = "login"
	KindRegister Kind = "register"
	KindMarks    Kind = "marks"
	KindReport   Kind = "report"
)

// Event is one visitor action and whether the grading service accepted it.
type Event struct {
	Kind      Kind      `json:"kind"`
	Username  string    `json:"username,omitempty"`
	Success   bool      `json:"success"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

// Feed publishes events. A nil Feed or a nil publisher drops them.
type Feed struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewFeed creates a Feed on pub.
func NewFeed(pub pubsub.Publisher) *Feed {
	return &Feed{pub: pub, now: time.Now}
}

// Record stamps and publishes ev. Publishing failures are logged, never
// returned: activity must not break a page.
func (f *Feed) Record(ctx context.Context, ev Event) {
	if f == nil || f.pub == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = f.now().UTC()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to encode activity event", "kind", ev.Kind, "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:    Topic,
		Payload:  payload,
		Metadata: map[string]string{"kind": string(ev.Kind)},
	}
	if err := f.pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish activity event", "kind", ev.Kind, "error", err)
	}
}

// Decode parses an activity message payload.
func Decode(msg pubsub.Message) (Event, error) {
	var ev Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return Event{}, fmt.Errorf("decode activity event: %w", err)
	}
	return ev, nil
}

// LogSubscriber writes every activity event to logger.
func LogSubscriber(logger *slog.Logger) pubsub.Handler {
	return func(ctx context.Context, msg pubsub.Message) error {
		ev, err := Decode(msg)
		if err != nil {
			return err
		}
		level := slog.LevelInfo
		if !ev.Success {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "activity",
			"kind", ev.Kind,
			"username", ev.Username,
			"success", ev.Success,
			"request_id", ev.RequestID,
			"at", ev.At,
		)
		return nil
	}
}
