package pubsub

import "context"

// Message is what travels on the bus.
type Message struct {
	// Topic names the channel, e.g. "activity".
	Topic string
	// Payload is the encoded event.
	Payload []byte
	// Metadata carries small string attributes such as the request ID.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages for topic to handler in the
	// background and returns once the subscription is active.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
