package kafka

import (
	"context"
)

// Producer publishes a single message to a fixed topic.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}
