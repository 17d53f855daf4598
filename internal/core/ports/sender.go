package ports

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
)

// Sender publishes committed user mutations to downstream consumers.
type Sender interface {
	// Send delivers the event. It returns once the event is durably accepted by the broker.
	Send(ctx context.Context, event model.UserEvent) error
}
