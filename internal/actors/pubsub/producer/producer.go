package producer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/chatting/chatting/internal/actors/protoconv"
	"github.com/chatting/chatting/internal/core/model"
	"google.golang.org/protobuf/proto"
)

const (
	// EventIDAttribute is the message attribute carrying the user event id.
	EventIDAttribute = "event_id"
	// OpAttribute is the message attribute naming the mutation (create, update or delete).
	OpAttribute = "op"
)

// NewProducer creates a new producer.
func NewProducer(topic *pubsub.Topic) (*Producer, error) {
	if topic == nil {
		return nil, errors.New("topic is nil")
	}
	return &Producer{topic: topic}, nil
}

// Producer is the pubsub producer of user events.
type Producer struct {
	topic *pubsub.Topic
}

// Send publishes the event as a chatting.v1.UserEvent message and waits for the server ack.
func (p *Producer) Send(ctx context.Context, event model.UserEvent) error {
	data, err := proto.Marshal(protoconv.EventToProto(event))
	if err != nil {
		return fmt.Errorf("error marshaling user-event proto message: %w", err)
	}
	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			EventIDAttribute: event.ID,
			OpAttribute:      event.Op(),
		},
	})
	// Block until the result is returned and a server-generated
	// ID is returned for the published message.
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("pubsub: result.Get: %w", err)
	}
	return nil
}
