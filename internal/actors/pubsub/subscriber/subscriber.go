package subscriber

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/chatting/chatting/internal/actors/protoconv"
	"github.com/chatting/chatting/internal/actors/pubsub/producer"
	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"google.golang.org/protobuf/proto"

	log "github.com/sirupsen/logrus"
)

// SubscriberArgs contain the mandatory arguments to build a subscriber.
type SubscriberArgs struct {
	// Subscription is a pubsub subscription
	Subscription *pubsub.Subscription

	// UserEventHandler is a event handler
	UserEventHandler ports.UserEventHandler
}

// Subscriber is a pubsub async subscriber
type Subscriber struct {
	subscription     *pubsub.Subscription
	userEventHandler ports.UserEventHandler
}

// NewSubscriber creates a subscriber
func NewSubscriber(args SubscriberArgs) *Subscriber {
	return &Subscriber{
		subscription:     args.Subscription,
		userEventHandler: args.UserEventHandler,
	}
}

// Consume starts the subscriber. This is a blocking method and should be started in it's own go-routine.
// The way to terminate the method is to cancel the context in input.
func (s *Subscriber) Consume(ctx context.Context) error {
	if err := s.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		userEvent, err := decodeMsgIntoUserEvent(msg)
		if err != nil {
			// redelivery cannot fix a malformed payload
			log.WithError(err).WithField("message_id", msg.ID).Error("dropping undecodable user-event message")
			msg.Ack()
			return
		}

		if err := s.userEventHandler.Handle(ctx, *userEvent); err != nil {
			log.WithError(err).WithField("event_id", userEvent.ID).Error("error in user event handler")
			msg.Nack()
		} else {
			msg.Ack()
		}
	}); err != nil {
		return fmt.Errorf("error receiving messages from subscription: %w", err)
	}
	return nil
}

func decodeMsgIntoUserEvent(msg *pubsub.Message) (*model.UserEvent, error) {
	if msg == nil {
		return nil, errors.New("cannot decode nil pubsub msg")
	}
	event := new(pb.UserEvent)
	if err := proto.Unmarshal(msg.Data, event); err != nil {
		return nil, fmt.Errorf("proto unmarshal error: %w", err)
	}
	id := msg.Attributes[producer.EventIDAttribute]
	if id == "" {
		id = msg.ID
	}
	return protoconv.EventFromProto(id, event)
}
