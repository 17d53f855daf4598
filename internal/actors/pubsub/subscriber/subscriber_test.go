package subscriber

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/chatting/chatting/internal/actors/pubsub/producer"
	"github.com/chatting/chatting/internal/core/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type collectingHandler struct {
	mu     sync.Mutex
	events []model.UserEvent
	want   int
	done   context.CancelFunc
}

func (c *collectingHandler) Handle(_ context.Context, event model.UserEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	if len(c.events) == c.want {
		c.done()
	}
	return nil
}

func newFakePubSub(t *testing.T) (*pubsub.Topic, *pubsub.Subscription) {
	t.Helper()
	ctx := context.Background()
	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.Dial(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	client, err := pubsub.NewClient(ctx, "chatting-test", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	topic, err := client.CreateTopic(ctx, "user-events")
	require.NoError(t, err)
	t.Cleanup(topic.Stop)
	sub, err := client.CreateSubscription(ctx, "user-events-audit", pubsub.SubscriptionConfig{Topic: topic, AckDeadline: 10 * time.Second})
	require.NoError(t, err)
	return topic, sub
}

func TestProducerToSubscriber(t *testing.T) {
	topic, sub := newFakePubSub(t)
	p, err := producer.NewProducer(topic)
	require.NoError(t, err)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := &model.User{ID: uuid.MustParse("018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5"), Name: "Alice", CreatedAt: at, UpdatedAt: at}
	renamed := *user
	renamed.Name = "Alicia"
	renamed.UpdatedAt = at.Add(time.Second)

	sent := []model.UserEvent{
		{ID: "e1", After: user},
		{ID: "e2", Before: user, After: &renamed},
		{ID: "e3", Before: &renamed},
	}
	for _, e := range sent {
		require.NoError(t, p.Send(context.Background(), e))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	handler := &collectingHandler{want: len(sent), done: cancel}
	s := NewSubscriber(SubscriberArgs{Subscription: sub, UserEventHandler: handler})
	require.NoError(t, s.Consume(ctx))

	require.Len(t, handler.events, len(sent))
	byID := make(map[string]model.UserEvent)
	for _, e := range handler.events {
		byID[e.ID] = e
	}
	for _, e := range sent {
		got, ok := byID[e.ID]
		require.True(t, ok, e.ID)
		assert.Equal(t, e, got)
	}
}

func TestDecodeMsgIntoUserEvent(t *testing.T) {
	tests := []struct {
		name        string
		msg         *pubsub.Message
		expectedID  string
		expectedErr assert.ErrorAssertionFunc
	}{
		{
			name:        "nil message",
			expectedErr: assert.Error,
		},
		{
			name:        "not a proto payload",
			msg:         &pubsub.Message{ID: "m1", Data: []byte{0xff, 0xff, 0xff}},
			expectedErr: assert.Error,
		},
		{
			name:       "falls back to message id",
			msg:        &pubsub.Message{ID: "m2"},
			expectedID: "m2",
		},
		{
			name:       "event id attribute wins",
			msg:        &pubsub.Message{ID: "m3", Attributes: map[string]string{producer.EventIDAttribute: "ev"}},
			expectedID: "ev",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := decodeMsgIntoUserEvent(test.msg)
			if test.expectedErr != nil {
				test.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedID, got.ID)
		})
	}
}
