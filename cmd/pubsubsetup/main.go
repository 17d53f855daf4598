package main

import (
	"context"
	"flag"
	"os"

	"cloud.google.com/go/pubsub"
	"github.com/chatting/chatting/internal/config"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
}

var (
	topicID        = flag.String("topic", "", "user event topic (defaults to PUBSUB_USER_EVENT_TOPIC)")
	subscriptionID = flag.String("subscription", "", "worker subscription (defaults to PUBSUB_USER_EVENT_SUBSCRIPTION_ID)")
)

// pubsubsetup creates the user event topic and the worker subscription. Existing
// resources are left untouched.
func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("error loading configuration")
	}
	if *topicID == "" {
		*topicID = cfg.PubSub.UserEventTopic
	}
	if *subscriptionID == "" {
		*subscriptionID = cfg.PubSub.SubscriptionID
	}
	if *topicID == "" {
		log.Fatal("no user event topic configured")
	}

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		log.WithError(err).WithField("project", cfg.PubSub.ProjectID).Fatal("unable to create pubsub client")
	}
	defer client.Close()

	logger := log.WithField("project", cfg.PubSub.ProjectID).WithField("topic", *topicID)

	topic, err := client.CreateTopic(ctx, *topicID)
	switch {
	case status.Code(err) == codes.AlreadyExists:
		topic = client.Topic(*topicID)
		logger.Info("topic already exists")
	case err != nil:
		logger.WithError(err).Fatal("unable to create topic")
	default:
		logger.Info("topic created")
	}

	if *subscriptionID == "" {
		return
	}
	logger = logger.WithField("subscription", *subscriptionID)
	_, err = client.CreateSubscription(ctx, *subscriptionID, pubsub.SubscriptionConfig{Topic: topic})
	switch {
	case status.Code(err) == codes.AlreadyExists:
		logger.Info("subscription already exists")
	case err != nil:
		logger.WithError(err).Fatal("unable to create subscription")
	default:
		logger.Info("subscription created")
	}
}
