package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/lookup"
	"github.com/slinkhq/slink/internal/messaging"
	"go.uber.org/zap"
)

// accessConsumerGroup is the Redis stream consumer group shared by all
// access-recording consumers, so each event is applied exactly once across
// instances.
const accessConsumerGroup = "slink-access"

// PublisherPackage provides the watermill publisher over Redis streams and
// the typed publish function for access events.
func PublisherPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: do.MustInvoke[*redis.Client](i)},
			watermill.NewStdLogger(false, false),
		)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[lookup.EntryAccessedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[lookup.EntryAccessedEvent](group.Publisher(), lookup.TopicEntryAccessed), nil
	})
}

// ConsumerGroupPackage provides the consumer group that applies access
// events to the entry repository.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		subscriber, err := redisstream.NewSubscriber(
			redisstream.SubscriberConfig{
				Client:        do.MustInvoke[*redis.Client](i),
				ConsumerGroup: accessConsumerGroup,
			},
			watermill.NewStdLogger(false, false),
		)
		if err != nil {
			return nil, err
		}

		logger := do.MustInvoke[*zap.Logger](i)
		repo := do.MustInvoke[*entry.Repository](i)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(
			subscriber,
			lookup.TopicEntryAccessed,
			lookup.NewAccessHandler(repo),
			logger,
		))

		return group, nil
	})
}
