package pulsar

import (
	"context"
	"fmt"
	"sync"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"

	"github.com/upservice/user-profile-service/pkg/message"
)

type contextKey int

const pulsarMessageIDContextKey contextKey = iota

func (b *MessageBroker) Consumer(
	topic message.Topic,
	subscriber message.SubscriberName,
	consumptionType message.ConsumptionType,
) (message.Consumer, error) {
	subscriptionType := pulsar.Failover
	if consumptionType == message.ConsumptionTypeShared {
		subscriptionType = pulsar.Shared
	}

	consumer, err := b.client.Subscribe(pulsar.ConsumerOptions{
		Topic:            string(topic),
		SubscriptionName: string(subscriber),
		Type:             subscriptionType,
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic %s by %s subscriber: %w", topic, subscriber, err)
	}

	return newMessageConsumer(consumer, topic), nil
}

type messageConsumer struct {
	name   string
	pulsar pulsar.Consumer

	onceDoer *sync.Once
	messages chan *message.ConsumerMessage
}

func newMessageConsumer(pulsarConsumer pulsar.Consumer, subscribedTopic message.Topic) message.Consumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", pulsarConsumer.Subscription(), subscribedTopic),
		pulsar:   pulsarConsumer,
		onceDoer: &sync.Once{},
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	receiveLoop := func() {
		for {
			msg, ok := <-c.pulsar.Chan()
			if !ok {
				close(c.messages)
				break
			}

			messageIDStr, ok := msg.Properties()[messageIDPropertyName]
			if !ok {
				c.pulsar.Ack(msg)
				continue
			}
			messageID, err := uuid.Parse(messageIDStr)
			if err != nil {
				c.pulsar.Ack(msg)
				continue
			}

			ctx := context.WithValue(context.Background(), pulsarMessageIDContextKey, msg.ID())
			c.messages <- &message.ConsumerMessage{
				Context: ctx,
				Message: message.Message{
					ID:      messageID,
					Topic:   message.NewRawTopic(msg.Topic()),
					Key:     msg.Key(),
					Payload: msg.Payload(),
				},
			}
		}
	}

	c.onceDoer.Do(func() {
		go receiveLoop()
	})
	return c.messages
}

func (c *messageConsumer) Ack(msg *message.ConsumerMessage) {
	messageID, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID)
	if !ok {
		return
	}

	c.pulsar.AckID(messageID)
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) {
	messageID, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID)
	if !ok {
		return
	}

	c.pulsar.NackID(messageID)
}

func (c *messageConsumer) Close() {
	c.pulsar.Close()
}
