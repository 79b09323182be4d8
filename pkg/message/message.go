package message

import (
	"context"

	"github.com/google/uuid"
)

const (
	ConsumptionTypeSingle ConsumptionType = "single"
	ConsumptionTypeShared ConsumptionType = "shared"
)

type (
	Message struct {
		ID    uuid.UUID
		Topic Topic
		// Key is used for topic partitioning, messages with the same key
		// fall into the same partition.
		Key     string
		Payload []byte
	}

	Handler func(ctx context.Context, msg *Message) error

	ConsumerMessage struct {
		Context context.Context
		Message Message
	}

	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(msg *ConsumerMessage)
		Nack(msg *ConsumerMessage)
		Close()
	}

	ConsumerProvider interface {
		Consumer(Topic, SubscriberName, ConsumptionType) (Consumer, error)
	}

	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}

	Broker interface {
		ConsumerProvider
		Producer
	}

	ConsumptionType string
)
