package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/upservice/user-profile-service/pkg/event"
)

var (
	ErrEventSerializerUnknownEventType = errors.New("unknown event type")
	ErrEventDeserializerInvalidMessage = errors.New("message is not a valid event")
)

type (
	EventSerializer interface {
		Serialize(e event.Event) (*Message, error)
	}

	EventDeserializer interface {
		Deserialize(msg *Message) (event.Event, error)
	}
)

// NewEventDispatcher returns an event.Dispatcher publishing serialized domain
// events straight to the broker.
func NewEventDispatcher(producer Producer, serializer EventSerializer) event.Dispatcher {
	return eventDispatcher{producer: producer, serializer: serializer}
}

type eventDispatcher struct {
	producer   Producer
	serializer EventSerializer
}

func (d eventDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	for _, evt := range events {
		msg, err := d.serializer.Serialize(evt)
		if err != nil {
			return fmt.Errorf("serialize event %v of type %s: %w", evt.ID(), evt.Type(), err)
		}

		if err = d.producer.Produce(ctx, msg); err != nil {
			return fmt.Errorf("produce event %v of type %s: %w", evt.ID(), evt.Type(), err)
		}
	}

	return nil
}

// NewCompositeHandler runs the handlers sequentially, failing on the first error.
func NewCompositeHandler(handlers ...Handler) Handler {
	return func(ctx context.Context, msg *Message) error {
		for _, handler := range handlers {
			if err := handler(ctx, msg); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewEventHandler adapts a typed event handler to a message Handler.
func NewEventHandler[T event.Event](
	deserializer EventDeserializer,
	handler func(ctx context.Context, event T) error,
) Handler {
	return func(ctx context.Context, msg *Message) error {
		evt, err := deserializer.Deserialize(msg)
		if err != nil {
			return err
		}

		concreteEvent, ok := evt.(T)
		if !ok {
			// the topic carries other event types as well, not this handler's concern
			return nil
		}

		return handler(ctx, concreteEvent)
	}
}
