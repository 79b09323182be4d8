package message

import (
	"encoding/json"
	"fmt"

	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	"github.com/upservice/user-profile-service/pkg/event"
	"github.com/upservice/user-profile-service/pkg/message"
)

var UserProfileEventTopic = message.NewTopicDomainEvent(domain.Name, domain.AggregateNameUserProfile)

type eventEnvelope struct {
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload"`
}

type eventSerializer struct{}

func NewEventSerializer() message.EventSerializer {
	return eventSerializer{}
}

func (s eventSerializer) Serialize(evt event.Event) (*message.Message, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", evt.Type(), err)
	}
	body, err := json.Marshal(eventEnvelope{
		EventType: evt.Type(),
		Payload:   payload,
	})
	if err != nil {
		return nil, fmt.Errorf("encode event envelope: %w", err)
	}

	return &message.Message{
		ID:      evt.ID(),
		Topic:   UserProfileEventTopic,
		Key:     evt.AggregateID().String(),
		Payload: body,
	}, nil
}

type eventDeserializer struct{}

func NewEventDeserializer() message.EventDeserializer {
	return eventDeserializer{}
}

func (d eventDeserializer) Deserialize(msg *message.Message) (event.Event, error) {
	var envelope eventEnvelope
	err := json.Unmarshal(msg.Payload, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	switch envelope.EventType {
	case domain.EventTypeUserProfileRegistered:
		return decodeEvent[domain.EventUserProfileRegistered](envelope)
	case domain.EventTypeUserProfileUpdated:
		return decodeEvent[domain.EventUserProfileUpdated](envelope)
	case domain.EventTypeUserProfileDeleted:
		return decodeEvent[domain.EventUserProfileDeleted](envelope)
	default:
		return nil, fmt.Errorf("unknown event type %s", envelope.EventType)
	}
}

func decodeEvent[T event.Event](envelope eventEnvelope) (event.Event, error) {
	var evt T
	err := json.Unmarshal(envelope.Payload, &evt)
	if err != nil {
		return nil, fmt.Errorf("decode event %s: %w", envelope.EventType, err)
	}
	return evt, nil
}
