package message

import (
	"fmt"

	"github.com/upservice/user-profile-service/pkg/strings"
)

type (
	Topic          string
	SubscriberName string
)

func NewTopicDomainEvent(domainName, aggregateName string) Topic {
	return Topic(fmt.Sprintf(
		"domain-event.%s.%s",
		strings.ToKebabCase(domainName),
		strings.ToKebabCase(aggregateName),
	))
}

func NewRawTopic(topic string) Topic {
	return Topic(topic)
}

func NewSubscriberName(name string) SubscriberName {
	return SubscriberName(strings.ToKebabCase(name))
}

func NewSubscriberServiceName(name string) SubscriberName {
	return NewSubscriberName(fmt.Sprintf("%s-service", name))
}
