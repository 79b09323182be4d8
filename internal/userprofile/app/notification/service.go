package notification

import (
	"context"

	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	"github.com/upservice/user-profile-service/pkg/message"
)

type Notifier interface {
	NotifyRegistered(ctx context.Context, profileID domain.UserProfileID, email string) error
	NotifyUpdated(ctx context.Context, profileID domain.UserProfileID, email string, changedFields []string) error
	NotifyDeleted(ctx context.Context, profileID domain.UserProfileID, email string) error
}

func NewEventUserProfileRegisteredHandler(deserializer message.EventDeserializer, notifier Notifier) message.Handler {
	return message.NewEventHandler[domain.EventUserProfileRegistered](deserializer,
		func(ctx context.Context, evt domain.EventUserProfileRegistered) error {
			return notifier.NotifyRegistered(ctx, evt.UserProfileID, evt.Email)
		})
}

func NewEventUserProfileUpdatedHandler(deserializer message.EventDeserializer, notifier Notifier) message.Handler {
	return message.NewEventHandler[domain.EventUserProfileUpdated](deserializer,
		func(ctx context.Context, evt domain.EventUserProfileUpdated) error {
			return notifier.NotifyUpdated(ctx, evt.UserProfileID, evt.Email, evt.ChangedFields)
		})
}

func NewEventUserProfileDeletedHandler(deserializer message.EventDeserializer, notifier Notifier) message.Handler {
	return message.NewEventHandler[domain.EventUserProfileDeleted](deserializer,
		func(ctx context.Context, evt domain.EventUserProfileDeleted) error {
			return notifier.NotifyDeleted(ctx, evt.UserProfileID, evt.Email)
		})
}
