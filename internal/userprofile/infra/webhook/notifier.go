package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/upservice/user-profile-service/internal/userprofile/app/notification"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
)

const DestinationWebhook pkghttp.Destination = "webhook"

type notificationBody struct {
	Event         string    `json:"event"`
	UserProfileID uuid.UUID `json:"userProfileID"`
	Email         string    `json:"email"`
	ChangedFields []string  `json:"changedFields,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type notifier struct {
	client pkghttp.Client
}

func NewNotifier(client pkghttp.Client) notification.Notifier {
	return notifier{client: client}
}

func (n notifier) NotifyRegistered(ctx context.Context, profileID domain.UserProfileID, email string) error {
	return n.send(ctx, notificationBody{
		Event:         domain.EventTypeUserProfileRegistered,
		UserProfileID: profileID.UUID,
		Email:         email,
		OccurredAt:    time.Now(),
	})
}

func (n notifier) NotifyUpdated(ctx context.Context, profileID domain.UserProfileID, email string, changedFields []string) error {
	return n.send(ctx, notificationBody{
		Event:         domain.EventTypeUserProfileUpdated,
		UserProfileID: profileID.UUID,
		Email:         email,
		ChangedFields: changedFields,
		OccurredAt:    time.Now(),
	})
}

func (n notifier) NotifyDeleted(ctx context.Context, profileID domain.UserProfileID, email string) error {
	return n.send(ctx, notificationBody{
		Event:         domain.EventTypeUserProfileDeleted,
		UserProfileID: profileID.UUID,
		Email:         email,
		OccurredAt:    time.Now(),
	})
}

func (n notifier) send(ctx context.Context, body notificationBody) error {
	resp, err := n.client.NewRequest(ctx).
		SetBody(body).
		Post("")
	if err != nil {
		return fmt.Errorf("send %s notification: %w", body.Event, err)
	}
	if resp.IsError() {
		return fmt.Errorf("send %s notification: webhook responded with %d", body.Event, resp.StatusCode())
	}
	return nil
}
