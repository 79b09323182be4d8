package message_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmessage "github.com/upservice/user-profile-service/internal/userprofile/app/message"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
)

func TestEventSerializer_RoundTrip(t *testing.T) {
	profileID := domain.UserProfileID{UUID: uuid.New()}
	evt := domain.EventUserProfileUpdated{
		EventID:       uuid.New(),
		UserProfileID: profileID,
		Email:         "john.doe@example.com",
		ChangedFields: []string{"email", "firstName"},
	}

	msg, err := appmessage.NewEventSerializer().Serialize(evt)
	require.NoError(t, err)
	assert.Equal(t, evt.EventID, msg.ID)
	assert.Equal(t, appmessage.UserProfileEventTopic, msg.Topic)
	assert.Equal(t, profileID.String(), msg.Key)

	decoded, err := appmessage.NewEventDeserializer().Deserialize(msg)
	require.NoError(t, err)
	assert.Equal(t, evt, decoded)
}

func TestEventDeserializer_UnknownType(t *testing.T) {
	msg, err := appmessage.NewEventSerializer().Serialize(domain.EventUserProfileDeleted{
		EventID:       uuid.New(),
		UserProfileID: domain.UserProfileID{UUID: uuid.New()},
		Email:         "john.doe@example.com",
	})
	require.NoError(t, err)

	msg.Payload = []byte(`{"eventType":"user_profile.unknown","payload":{}}`)
	_, err = appmessage.NewEventDeserializer().Deserialize(msg)
	assert.Error(t, err)
}
