package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upservice/user-profile-service/internal/userprofile/domain"
)

func TestNewUserProfile_RecordsRegisteredEvent(t *testing.T) {
	profileID := domain.UserProfileID{UUID: uuid.New()}

	profile := domain.NewUserProfile(profileID, "john.doe@example.com", "passwordHash", "John", "Doe")

	require.Len(t, profile.Changes, 1)
	evt, ok := profile.Changes[0].(domain.EventUserProfileRegistered)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, evt.EventID)
	assert.Equal(t, profileID, evt.UserProfileID)
	assert.Equal(t, "john.doe@example.com", evt.Email)
	assert.Equal(t, profileID.UUID, evt.AggregateID())
}

func TestUserProfile_MarkUpdated(t *testing.T) {
	profile := &domain.UserProfile{
		ID:    domain.UserProfileID{UUID: uuid.New()},
		Email: "john.doe@example.com",
	}

	profile.MarkUpdated("email", "firstName")
	require.Len(t, profile.Changes, 1)

	evt, ok := profile.Changes[0].(domain.EventUserProfileUpdated)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "firstName"}, evt.ChangedFields)
	assert.Equal(t, domain.EventTypeUserProfileUpdated, evt.Type())
}

func TestUserProfile_MarkUpdated_NoFields(t *testing.T) {
	profile := &domain.UserProfile{ID: domain.UserProfileID{UUID: uuid.New()}}

	profile.MarkUpdated()
	assert.Empty(t, profile.Changes)
}

func TestUserProfile_MarkDeleted(t *testing.T) {
	profile := &domain.UserProfile{
		ID:    domain.UserProfileID{UUID: uuid.New()},
		Email: "john.doe@example.com",
	}

	profile.MarkDeleted()
	require.Len(t, profile.Changes, 1)

	evt, ok := profile.Changes[0].(domain.EventUserProfileDeleted)
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", evt.Email)
	assert.Equal(t, domain.EventTypeUserProfileDeleted, evt.Type())
}
