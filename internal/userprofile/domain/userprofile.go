//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserProfileRepository=UserProfileRepository"
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/upservice/user-profile-service/pkg/event"
)

const (
	Name = "user-profile"

	AggregateNameUserProfile = "user_profile"
)

var (
	ErrUserProfileNotFound = errors.New("user profile not found")
	ErrEmailAlreadyExists  = errors.New("user profile with specified email already exists")
)

type (
	UserProfile struct {
		ID           UserProfileID
		Email        string
		PasswordHash string
		FirstName    string
		LastName     string

		Changes []event.Event
	}

	UserProfileRepository interface {
		NextID() UserProfileID
		Store(context.Context, *UserProfile) error
		FindByEmail(context.Context, string) (*UserProfile, error)
		ExistsByEmail(context.Context, string) (bool, error)
		FindAll(context.Context) ([]UserProfile, error)
		// Delete removes the profile row and dispatches its pending changes.
		Delete(context.Context, *UserProfile) error
	}

	UserProfileID struct{ uuid.UUID }
)

func NewUserProfile(id UserProfileID, email, passwordHash, firstName, lastName string) *UserProfile {
	profile := &UserProfile{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	profile.Changes = append(profile.Changes, EventUserProfileRegistered{
		EventID:       uuid.New(),
		UserProfileID: id,
		Email:         email,
	})

	return profile
}

// MarkUpdated records a single updated event for the applied field changes.
func (u *UserProfile) MarkUpdated(changedFields ...string) {
	if len(changedFields) == 0 {
		return
	}

	u.Changes = append(u.Changes, EventUserProfileUpdated{
		EventID:       uuid.New(),
		UserProfileID: u.ID,
		Email:         u.Email,
		ChangedFields: changedFields,
	})
}

func (u *UserProfile) MarkDeleted() {
	u.Changes = append(u.Changes, EventUserProfileDeleted{
		EventID:       uuid.New(),
		UserProfileID: u.ID,
		Email:         u.Email,
	})
}
