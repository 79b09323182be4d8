package domain

import (
	"fmt"

	"github.com/google/uuid"
)

var (
	EventTypeUserProfileRegistered = fmt.Sprintf("%s.registered", AggregateNameUserProfile)
	EventTypeUserProfileUpdated    = fmt.Sprintf("%s.updated", AggregateNameUserProfile)
	EventTypeUserProfileDeleted    = fmt.Sprintf("%s.deleted", AggregateNameUserProfile)
)

type EventUserProfileRegistered struct {
	EventID       uuid.UUID     `json:"eventID"`
	UserProfileID UserProfileID `json:"userProfileID"`
	Email         string        `json:"email"`
}

func (e EventUserProfileRegistered) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserProfileRegistered) Type() string {
	return EventTypeUserProfileRegistered
}

func (e EventUserProfileRegistered) AggregateID() uuid.UUID {
	return e.UserProfileID.UUID
}

type EventUserProfileUpdated struct {
	EventID       uuid.UUID     `json:"eventID"`
	UserProfileID UserProfileID `json:"userProfileID"`
	Email         string        `json:"email"`
	ChangedFields []string      `json:"changedFields"`
}

func (e EventUserProfileUpdated) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserProfileUpdated) Type() string {
	return EventTypeUserProfileUpdated
}

func (e EventUserProfileUpdated) AggregateID() uuid.UUID {
	return e.UserProfileID.UUID
}

type EventUserProfileDeleted struct {
	EventID       uuid.UUID     `json:"eventID"`
	UserProfileID UserProfileID `json:"userProfileID"`
	Email         string        `json:"email"`
}

func (e EventUserProfileDeleted) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserProfileDeleted) Type() string {
	return EventTypeUserProfileDeleted
}

func (e EventUserProfileDeleted) AggregateID() uuid.UUID {
	return e.UserProfileID.UUID
}
