// Package events publishes account lifecycle events. Publishing is
// best-effort: a failed publish is logged and never fails the request that
// triggered it.
package events

import "time"

const (
	TopicUserRegistered = "litconnect.user.registered"
)

// UserRegistered is emitted after a successful registration.
type UserRegistered struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}
