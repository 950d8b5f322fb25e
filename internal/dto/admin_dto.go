package dto

import "github.com/google/uuid"

// UserAction is the closed set of bulk administration actions. Unknown
// values are rejected before any storage access.
type UserAction string

const (
	UserActionBlock       UserAction = "block"
	UserActionUnblock     UserAction = "unblock"
	UserActionMakeAdmin   UserAction = "make_admin"
	UserActionRemoveAdmin UserAction = "remove_admin"
)

type UserActionRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1"`
	Action  UserAction  `json:"action" binding:"required,oneof=block unblock make_admin remove_admin"`
}

type UserDeleteRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1"`
}
