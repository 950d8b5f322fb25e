package model

import "github.com/google/uuid"

// AccessGrant rows exist iff the owning form is private. Flipping a form to
// public purges all of its grants.
type AccessGrant struct {
	FormID uint      `gorm:"primaryKey" json:"form_id"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
