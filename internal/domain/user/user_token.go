package user

import (
	"time"

	"github.com/google/uuid"
)

// UserToken is the persisted refresh-token record; one row per live session.
type UserToken struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	RefreshToken string    `gorm:"uniqueIndex;not null;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (UserToken) TableName() string { return "user_token" }
