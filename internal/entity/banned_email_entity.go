package entity

import (
	"time"

	"github.com/google/uuid"
)

// BannedEmail survives the deletion of the user row it was banned with, so a
// purged account cannot simply sign up again under the same address.
type BannedEmail struct {
	Id        uuid.UUID
	Email     string
	Reason    string
	CreatedAt time.Time
}
