package model

import (
	"time"

	"github.com/google/uuid"
)

type BannedEmail struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Reason    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BannedEmail) TableName() string {
	return "banned_emails"
}
