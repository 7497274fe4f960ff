package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// WithTurns keeps only sessions that already contain at least one turn.
// Empty sessions stay out of the sidebar listing.
type WithTurns struct{}

func (s WithTurns) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("EXISTS (SELECT 1 FROM chat_turns WHERE chat_turns.chat_session_id = chat_sessions.id)")
}
