package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one question/answer exchange inside a session. Turns are
// immutable once stored.
type ChatTurn struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Question      string
	Answer        string
	CreatedAt     time.Time
}
