package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionResponse struct {
	Id      uuid.UUID `json:"id"`
	Summary string    `json:"summary"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatTurnResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatSessionDetailResponse struct {
	Id        uuid.UUID          `json:"id"`
	Summary   string             `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
	Turns     []ChatTurnResponse `json:"turns"`
}

type SendChatRequest struct {
	// SessionId is optional; a zero id opens a fresh session.
	SessionId uuid.UUID `json:"session_id"`
	Message   string    `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Summary   string    `json:"summary"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
}
