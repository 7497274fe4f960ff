package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserResponse struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockUserResponse struct {
	Id      uuid.UUID `json:"id"`
	Blocked bool      `json:"blocked"`
}
