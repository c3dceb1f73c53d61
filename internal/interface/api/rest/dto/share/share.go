package share

import (
	"time"

	"github.com/google/uuid"
)

type ShareRequest struct {
	UserIDs   []string `json:"user_ids"`
	ExpiresAt *string  `json:"expires_at"`
}

type LinkRequest struct {
	ExpiresAt *string `json:"expires_at"`
}

type Share struct {
	UUID       uuid.UUID  `json:"id"`
	Username   *string    `json:"shared_with_username,omitempty"`
	Email      *string    `json:"shared_with_email,omitempty"`
	ShareToken *string    `json:"share_token,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Shares []Share

type ResponseData struct {
	Data Shares `json:"data"`
}

type BatchResponse struct {
	Message        string      `json:"message"`
	SharesCreated  int         `json:"shares_created"`
	SharesUpdated  int         `json:"shares_updated"`
	InvalidUserIDs []uuid.UUID `json:"invalid_user_ids,omitempty"`
}

type LinkResponse struct {
	Message    string     `json:"message"`
	ShareToken string     `json:"share_token"`
	ShareURL   string     `json:"share_url"`
	ExpiresAt  *time.Time `json:"expires_at"`
}
