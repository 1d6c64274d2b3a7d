package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageModel struct {
	ID        int64
	UserID    uuid.UUID
	Sender    string
	Message   string
	CreatedAt time.Time
}
