package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID           uuid.UUID
	Username     string
	Email        string
	HashPassword string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
}

type CreateUserModel struct {
	Username string
	Email    string
	Password string
}

type LoginResponseModel struct {
	AccessToken string
	User        UserModel
}
