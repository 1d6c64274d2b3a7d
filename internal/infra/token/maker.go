package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// Payload token內容, 僅攜帶身份資訊, 不攜帶權限以外的個資
type Payload struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func NewPayload(userID uuid.UUID, username string, isAdmin bool, duration time.Duration) *Payload {
	return &Payload{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

// Maker token製作介面
type Maker interface {
	// CreateToken 建立token與payload
	CreateToken(userID uuid.UUID, username string, isAdmin bool, duration time.Duration) (string, *Payload, error)
	// VertifyToken 驗證token, 回傳payload
	//
	// 錯誤:
	//   - ErrExpiredToken: token已過期
	//   - ErrInvalidToken: token無效
	VertifyToken(token string) (*Payload, error)
}
