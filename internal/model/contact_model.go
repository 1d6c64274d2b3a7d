package model

import "time"

type ContactModel struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
