package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

func (q *Queries) CreateContact(ctx context.Context, contact *model.ContactModel) error {
	const stmt = `
INSERT INTO contacts (name, email, message)
VALUES ($1, $2, $3)`

	_, err := q.db.Exec(ctx, stmt, contact.Name, contact.Email, contact.Message)
	return err
}
