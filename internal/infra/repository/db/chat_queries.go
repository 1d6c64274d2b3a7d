package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
)

func (q *Queries) CreateChatMessage(ctx context.Context, msg *model.ChatMessageModel) error {
	const stmt = `
INSERT INTO chat_messages (user_id, sender, message)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	return q.db.QueryRow(ctx, stmt, msg.UserID, msg.Sender, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
}

// ListChatMessagesByUserID 聊天記錄按時間由舊到新
func (q *Queries) ListChatMessagesByUserID(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error) {
	const query = `
SELECT id, user_id, sender, message, created_at
FROM chat_messages
WHERE user_id = $1
ORDER BY created_at ASC, id ASC`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.ChatMessageModel
	for rows.Next() {
		var m model.ChatMessageModel
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
