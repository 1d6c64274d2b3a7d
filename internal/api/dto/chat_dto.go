package dto

type SendMessageDTO struct {
	Message string `json:"message"`
}

type ChatMessageDTO struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
