package constants

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type TokenDurationHour int

const (
	// 與原系統一致, access token 7天有效
	AccessTokenDuration TokenDurationHour = 24 * 7
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// ChatSenderEnum 聊天訊息來源
type ChatSenderEnum string

const (
	ChatSenderUser ChatSenderEnum = "user"
	ChatSenderBot  ChatSenderEnum = "bot"
)

func IsValidChatSender(sender string) bool {
	switch ChatSenderEnum(sender) {
	case ChatSenderUser, ChatSenderBot:
		return true
	default:
		return false
	}
}

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
)
