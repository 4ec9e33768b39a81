package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	Role           string
	TelegramChatID *int64
}

// Actor is the already-authenticated caller of an operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) Can(c Capability) bool {
	return a.Role.Can(c)
}
