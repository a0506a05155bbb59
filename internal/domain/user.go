package domain

import (
	"strings"
	"time"
)

type User struct {
	UID                string    `json:"uid"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	RoleRaw            string    `json:"role_raw"`
	Role               RoleClass `json:"role"`
	Department         string    `json:"department"`
	HallResponsibility string    `json:"hall_responsibility"`
	SignaturePath      *string   `json:"signature_path,omitempty"`
	TelegramChatID     *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Halls splits the comma-separated hall responsibility list.
func (u *User) Halls() []string {
	parts := strings.Split(u.HallResponsibility, ",")
	halls := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			halls = append(halls, h)
		}
	}
	return halls
}

type SyncUserInput struct {
	UID                string
	Name               string
	Email              string
	Role               string
	Department         string
	HallResponsibility string
	SignaturePath      *string
	TelegramChatID     *int64
}
