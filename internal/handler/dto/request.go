package dto

type CreateBookingRequest struct {
	Department        string   `json:"department" binding:"required"`
	EventName         string   `json:"event_name" binding:"required"`
	Purpose           string   `json:"purpose"`
	Date              string   `json:"date" binding:"required"`
	Hall              string   `json:"hall" binding:"required"`
	Slots             []string `json:"slots" binding:"required"`
	Notes             string   `json:"notes"`
	SupportingDocPath *string  `json:"supporting_doc_path"`
}

// SyncUserRequest arrives as multipart form data so a signature image can
// ride along with the profile fields.
type SyncUserRequest struct {
	Name               string `form:"name"`
	Email              string `form:"email"`
	Role               string `form:"role"`
	Department         string `form:"department"`
	HallResponsibility string `form:"hall_responsibility"`
	TelegramChatID     *int64 `form:"telegram_chat_id"`
}
