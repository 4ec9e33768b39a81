package dto

type ClaimRequest struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`
	Quantity   int    `json:"quantity"`
}

type CreateEventRequest struct {
	Title            string         `json:"title" binding:"required"`
	Department       string         `json:"department" binding:"required"`
	VenueID          string         `json:"venue_id" binding:"required,uuid"`
	StartTime        string         `json:"start_time" binding:"required"`
	EndTime          string         `json:"end_time" binding:"required"`
	ParticipantCount int            `json:"participant_count"`
	Resources        []ClaimRequest `json:"resources" binding:"dive"`
}

type ReplaceClaimsRequest struct {
	Resources []ClaimRequest `json:"resources" binding:"dive"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
}

type CreateResourceRequest struct {
	Name          string `json:"name" binding:"required"`
	TotalQuantity int    `json:"total_quantity"`
}

type UpdateQuantityRequest struct {
	TotalQuantity *int `json:"total_quantity" binding:"required"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
