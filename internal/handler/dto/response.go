package dto

import (
	"time"

	"github.com/stpnv0/EventApproval/internal/domain"
)

type EventResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Department       string  `json:"department"`
	CoordinatorID    string  `json:"coordinator_id"`
	VenueID          string  `json:"venue_id"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	ParticipantCount int     `json:"participant_count"`
	Status           string  `json:"status"`
	RejectionReason  *string `json:"rejection_reason,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ClaimResponse struct {
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Quantity     int    `json:"quantity"`
}

type EventDetailsResponse struct {
	Event           EventResponse   `json:"event"`
	VenueName       string          `json:"venue_name"`
	CoordinatorName string          `json:"coordinator_name"`
	Resources       []ClaimResponse `json:"resources"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type ResourceResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
	CreatedAt     string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error    string                  `json:"error"`
	Conflict *domain.AllocationError `json:"conflict,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Department:       e.Department,
		CoordinatorID:    e.CoordinatorID,
		VenueID:          e.VenueID,
		StartTime:        e.StartTime.Format(time.RFC3339),
		EndTime:          e.EndTime.Format(time.RFC3339),
		ParticipantCount: e.ParticipantCount,
		Status:           string(e.Status),
		RejectionReason:  e.RejectionReason,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventsResponse(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToClaimsResponse(claims []domain.ResourceClaim) []ClaimResponse {
	resp := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		resp = append(resp, ClaimResponse{
			ResourceID:   c.ResourceID,
			ResourceName: c.ResourceName,
			Quantity:     c.Quantity,
		})
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:           ToEventResponse(&d.Event),
		VenueName:       d.VenueName,
		CoordinatorName: d.CoordinatorName,
		Resources:       ToClaimsResponse(d.Claims),
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID,
		Name:          r.Name,
		TotalQuantity: r.TotalQuantity,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
