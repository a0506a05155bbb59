package dto

import (
	"time"

	"github.com/joshishrau/FacilityFlow/internal/domain"
)

type BookingResponse struct {
	ID            string   `json:"id"`
	UID           string   `json:"uid"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	EventName     string   `json:"event_name"`
	Purpose       string   `json:"purpose"`
	Date          string   `json:"date"`
	Hall          string   `json:"hall"`
	Notes         string   `json:"notes"`
	TotalDuration int      `json:"total_duration"`
	Status        string   `json:"status"`
	Slots         []string `json:"slots"`
	SupportingDoc *string  `json:"supporting_doc_path,omitempty"`
	CreatedAt     string   `json:"created_at"`
	ApprovedAt    *string  `json:"approved_at,omitempty"`
}

type BookingFeedResponse struct {
	Scope       string            `json:"scope"`
	Bookings    []BookingResponse `json:"bookings,omitempty"`
	PendingHOD  []BookingResponse `json:"pending_hod,omitempty"`
	PendingHall []BookingResponse `json:"pending_hall,omitempty"`
}

type ApprovedPublicResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Hall       string `json:"hall"`
	Department string `json:"department"`
	EventName  string `json:"event_name"`
	Purpose    string `json:"purpose"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type UserResponse struct {
	UID                string  `json:"uid"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	Department         string  `json:"department"`
	HallResponsibility string  `json:"hall_responsibility"`
	SignaturePath      *string `json:"signature_path,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		UID:           b.UID,
		Name:          b.Name,
		Department:    b.Department,
		EventName:     b.EventName,
		Purpose:       b.Purpose,
		Date:          b.Date,
		Hall:          b.Hall,
		Notes:         b.Notes,
		TotalDuration: b.TotalDuration,
		Status:        string(b.Status),
		Slots:         b.Slots,
		SupportingDoc: b.SupportingDocPath,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.ApprovedAt != nil {
		at := b.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, ToBookingResponse(b))
	}
	return res
}

func ToBookingFeedResponse(feed *domain.BookingFeed) BookingFeedResponse {
	return BookingFeedResponse{
		Scope:       feed.Scope,
		Bookings:    ToBookingResponses(feed.Bookings),
		PendingHOD:  ToBookingResponses(feed.PendingHOD),
		PendingHall: ToBookingResponses(feed.PendingHall),
	}
}

func ToApprovedPublicResponse(p *domain.ApprovedPublic) ApprovedPublicResponse {
	return ApprovedPublicResponse(*p)
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UID:                u.UID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		Department:         u.Department,
		HallResponsibility: u.HallResponsibility,
		SignaturePath:      u.SignaturePath,
		CreatedAt:          u.CreatedAt.Format(time.RFC3339),
	}
}
