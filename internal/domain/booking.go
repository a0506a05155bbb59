package domain

import "time"

type BookingStatus string

const (
	// StatusPendingHOD is the default entry point of the approval chain.
	StatusPendingHOD BookingStatus = "pending_hod"
	// StatusPendingHall means the department stage passed and the request
	// awaits the hall manager's final decision.
	StatusPendingHall BookingStatus = "pending_hall"
	// StatusApproved is terminal; approved bookings reserve their slots.
	StatusApproved BookingStatus = "approved"
)

// DateFormat is the wire and storage format for booking dates.
const DateFormat = "2006-01-02"

type Booking struct {
	ID                string        `json:"id"`
	UID               string        `json:"uid"`
	Name              string        `json:"name"`
	Department        string        `json:"department"`
	EventName         string        `json:"event_name"`
	Purpose           string        `json:"purpose"`
	Date              string        `json:"date"`
	Hall              string        `json:"hall"`
	Notes             string        `json:"notes"`
	TotalDuration     int           `json:"total_duration"`
	Status            BookingStatus `json:"status"`
	Slots             []string      `json:"slots"`
	SupportingDocPath *string       `json:"supporting_doc_path,omitempty"`
	HODSignaturePath  *string       `json:"hod_signature_path,omitempty"`
	HallSignaturePath *string       `json:"hall_signature_path,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	ApprovedAt        *time.Time    `json:"approved_at,omitempty"`
}

type SubmitBookingInput struct {
	UID               string
	Department        string
	EventName         string
	Purpose           string
	Date              string
	Hall              string
	Notes             string
	Slots             []string
	SupportingDocPath *string
}

// BookingFeed is the role-scoped listing returned by the bookings endpoint.
// Regular scopes fill Bookings; the admin scope fills both pending queues.
type BookingFeed struct {
	Scope       string     `json:"scope"`
	Bookings    []*Booking `json:"bookings,omitempty"`
	PendingHOD  []*Booking `json:"pending_hod,omitempty"`
	PendingHall []*Booking `json:"pending_hall,omitempty"`
}

// ApprovedPublic is the read-only calendar projection of an approved
// booking, with start/end derived from its slot set.
type ApprovedPublic struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Hall       string `json:"hall"`
	Department string `json:"department"`
	EventName  string `json:"event_name"`
	Purpose    string `json:"purpose"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}
