package domain

import "time"

// Notification is an outbox row created as a side effect of a booking
// state transition. Delivery happens later and never affects the
// transition that produced the row.
type Notification struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}
