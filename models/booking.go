package models

import "time"

// Booking status values. Transitions are one-directional:
// unconfirmed -> checked-in -> checked-out.
const (
	StatusUnconfirmed = "unconfirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

// Booking represents a guest reservation record. The remote store is the
// durable owner; local copies are non-authoritative mirrors.
type Booking struct {
	ID           int64     `bson:"id" json:"id"`
	GuestName    string    `bson:"guestName" json:"guestName"`
	GuestEmail   string    `bson:"guestEmail" json:"guestEmail"`
	NumGuests    int       `bson:"numGuests" json:"numGuests"`
	RoomNumber   string    `bson:"roomNumber" json:"roomNumber"`
	StartDate    time.Time `bson:"startDate" json:"startDate"`
	EndDate      time.Time `bson:"endDate" json:"endDate"`
	NumNights    int       `bson:"numNights" json:"numNights"`
	Status       string    `bson:"status" json:"status"`
	IsPaid       bool      `bson:"isPaid" json:"isPaid"`
	HasBreakfast bool      `bson:"hasBreakfast" json:"hasBreakfast"`
	RoomPrice    float64   `bson:"roomPrice" json:"roomPrice"`
	ExtrasPrice  float64   `bson:"extrasPrice" json:"extrasPrice"`
	TotalPrice   float64   `bson:"totalPrice" json:"totalPrice"`
	Observations string    `bson:"observations,omitempty" json:"observations,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingExtras are add-on charges merged into a booking at check-in.
type BookingExtras struct {
	HasBreakfast bool    `json:"hasBreakfast"`
	ExtrasPrice  float64 `json:"extrasPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

// BookingUpdate is a partial update of a booking record. Nil pointer
// fields and an empty Status are left unchanged.
type BookingUpdate struct {
	Status       string   `json:"status,omitempty"`
	IsPaid       *bool    `json:"isPaid,omitempty"`
	HasBreakfast *bool    `json:"hasBreakfast,omitempty"`
	ExtrasPrice  *float64 `json:"extrasPrice,omitempty"`
	TotalPrice   *float64 `json:"totalPrice,omitempty"`
	Observations *string  `json:"observations,omitempty"`
}

// CanTransition reports whether a booking status change is legal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusUnconfirmed:
		return to == StatusCheckedIn
	case StatusCheckedIn:
		return to == StatusCheckedOut
	default:
		return false
	}
}
