package store

import (
	"context"
	"fmt"
	"time"

	"staywise/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (c *DefaultClient) requireSession(ctx context.Context) error {
	session, err := c.GetSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoSession
	}
	return nil
}

// GetBooking fetches a single booking by ID.
func (c *DefaultClient) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	booking, err := c.Bookings.GetByID(id)
	if err != nil {
		return nil, NewRejection("getBooking", "store unavailable", err)
	}
	if booking == nil {
		return nil, NewRejection("getBooking", fmt.Sprintf("booking %d not found", id), nil)
	}
	return booking, nil
}

// UpdateBooking applies a partial update. Illegal status transitions are
// refused here; the caller never mutates local state on refusal.
func (c *DefaultClient) UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (*models.Booking, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}

	current, err := c.Bookings.GetByID(id)
	if err != nil {
		return nil, NewRejection("updateBooking", "store unavailable", err)
	}
	if current == nil {
		return nil, NewRejection("updateBooking", fmt.Sprintf("booking %d not found", id), nil)
	}

	fields := bson.M{}
	if update.Status != "" {
		if !models.CanTransition(current.Status, update.Status) {
			return nil, NewRejection("updateBooking",
				fmt.Sprintf("illegal status transition %q -> %q", current.Status, update.Status), nil)
		}
		fields["status"] = update.Status
	}
	if update.IsPaid != nil {
		fields["isPaid"] = *update.IsPaid
	}
	if update.HasBreakfast != nil {
		fields["hasBreakfast"] = *update.HasBreakfast
	}
	if update.ExtrasPrice != nil {
		fields["extrasPrice"] = *update.ExtrasPrice
	}
	if update.TotalPrice != nil {
		fields["totalPrice"] = *update.TotalPrice
	}
	if update.Observations != nil {
		fields["observations"] = *update.Observations
	}
	if len(fields) == 0 {
		return current, nil
	}

	updated, err := c.Bookings.UpdateFields(id, fields)
	if err != nil {
		return nil, NewRejection("updateBooking", "failed to apply update", err)
	}
	return updated, nil
}

// BookingsAfterDate lists bookings created at or after the cutoff.
func (c *DefaultClient) BookingsAfterDate(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	bookings, err := c.Bookings.ListCreatedAfter(cutoff)
	if err != nil {
		return nil, NewRejection("getBookings", "store unavailable", err)
	}
	return bookings, nil
}

// StaysAfterDate lists bookings whose stay starts at or after the cutoff.
func (c *DefaultClient) StaysAfterDate(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	stays, err := c.Bookings.ListStartingAfter(cutoff)
	if err != nil {
		return nil, NewRejection("getStays", "store unavailable", err)
	}
	return stays, nil
}
