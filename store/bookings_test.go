package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"staywise/models"
)

func newBookingClient(t *testing.T, bookings *fakeBookingRepo) *DefaultClient {
	t.Helper()
	users := newFakeUserRepo(&models.User{
		ID: "u1", Email: "staff@hotel.test", PasswordHash: hashPassword(t, "pw"),
	})
	c := newTestClient(t, users, bookings)
	signIn(t, c, "staff@hotel.test", "pw")
	return c
}

func TestUpdateBookingCheckIn(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: 7, Status: models.StatusUnconfirmed})
	c := newBookingClient(t, repo)

	paid := true
	updated, err := c.UpdateBooking(context.Background(), 7, models.BookingUpdate{
		Status: models.StatusCheckedIn,
		IsPaid: &paid,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != models.StatusCheckedIn || !updated.IsPaid {
		t.Errorf("updated booking = %+v", updated)
	}
	if repo.updateCalls != 1 {
		t.Errorf("repository updated %d times, want 1", repo.updateCalls)
	}
}

func TestUpdateBookingRefusesIllegalTransition(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: 7, Status: models.StatusCheckedOut})
	c := newBookingClient(t, repo)

	_, err := c.UpdateBooking(context.Background(), 7, models.BookingUpdate{Status: models.StatusCheckedIn})
	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("err = %v, want a RejectionError", err)
	}
	if !strings.Contains(rejection.Reason, "illegal status transition") {
		t.Errorf("rejection reason = %q", rejection.Reason)
	}
	if repo.updateCalls != 0 {
		t.Error("a refused transition must not reach the repository")
	}
	if repo.bookings[7].Status != models.StatusCheckedOut {
		t.Error("a refused transition must leave the record untouched")
	}
}

func TestUpdateBookingUnknownID(t *testing.T) {
	c := newBookingClient(t, newFakeBookingRepo())

	_, err := c.UpdateBooking(context.Background(), 99, models.BookingUpdate{Status: models.StatusCheckedIn})
	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("err = %v, want a RejectionError", err)
	}
}

func TestUpdateBookingEmptyUpdate(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: 7, Status: models.StatusCheckedIn})
	c := newBookingClient(t, repo)

	booking, err := c.UpdateBooking(context.Background(), 7, models.BookingUpdate{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if booking.Status != models.StatusCheckedIn {
		t.Errorf("booking = %+v", booking)
	}
	if repo.updateCalls != 0 {
		t.Error("an empty update must not reach the repository")
	}
}

func TestBookingAccessRequiresSession(t *testing.T) {
	c := newTestClient(t, nil, newFakeBookingRepo(&models.Booking{ID: 7}))

	if _, err := c.GetBooking(context.Background(), 7); !errors.Is(err, ErrNoSession) {
		t.Errorf("GetBooking err = %v, want ErrNoSession", err)
	}
	if _, err := c.UpdateBooking(context.Background(), 7, models.BookingUpdate{}); !errors.Is(err, ErrNoSession) {
		t.Errorf("UpdateBooking err = %v, want ErrNoSession", err)
	}
	if _, err := c.BookingsAfterDate(context.Background(), time.Now()); !errors.Is(err, ErrNoSession) {
		t.Errorf("BookingsAfterDate err = %v, want ErrNoSession", err)
	}
}

func TestGetBooking(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: 7, GuestName: "Jonas"})
	c := newBookingClient(t, repo)

	booking, err := c.GetBooking(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if booking.GuestName != "Jonas" {
		t.Errorf("booking = %+v", booking)
	}

	if _, err := c.GetBooking(context.Background(), 99); err == nil {
		t.Error("unknown booking must be an error")
	}
}

func TestBookingsAfterDate(t *testing.T) {
	now := time.Now()
	repo := newFakeBookingRepo(
		&models.Booking{ID: 1, CreatedAt: now.AddDate(0, 0, -2)},
		&models.Booking{ID: 2, CreatedAt: now.AddDate(0, 0, -10)},
	)
	c := newBookingClient(t, repo)

	bookings, err := c.BookingsAfterDate(context.Background(), now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("BookingsAfterDate failed: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != 1 {
		t.Errorf("bookings = %+v, want only the recent one", bookings)
	}
}

func TestStaysAfterDate(t *testing.T) {
	now := time.Now()
	repo := newFakeBookingRepo(
		&models.Booking{ID: 1, StartDate: now.AddDate(0, 0, -1), Status: models.StatusCheckedIn},
		&models.Booking{ID: 2, StartDate: now.AddDate(0, 0, -30), Status: models.StatusCheckedOut},
	)
	c := newBookingClient(t, repo)

	stays, err := c.StaysAfterDate(context.Background(), now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("StaysAfterDate failed: %v", err)
	}
	if len(stays) != 1 || stays[0].ID != 1 {
		t.Errorf("stays = %+v, want only the one starting in the window", stays)
	}
}
