package stays

import (
	"context"
	"time"

	"staywise/cache"
	"staywise/models"
	"staywise/store"
)

// DefaultWindowDays is the dashboard window when the caller supplies none.
const DefaultWindowDays = 7

// StaysService serves the dashboard read path. Every query goes through the
// reactive cache, so the views it backs pick up booking mutations on the
// next read after invalidation.
type StaysService interface {
	// Booking fetches one booking's detail entry.
	Booking(ctx context.Context, id int64) (*models.Booking, error)
	// RecentBookings lists bookings created in the last n days.
	RecentBookings(ctx context.Context, lastDays int) ([]models.Booking, error)
	// RecentStays lists confirmed stays (checked-in or checked-out)
	// starting in the last n days.
	RecentStays(ctx context.Context, lastDays int) ([]models.Booking, error)
}

// DefaultStaysService is the production implementation.
type DefaultStaysService struct {
	Store store.Client
	Cache cache.QueryCache
}

func windowDays(lastDays int) int {
	if lastDays <= 0 {
		return DefaultWindowDays
	}
	return lastDays
}

// Booking fetches one booking's detail entry.
func (s *DefaultStaysService) Booking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := s.Cache.GetOrFetch(ctx, cache.BookingKey(id), &booking, func(ctx context.Context) (interface{}, error) {
		return s.Store.GetBooking(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// RecentBookings lists bookings created in the last n days.
func (s *DefaultStaysService) RecentBookings(ctx context.Context, lastDays int) ([]models.Booking, error) {
	days := windowDays(lastDays)
	cutoff := time.Now().AddDate(0, 0, -days)

	var bookings []models.Booking
	err := s.Cache.GetOrFetch(ctx, cache.RecentBookingsKey(days), &bookings, func(ctx context.Context) (interface{}, error) {
		return s.Store.BookingsAfterDate(ctx, cutoff)
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// RecentStays lists confirmed stays starting in the last n days. The cache
// holds the raw window; the confirmed filter is applied on the way out.
func (s *DefaultStaysService) RecentStays(ctx context.Context, lastDays int) ([]models.Booking, error) {
	days := windowDays(lastDays)
	cutoff := time.Now().AddDate(0, 0, -days)

	var staysList []models.Booking
	err := s.Cache.GetOrFetch(ctx, cache.RecentStaysKey(days), &staysList, func(ctx context.Context) (interface{}, error) {
		return s.Store.StaysAfterDate(ctx, cutoff)
	})
	if err != nil {
		return nil, err
	}

	confirmed := make([]models.Booking, 0, len(staysList))
	for _, stay := range staysList {
		if stay.Status == models.StatusCheckedIn || stay.Status == models.StatusCheckedOut {
			confirmed = append(confirmed, stay)
		}
	}
	return confirmed, nil
}
