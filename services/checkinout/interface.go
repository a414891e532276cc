package checkinout

import (
	"context"

	"staywise/cache"
	"staywise/models"
	"staywise/nav"
	"staywise/notify"
	"staywise/store"
)

// BookingLifecycleManager drives a booking's status through its
// one-directional lifecycle against the remote store. It is the sole local
// mutator of booking status; the store remains the durable authority and
// refuses illegal transitions.
type BookingLifecycleManager interface {
	// CheckIn transitions the booking to checked-in, marks it paid and
	// merges the supplied extras. On success active cache entries are
	// invalidated and navigation returns to the booking list.
	CheckIn(ctx context.Context, bookingID int64, extras models.BookingExtras) (*models.Booking, error)
	// CheckOut transitions the booking to checked-out. On success active
	// cache entries are invalidated; the caller stays on the current view.
	CheckOut(ctx context.Context, bookingID int64) (*models.Booking, error)
	// IsPending reports whether a mutation is in flight so callers can
	// disable the trigger. The manager itself does not deduplicate.
	IsPending() bool
}

// DefaultBookingLifecycleManager is the production implementation.
type DefaultBookingLifecycleManager struct {
	Store    store.Client
	Cache    cache.QueryCache
	Notifier notify.Notifier
	Nav      nav.Navigator

	pending pendingGauge
}
