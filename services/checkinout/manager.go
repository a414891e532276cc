package checkinout

import (
	"context"
	"fmt"
	"sync/atomic"

	"staywise/models"
	"staywise/nav"
	"staywise/utils"

	"go.uber.org/zap"
)

const (
	msgCheckInFailed  = "Failed to check in booking"
	msgCheckOutFailed = "Failed to check out booking"
)

// pendingGauge counts in-flight mutations.
type pendingGauge struct {
	n int32
}

func (g *pendingGauge) enter() { atomic.AddInt32(&g.n, 1) }
func (g *pendingGauge) leave() { atomic.AddInt32(&g.n, -1) }
func (g *pendingGauge) busy() bool {
	return atomic.LoadInt32(&g.n) > 0
}

// IsPending reports whether a mutation is in flight.
func (m *DefaultBookingLifecycleManager) IsPending() bool {
	return m.pending.busy()
}

// CheckIn transitions the booking to checked-in. isPaid is set
// unconditionally: check-ins are settled at the desk.
func (m *DefaultBookingLifecycleManager) CheckIn(ctx context.Context, bookingID int64, extras models.BookingExtras) (*models.Booking, error) {
	m.pending.enter()
	defer m.pending.leave()

	paid := true
	update := models.BookingUpdate{
		Status: models.StatusCheckedIn,
		IsPaid: &paid,
	}
	if extras.HasBreakfast {
		hasBreakfast := true
		update.HasBreakfast = &hasBreakfast
		update.ExtrasPrice = &extras.ExtrasPrice
		update.TotalPrice = &extras.TotalPrice
	}

	updated, err := m.Store.UpdateBooking(ctx, bookingID, update)
	if err != nil {
		utils.GetLogger().Warn("CheckIn rejected", zap.Int64("bookingID", bookingID), zap.Error(err))
		m.Notifier.Error(msgCheckInFailed)
		return nil, err
	}

	m.Notifier.Success(fmt.Sprintf("Booking #%d checked in successfully", updated.ID))
	m.invalidateActive(ctx)
	m.Nav.GoTo(nav.PathBookingList, false)
	return updated, nil
}

// CheckOut transitions the booking to checked-out.
func (m *DefaultBookingLifecycleManager) CheckOut(ctx context.Context, bookingID int64) (*models.Booking, error) {
	m.pending.enter()
	defer m.pending.leave()

	update := models.BookingUpdate{Status: models.StatusCheckedOut}

	updated, err := m.Store.UpdateBooking(ctx, bookingID, update)
	if err != nil {
		utils.GetLogger().Warn("CheckOut rejected", zap.Int64("bookingID", bookingID), zap.Error(err))
		m.Notifier.Error(msgCheckOutFailed)
		return nil, err
	}

	m.Notifier.Success(fmt.Sprintf("Booking #%d checked out successfully", updated.ID))
	m.invalidateActive(ctx)
	return updated, nil
}

// invalidateActive marks every active entry stale so dependent views
// refetch. Mutation results are never written into the cache directly.
func (m *DefaultBookingLifecycleManager) invalidateActive(ctx context.Context) {
	if err := m.Cache.InvalidateActive(ctx); err != nil {
		utils.GetLogger().Error("Failed to invalidate active cache entries", zap.Error(err))
	}
}
