package store

import (
	"context"

	"talentbase/internal/models"
)

// ListBookings returns every booking.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.List(ctx)
}

// GetBooking returns the booking with the given id, or (nil, nil) when absent.
func (s *Store) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.Get(ctx, id)
}

// CreateBooking persists a new booking with stamped id and createdAt.
func (s *Store) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	b.ID = s.ids.NewID()
	b.CreatedAt = s.clock.Now()

	if err := s.bookings.Append(ctx, b); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "booking created", "id", b.ID)
	return &b, nil
}

// UpdateBooking merges the patch onto the stored booking. Returns
// ErrNotFound when the id is absent.
func (s *Store) UpdateBooking(ctx context.Context, id string, patch models.BookingPatch) (*models.Booking, error) {
	return s.bookings.Update(ctx, id, func(b *models.Booking) { patch.Apply(b) })
}

// DeleteBooking removes the booking if present.
func (s *Store) DeleteBooking(ctx context.Context, id string) (bool, error) {
	return s.bookings.Delete(ctx, id)
}
