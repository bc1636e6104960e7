package repository

import (
	"strings"

	"github.com/zvrva/hoteldesk/internal/domain"
)

type BookingRepository interface {
	Append(booking domain.Booking)
	FindByGuest(name string) (*domain.Booking, bool)
	Remove(id string) bool
	List() []domain.Booking
	Replace(bookings []domain.Booking)
	Snapshot() []domain.Booking
}

// MemBookingRepository is the ordered ledger of active bookings.
type MemBookingRepository struct {
	bookings []domain.Booking
}

func NewBookingRepository() *MemBookingRepository {
	return &MemBookingRepository{}
}

func (r *MemBookingRepository) Append(booking domain.Booking) {
	r.bookings = append(r.bookings, booking)
}

// FindByGuest matches guest names case-insensitively and returns the
// first match in ledger order. With duplicate guest names only the first
// booking is ever addressable.
func (r *MemBookingRepository) FindByGuest(name string) (*domain.Booking, bool) {
	for i := range r.bookings {
		if strings.EqualFold(r.bookings[i].GuestName, name) {
			booking := r.bookings[i]
			return &booking, true
		}
	}
	return nil, false
}

func (r *MemBookingRepository) Remove(id string) bool {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (r *MemBookingRepository) List() []domain.Booking {
	return r.Snapshot()
}

func (r *MemBookingRepository) Replace(bookings []domain.Booking) {
	r.bookings = make([]domain.Booking, len(bookings))
	copy(r.bookings, bookings)
}

func (r *MemBookingRepository) Snapshot() []domain.Booking {
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

var _ BookingRepository = (*MemBookingRepository)(nil)
