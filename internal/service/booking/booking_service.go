package booking

import (
	"errors"

	"github.com/google/uuid"
	"github.com/zvrva/hoteldesk/internal/domain"
	"github.com/zvrva/hoteldesk/internal/repository"
)

var (
	ErrNoRoomAvailable = errors.New("no available rooms in category")
	ErrBookingNotFound = errors.New("no booking found for that name")
)

type BookingUseCase interface {
	Book(guestName, category string) (*domain.Booking, error)
	Cancel(guestName string) (*domain.Booking, error)
	List() []domain.Booking
}

// BookingService keeps the ledger and the inventory in lockstep: booking
// a room marks it unavailable, cancelling marks it available again.
type BookingService struct {
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
}

func NewBookingService(rooms repository.RoomRepository, bookings repository.BookingRepository) *BookingService {
	return &BookingService{rooms: rooms, bookings: bookings}
}

// Book places the guest into the first available room of the category.
// A miss leaves the inventory and the ledger untouched.
func (s *BookingService) Book(guestName, category string) (*domain.Booking, error) {
	room, ok := s.rooms.FirstAvailable(domain.Category(category))
	if !ok {
		return nil, ErrNoRoomAvailable
	}

	s.rooms.SetAvailability(room.Number, false)
	booking := domain.Booking{
		ID:            uuid.NewString(),
		GuestName:     guestName,
		RoomNumber:    room.Number,
		Category:      room.Category,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	s.bookings.Append(booking)
	return &booking, nil
}

// Cancel removes the first booking matching the guest name
// (case-insensitive) and frees its room. With duplicate guest names only
// the first booking is addressable.
func (s *BookingService) Cancel(guestName string) (*domain.Booking, error) {
	booking, ok := s.bookings.FindByGuest(guestName)
	if !ok {
		return nil, ErrBookingNotFound
	}

	s.rooms.SetAvailability(booking.RoomNumber, true)
	s.bookings.Remove(booking.ID)
	return booking, nil
}

func (s *BookingService) List() []domain.Booking {
	return s.bookings.List()
}

var _ BookingUseCase = (*BookingService)(nil)
