package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zvrva/hoteldesk/config"
	"github.com/zvrva/hoteldesk/internal/domain"
	"github.com/zvrva/hoteldesk/internal/repository"
	"github.com/zvrva/hoteldesk/internal/service/rooms"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List() []domain.Room {
	args := m.Called()
	return args.Get(0).([]domain.Room)
}

func (m *MockRoomRepository) AvailableByCategory(filter domain.Category) []domain.Room {
	args := m.Called(filter)
	return args.Get(0).([]domain.Room)
}

func (m *MockRoomRepository) FirstAvailable(category domain.Category) (*domain.Room, bool) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Room), args.Bool(1)
}

func (m *MockRoomRepository) SetAvailability(number int, available bool) {
	m.Called(number, available)
}

func (m *MockRoomRepository) Replace(rooms []domain.Room) {
	m.Called(rooms)
}

func (m *MockRoomRepository) Snapshot() []domain.Room {
	args := m.Called()
	return args.Get(0).([]domain.Room)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Append(booking domain.Booking) {
	m.Called(booking)
}

func (m *MockBookingRepository) FindByGuest(name string) (*domain.Booking, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Booking), args.Bool(1)
}

func (m *MockBookingRepository) Remove(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockBookingRepository) List() []domain.Booking {
	args := m.Called()
	return args.Get(0).([]domain.Booking)
}

func (m *MockBookingRepository) Replace(bookings []domain.Booking) {
	m.Called(bookings)
}

func (m *MockBookingRepository) Snapshot() []domain.Booking {
	args := m.Called()
	return args.Get(0).([]domain.Booking)
}

func TestBookingService_Book_Success(t *testing.T) {
	mockRooms := &MockRoomRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewBookingService(mockRooms, mockBookings)

	room := &domain.Room{Number: 101, Category: domain.CategoryStandard, Available: true}
	mockRooms.On("FirstAvailable", domain.Category("standard")).Return(room, true).Once()
	mockRooms.On("SetAvailability", 101, false).Once()
	mockBookings.On("Append", mock.AnythingOfType("domain.Booking")).Once()

	booked, err := service.Book("Alice", "standard")

	assert.NoError(t, err)
	assert.NotNil(t, booked)
	assert.NotEmpty(t, booked.ID)
	assert.Equal(t, "Alice", booked.GuestName)
	assert.Equal(t, 101, booked.RoomNumber)
	assert.Equal(t, domain.CategoryStandard, booked.Category)
	assert.Equal(t, domain.PaymentStatusPaid, booked.PaymentStatus)

	mockRooms.AssertExpectations(t)
	mockBookings.AssertExpectations(t)
}

func TestBookingService_Book_NoRoomAvailable(t *testing.T) {
	mockRooms := &MockRoomRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewBookingService(mockRooms, mockBookings)

	mockRooms.On("FirstAvailable", domain.Category("Suite")).Return(nil, false).Once()

	booked, err := service.Book("Alice", "Suite")

	assert.ErrorIs(t, err, ErrNoRoomAvailable)
	assert.Nil(t, booked)
	mockRooms.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Append", mock.Anything)
	mockRooms.AssertExpectations(t)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	mockRooms := &MockRoomRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewBookingService(mockRooms, mockBookings)

	existing := &domain.Booking{ID: "token-1", GuestName: "Alice", RoomNumber: 101, Category: domain.CategoryStandard, PaymentStatus: domain.PaymentStatusPaid}
	mockBookings.On("FindByGuest", "alice").Return(existing, true).Once()
	mockRooms.On("SetAvailability", 101, true).Once()
	mockBookings.On("Remove", "token-1").Return(true).Once()

	cancelled, err := service.Cancel("alice")

	assert.NoError(t, err)
	assert.Equal(t, existing, cancelled)
	mockRooms.AssertExpectations(t)
	mockBookings.AssertExpectations(t)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	mockRooms := &MockRoomRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewBookingService(mockRooms, mockBookings)

	mockBookings.On("FindByGuest", "Bob").Return(nil, false).Once()

	cancelled, err := service.Cancel("Bob")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, cancelled)
	mockRooms.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Remove", mock.Anything)
	mockBookings.AssertExpectations(t)
}

func TestBookingService_Book_WildcardCategoryRejected(t *testing.T) {
	roomRepo := repository.NewRoomRepository()
	roomRepo.Replace(rooms.SeedCatalog(config.Default().Catalog))
	bookingRepo := repository.NewBookingRepository()
	service := NewBookingService(roomRepo, bookingRepo)

	booked, err := service.Book("Mallory", "All")

	assert.ErrorIs(t, err, ErrNoRoomAvailable)
	assert.Nil(t, booked)
	assert.Empty(t, bookingRepo.List())
	assert.Len(t, roomRepo.AvailableByCategory("All"), 10)
}

// Exhausting a category and freeing a room again, against the real
// repositories and the default seed catalog.
func TestBookingService_StandardCategoryExhaustion(t *testing.T) {
	roomRepo := repository.NewRoomRepository()
	roomRepo.Replace(rooms.SeedCatalog(config.Default().Catalog))
	bookingRepo := repository.NewBookingRepository()
	service := NewBookingService(roomRepo, bookingRepo)

	guests := []string{"Alice", "Bob", "Carol", "Dan", "Eve"}
	var carolRoom int
	for _, guest := range guests {
		booked, err := service.Book(guest, "Standard")
		assert.NoError(t, err)
		assert.Equal(t, domain.CategoryStandard, booked.Category)
		if guest == "Carol" {
			carolRoom = booked.RoomNumber
		}
	}

	booked, err := service.Book("Frank", "Standard")
	assert.ErrorIs(t, err, ErrNoRoomAvailable)
	assert.Nil(t, booked)
	assert.Len(t, service.List(), 5)
	assert.Empty(t, roomRepo.AvailableByCategory("Standard"))

	cancelled, err := service.Cancel("Carol")
	assert.NoError(t, err)
	assert.Equal(t, carolRoom, cancelled.RoomNumber)
	assert.Len(t, service.List(), 4)

	freed := roomRepo.AvailableByCategory("Standard")
	assert.Len(t, freed, 1)
	assert.Equal(t, carolRoom, freed[0].Number)

	// Deluxe and Suite were never touched
	assert.Len(t, roomRepo.AvailableByCategory("Deluxe"), 3)
	assert.Len(t, roomRepo.AvailableByCategory("Suite"), 2)
}
