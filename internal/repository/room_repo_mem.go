package repository

import "github.com/zvrva/hoteldesk/internal/domain"

type RoomRepository interface {
	List() []domain.Room
	AvailableByCategory(filter domain.Category) []domain.Room
	FirstAvailable(category domain.Category) (*domain.Room, bool)
	SetAvailability(number int, available bool)
	Replace(rooms []domain.Room)
	Snapshot() []domain.Room
}

// MemRoomRepository holds the inventory for the lifetime of the process.
// The session loop is the only caller, so there is no locking.
type MemRoomRepository struct {
	rooms []domain.Room
}

func NewRoomRepository() *MemRoomRepository {
	return &MemRoomRepository{}
}

func (r *MemRoomRepository) List() []domain.Room {
	return r.Snapshot()
}

func (r *MemRoomRepository) AvailableByCategory(filter domain.Category) []domain.Room {
	var matched []domain.Room
	for _, room := range r.rooms {
		if room.Available && room.Category.Matches(filter) {
			matched = append(matched, room)
		}
	}
	return matched
}

// FirstAvailable takes an exact category name, not a filter: the All
// wildcard is a list-side convenience and books nothing here.
func (r *MemRoomRepository) FirstAvailable(category domain.Category) (*domain.Room, bool) {
	for i := range r.rooms {
		if r.rooms[i].Available && r.rooms[i].Category.Is(category) {
			room := r.rooms[i]
			return &room, true
		}
	}
	return nil, false
}

// SetAvailability is a no-op for unknown room numbers: bookings only ever
// reference rooms that exist in the inventory.
func (r *MemRoomRepository) SetAvailability(number int, available bool) {
	for i := range r.rooms {
		if r.rooms[i].Number == number {
			r.rooms[i].Available = available
			return
		}
	}
}

func (r *MemRoomRepository) Replace(rooms []domain.Room) {
	r.rooms = make([]domain.Room, len(rooms))
	copy(r.rooms, rooms)
}

func (r *MemRoomRepository) Snapshot() []domain.Room {
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

var _ RoomRepository = (*MemRoomRepository)(nil)
