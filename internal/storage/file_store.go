package storage

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zvrva/hoteldesk/config"
	"github.com/zvrva/hoteldesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// snapshotVersion guards the on-disk record format. A file carrying any
// other version is treated the same as a corrupt one.
const snapshotVersion = 1

type Store interface {
	LoadRooms() []domain.Room
	LoadBookings() []domain.Booking
	SaveRooms(rooms []domain.Room) error
	SaveBookings(bookings []domain.Booking) error
}

type roomRecord struct {
	Number    int    `yaml:"number"`
	Category  string `yaml:"category"`
	Available bool   `yaml:"available"`
}

type bookingRecord struct {
	ID            string `yaml:"id"`
	GuestName     string `yaml:"guest_name"`
	RoomNumber    int    `yaml:"room_number"`
	Category      string `yaml:"category"`
	PaymentStatus string `yaml:"payment_status"`
}

type roomsSnapshot struct {
	Version int          `yaml:"version"`
	Rooms   []roomRecord `yaml:"rooms"`
}

type bookingsSnapshot struct {
	Version  int             `yaml:"version"`
	Bookings []bookingRecord `yaml:"bookings"`
}

// FileStore persists the two collections to independent flat files.
// A failure on one file never affects the other, and there is no
// multi-file atomicity.
type FileStore struct {
	roomsPath    string
	bookingsPath string
	seed         []domain.Room
}

func NewFileStore(cfg config.StorageConfig, seed []domain.Room) *FileStore {
	return &FileStore{
		roomsPath:    cfg.RoomsFile,
		bookingsPath: cfg.BookingsFile,
		seed:         seed,
	}
}

// LoadRooms reads the persisted inventory. On any failure it reseeds the
// default catalog and immediately persists it so subsequent loads succeed.
func (s *FileStore) LoadRooms() []domain.Room {
	var snap roomsSnapshot
	err := readSnapshot(s.roomsPath, &snap)
	if err == nil {
		err = checkVersion(s.roomsPath, snap.Version)
	}
	if err != nil {
		logrus.Infof("Initializing new room data: %v", err)
		if saveErr := s.SaveRooms(s.seed); saveErr != nil {
			logrus.Warnf("Failed to persist seeded rooms: %v", saveErr)
		}
		out := make([]domain.Room, len(s.seed))
		copy(out, s.seed)
		return out
	}

	rooms := make([]domain.Room, 0, len(snap.Rooms))
	for _, rec := range snap.Rooms {
		rooms = append(rooms, domain.Room{
			Number:    rec.Number,
			Category:  domain.Category(rec.Category),
			Available: rec.Available,
		})
	}
	return rooms
}

// LoadBookings reads the persisted ledger. On any failure the ledger
// starts empty; bookings have no default data to reseed.
func (s *FileStore) LoadBookings() []domain.Booking {
	var snap bookingsSnapshot
	err := readSnapshot(s.bookingsPath, &snap)
	if err == nil {
		err = checkVersion(s.bookingsPath, snap.Version)
	}
	if err != nil {
		logrus.Infof("Starting with empty booking ledger: %v", err)
		return nil
	}

	bookings := make([]domain.Booking, 0, len(snap.Bookings))
	for _, rec := range snap.Bookings {
		bookings = append(bookings, domain.Booking{
			ID:            rec.ID,
			GuestName:     rec.GuestName,
			RoomNumber:    rec.RoomNumber,
			Category:      domain.Category(rec.Category),
			PaymentStatus: rec.PaymentStatus,
		})
	}
	return bookings
}

func (s *FileStore) SaveRooms(rooms []domain.Room) error {
	snap := roomsSnapshot{Version: snapshotVersion}
	for _, room := range rooms {
		snap.Rooms = append(snap.Rooms, roomRecord{
			Number:    room.Number,
			Category:  string(room.Category),
			Available: room.Available,
		})
	}
	return writeSnapshot(s.roomsPath, snap)
}

func (s *FileStore) SaveBookings(bookings []domain.Booking) error {
	snap := bookingsSnapshot{Version: snapshotVersion}
	for _, booking := range bookings {
		snap.Bookings = append(snap.Bookings, bookingRecord{
			ID:            booking.ID,
			GuestName:     booking.GuestName,
			RoomNumber:    booking.RoomNumber,
			Category:      string(booking.Category),
			PaymentStatus: booking.PaymentStatus,
		})
	}
	return writeSnapshot(s.bookingsPath, snap)
}

func readSnapshot(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func checkVersion(path string, version int) error {
	if version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d in %s", version, path)
	}
	return nil
}

func writeSnapshot(path string, snap any) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
