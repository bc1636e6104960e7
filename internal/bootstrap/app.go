package bootstrap

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zvrva/hoteldesk/config"
	"github.com/zvrva/hoteldesk/internal/repository"
	"github.com/zvrva/hoteldesk/internal/service/booking"
	"github.com/zvrva/hoteldesk/internal/service/rooms"
	"github.com/zvrva/hoteldesk/internal/session"
	"github.com/zvrva/hoteldesk/internal/storage"
)

// Run wires the store, repositories and services, loads persisted state,
// and blocks in the interactive session until the user exits.
func Run(cfg *config.Config, in io.Reader, out io.Writer) error {
	seed := rooms.SeedCatalog(cfg.Catalog)
	store := storage.NewFileStore(cfg.Storage, seed)

	roomRepo := repository.NewRoomRepository()
	roomRepo.Replace(store.LoadRooms())

	bookingRepo := repository.NewBookingRepository()
	bookingRepo.Replace(store.LoadBookings())

	logrus.Debugf("Loaded %d rooms and %d bookings", len(roomRepo.List()), len(bookingRepo.List()))

	roomSvc := rooms.NewRoomService(roomRepo)
	bookingSvc := booking.NewBookingService(roomRepo, bookingRepo)

	sess := session.NewSession(in, out, roomSvc, bookingSvc, roomRepo, bookingRepo, store)
	return sess.Run()
}
