package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zvrva/hoteldesk/internal/domain"
	"github.com/zvrva/hoteldesk/internal/repository"
	"github.com/zvrva/hoteldesk/internal/service/booking"
	"github.com/zvrva/hoteldesk/internal/service/rooms"
	"github.com/zvrva/hoteldesk/internal/storage"
)

// Session is the interactive menu loop. It reads one line per iteration
// and dispatches on its literal value; the only way out is the exit
// option or end of input, both of which persist state first.
type Session struct {
	in         *bufio.Scanner
	out        io.Writer
	roomSvc    rooms.RoomUseCase
	bookingSvc booking.BookingUseCase
	roomRepo   repository.RoomRepository
	ledger     repository.BookingRepository
	store      storage.Store
}

func NewSession(
	in io.Reader,
	out io.Writer,
	roomSvc rooms.RoomUseCase,
	bookingSvc booking.BookingUseCase,
	roomRepo repository.RoomRepository,
	ledger repository.BookingRepository,
	store storage.Store,
) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		roomSvc:    roomSvc,
		bookingSvc: bookingSvc,
		roomRepo:   roomRepo,
		ledger:     ledger,
		store:      store,
	}
}

func (s *Session) Run() error {
	for {
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			// end of input behaves like exit; a broken reader is surfaced
			s.saveState()
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.viewAvailableRooms()
		case "2":
			s.bookRoom()
		case "3":
			s.cancelReservation()
		case "4":
			s.viewBookings()
		case "5":
			s.saveState()
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Hotel Reservation System ===")
	fmt.Fprintln(s.out, "1. View Available Rooms")
	fmt.Fprintln(s.out, "2. Book Room")
	fmt.Fprintln(s.out, "3. Cancel Reservation")
	fmt.Fprintln(s.out, "4. View Bookings")
	fmt.Fprintln(s.out, "5. Exit")
	fmt.Fprint(s.out, "Choose an option: ")
}

func (s *Session) viewAvailableRooms() {
	fmt.Fprint(s.out, "Enter room category (Standard/Deluxe/Suite or All): ")
	category, ok := s.readLine()
	if !ok {
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Available Rooms ---")
	available := s.roomSvc.ListAvailable(category)
	for _, room := range available {
		fmt.Fprintln(s.out, formatRoom(room))
	}
	if len(available) == 0 {
		fmt.Fprintln(s.out, "No available rooms for that category.")
	}
}

func (s *Session) bookRoom() {
	fmt.Fprint(s.out, "Enter your name: ")
	name, ok := s.readLine()
	if !ok {
		return
	}

	fmt.Fprint(s.out, "Enter room category (Standard/Deluxe/Suite): ")
	category, ok := s.readLine()
	if !ok {
		return
	}

	booked, err := s.bookingSvc.Book(name, category)
	if err != nil {
		if errors.Is(err, booking.ErrNoRoomAvailable) {
			fmt.Fprintf(s.out, "No available rooms in %s category.\n", category)
			return
		}
		fmt.Fprintf(s.out, "Booking failed: %v\n", err)
		return
	}

	fmt.Fprintln(s.out, "Booking successful!")
	fmt.Fprintln(s.out, formatBooking(*booked))
}

func (s *Session) cancelReservation() {
	fmt.Fprint(s.out, "Enter your name to cancel reservation: ")
	name, ok := s.readLine()
	if !ok {
		return
	}

	if _, err := s.bookingSvc.Cancel(name); err != nil {
		fmt.Fprintln(s.out, "No booking found for that name.")
		return
	}
	fmt.Fprintf(s.out, "Reservation canceled for %s\n", name)
}

func (s *Session) viewBookings() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- All Bookings ---")
	bookings := s.bookingSvc.List()
	for _, b := range bookings {
		fmt.Fprintln(s.out, formatBooking(b))
	}
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, "No current bookings.")
	}
}

// saveState persists both collections. Failures are reported as one-line
// messages and do not prevent termination; the two files are independent.
func (s *Session) saveState() {
	if err := s.store.SaveRooms(s.roomRepo.Snapshot()); err != nil {
		logrus.Errorf("Save rooms: %v", err)
		fmt.Fprintln(s.out, "Error saving room data.")
	}
	if err := s.store.SaveBookings(s.ledger.Snapshot()); err != nil {
		logrus.Errorf("Save bookings: %v", err)
		fmt.Fprintln(s.out, "Error saving booking data.")
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func formatRoom(room domain.Room) string {
	status := "Booked"
	if room.Available {
		status = "Available"
	}
	return fmt.Sprintf("Room %d (%s) - %s", room.Number, room.Category, status)
}

func formatBooking(b domain.Booking) string {
	return fmt.Sprintf("Guest: %s, Room: %d (%s), Payment: %s", b.GuestName, b.RoomNumber, b.Category, b.PaymentStatus)
}
