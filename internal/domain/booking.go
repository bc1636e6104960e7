package domain

// PaymentStatusPaid is the only payment status the system produces;
// there is no payment processing.
const PaymentStatusPaid = "Paid"

type Booking struct {
	ID            string
	GuestName     string
	RoomNumber    int
	Category      Category
	PaymentStatus string
}
