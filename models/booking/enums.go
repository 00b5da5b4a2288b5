package booking

// BookingStatus is the booking lifecycle state. A booking starts pending and
// is moved to approved or rejected by an administrator action.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision returns true for statuses an administrator may assign.
func (bs BookingStatus) IsDecision() bool {
	return bs == BookingStatusApproved || bs == BookingStatusRejected
}

// BlocksVenue returns true if a booking in this status reserves the venue's
// interval against other bookings.
func (bs BookingStatus) BlocksVenue() bool {
	return bs != BookingStatusRejected
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusApproved,
		BookingStatusRejected,
	}
}
