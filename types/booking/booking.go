package booking

// BookingCreateRequest represents the request payload for creating a booking.
// StartDate and EndDate accept ISO-like date strings; parsing and the
// end-after-start check happen in the scheduler before any store access.
type BookingCreateRequest struct {
	VenueID   uint   `json:"venueId" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=1,max=20"`
	Category  string `json:"category" validate:"required,min=1,max=100"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// BookingStatusUpdateRequest represents the request payload for an
// administrator's approve/reject decision.
type BookingStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
