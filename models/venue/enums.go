package venue

// VenueStatus tracks whether a venue can take new bookings.
type VenueStatus string

const (
	VenueStatusAvailable   VenueStatus = "available"
	VenueStatusOccupied    VenueStatus = "occupied"
	VenueStatusMaintenance VenueStatus = "maintenance"
	VenueStatusUnavailable VenueStatus = "unavailable"
)

// Helper methods for VenueStatus
func (vs VenueStatus) String() string {
	return string(vs)
}

func (vs VenueStatus) IsValid() bool {
	switch vs {
	case VenueStatusAvailable, VenueStatusOccupied, VenueStatusMaintenance, VenueStatusUnavailable:
		return true
	default:
		return false
	}
}

// CanBeBooked returns true if new bookings may target the venue.
func (vs VenueStatus) CanBeBooked() bool {
	return vs == VenueStatusAvailable
}

// GetAllVenueStatuses returns all valid venue statuses
func GetAllVenueStatuses() []VenueStatus {
	return []VenueStatus{
		VenueStatusAvailable,
		VenueStatusOccupied,
		VenueStatusMaintenance,
		VenueStatusUnavailable,
	}
}
