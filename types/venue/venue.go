package venue

// VenueRequest represents the request payload for creating or updating a
// venue. Image is an optional reference (path or URL); upload mechanics live
// outside this service.
type VenueRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
	Status      string `json:"status" validate:"required,oneof=available occupied maintenance unavailable"`
	Image       string `json:"image" validate:"omitempty,max=2048"`
}

// VenueResponse is the listing shape with the creator's name echoed.
type VenueResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Image       *string `json:"image"`
	CreatorName string  `json:"creator_name"`
	CreatedBy   uint    `json:"created_by"`
}
