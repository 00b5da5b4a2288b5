package auth

// RegisterRequest is the payload for creating a customer account.
type RegisterRequest struct {
	FirstName string `json:"firstname" validate:"required,min=1,max=255"`
	LastName  string `json:"lastname" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Phone     string `json:"phone" validate:"required,min=1,max=20"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the payload for editing the caller's own profile.
type UpdateProfileRequest struct {
	FirstName string `json:"firstname" validate:"required,min=1,max=255"`
	LastName  string `json:"lastname" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=1,max=20"`
}
