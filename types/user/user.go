package user

// UpdateCustomerRequest is the admin payload for editing a customer account.
type UpdateCustomerRequest struct {
	FirstName string `json:"firstname" validate:"required,min=1,max=255"`
	LastName  string `json:"lastname" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=1,max=20"`
}
