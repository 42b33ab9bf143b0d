package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Role     string  `json:"role"`
	VendorID *string `json:"vendor_id,omitempty"`
	IsActive bool    `json:"is_active"`
}

type RegisterBuyerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterVendorRequest creates a user account and its vendor record in one
// step. The vendor starts unapproved.
type RegisterVendorRequest struct {
	Username      string  `json:"username" validate:"required,min=3"`
	Email         string  `json:"email" validate:"required,email"`
	FullName      string  `json:"full_name" validate:"required"`
	Password      string  `json:"password" validate:"required,min=8"`
	BusinessName  string  `json:"business_name" validate:"required"`
	ContactPerson string  `json:"contact_person" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	BusinessEmail string  `json:"business_email" validate:"required,email"`
	Address       string  `json:"address" validate:"required"`
	BusinessType  string  `json:"business_type"`
	Description   *string `json:"description"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin vendor buyer staff"`
	VendorID *string `json:"vendor_id"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin vendor buyer staff"`
}
