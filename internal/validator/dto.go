package validator

// RegisterRequest represents the request structure for account registration.
// Role is restricted to self-assignable roles; admin is never accepted from
// a client.
type RegisterRequest struct {
	FullName string  `json:"fullName" validate:"required,full_name"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=student instructor"`
	Headline *string `json:"headline" validate:"omitempty,profile_field"`
	School   *string `json:"school" validate:"omitempty,profile_field"`
}

// LoginRequest represents the request structure for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateProfileRequest represents the partial profile update. Only these
// three fields are mutable; nil means "leave unchanged".
type UpdateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,full_name"`
	Headline *string `json:"headline" validate:"omitempty,profile_field"`
	School   *string `json:"school" validate:"omitempty,profile_field"`
}
