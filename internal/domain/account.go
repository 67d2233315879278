package domain

// Credentials are submitted by the login form. They are discarded once the
// login call returns.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegistrationRequest is submitted by the register form. Every input binds to
// its own field.
type RegistrationRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Account is the user summary the grading service returns with a token.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is the payload of a successful login call.
type LoginResponse struct {
	Token string   `json:"token"`
	User  *Account `json:"user,omitempty"`
}
