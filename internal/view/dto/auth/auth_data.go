package auth

// LoginData is the view model for the login form. Username is pre-filled
// after a failed attempt.
type LoginData struct {
	Username string
}

// RegisterData is the view model for the registration form.
type RegisterData struct {
	Username string
	Email    string
}
