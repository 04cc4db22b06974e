package entity

// User is the aggregate root for the user domain.
//
// Passwords are stored exactly as submitted; this service has no credential
// handling and the field round-trips through the API like any other.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}
