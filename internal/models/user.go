package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
)

// StorageKeyUsers is the collection key the user records live under.
const StorageKeyUsers = "users"

// User is a registered account. Passwords are stored and compared in plain
// text; the persistence layer stands in for a demo backend and makes no
// attempt at credential security.
type User struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Role      UserRole `json:"role"`
}

// WithoutPassword returns a copy safe to hand back to callers.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
