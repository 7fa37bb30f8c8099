package models

// Role is the closed set of user roles. Values are ordered so that a
// numeric comparison expresses the access hierarchy: Member < Manager < Admin.
type Role int

// User role constants
const (
	RoleMember  Role = 1
	RoleManager Role = 2
	RoleAdmin   Role = 3
)

// Valid reports whether the role is one of the known constants
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleManager || r == RoleAdmin
}

// String returns the human-readable role name
func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// User represents a user in the system. The CIN (national identity string)
// is the primary key.
type User struct {
	CIN          string `json:"cin"`
	Nom          string `json:"nom"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
	Poste        string `json:"poste,omitempty"`
	NumTele      string `json:"num_tele,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// PublicUser is the subset of user fields embedded in login responses and tokens
type PublicUser struct {
	CIN  string `json:"cin"`
	Nom  string `json:"nom"`
	Role Role   `json:"role"`
}

// Public returns the login-response view of the user
func (u *User) Public() PublicUser {
	return PublicUser{CIN: u.CIN, Nom: u.Nom, Role: u.Role}
}

// LoginRequest represents a login request
type LoginRequest struct {
	CIN      string `json:"cin" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// CreateUserRequest represents an admin request to create a user
type CreateUserRequest struct {
	CIN      string `json:"cin" validate:"required"`
	Nom      string `json:"nom" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required"`
	Poste    string `json:"poste"`
	NumTele  string `json:"num_tele"`
}

// UpdateUserRequest represents an admin request to update a user.
// Password and image are not updatable here; users change those themselves
// through the profile endpoint.
type UpdateUserRequest struct {
	Nom     string `json:"nom" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Role    Role   `json:"role" validate:"required"`
	Poste   string `json:"poste"`
	NumTele string `json:"num_tele"`
}

// ProfileUser is the view of the user returned after a profile update
type ProfileUser struct {
	CIN      string `json:"cin"`
	Nom      string `json:"nom"`
	ImageURL string `json:"imageUrl,omitempty"`
}
