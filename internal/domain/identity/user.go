package identity

import "context"

// User is the authenticated user profile as issued by the backend at login.
type User struct {
	DisplayName string      `json:"displayName"`
	Username    string      `json:"username"`
	Phone       string      `json:"phone"`
	CPF         string      `json:"cpf"`
	Authorities []Authority `json:"authorities"`
}

// Authority is a granted role.
type Authority struct {
	Authority string `json:"authority"`
}

// Credentials is the login request.
type Credentials struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Registration is the signup request.
type Registration struct {
	DisplayName string `json:"displayName" validate:"required,min=2,max=100"`
	Username    string `json:"username" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"required"`
	CPF         string `json:"cpf" validate:"required,len=11"`
}

// ProfileUpdate changes the editable profile fields.
type ProfileUpdate struct {
	DisplayName string `json:"displayName" validate:"required,min=2,max=100"`
	Phone       string `json:"phone" validate:"required"`
	Username    string `json:"username" validate:"required,email"`
}

// PasswordUpdate changes the account password.
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Session is an issued token plus the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Provider is the authentication surface of the store API. Token issuance
// and verification are backend concerns; the client only stores and forwards
// what it is given.
type Provider interface {
	Login(ctx context.Context, creds Credentials) (*Session, error)
	Register(ctx context.Context, reg Registration) error
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, upd PasswordUpdate) error
}

// SessionStore persists the session across app restarts.
type SessionStore interface {
	SaveSession(s Session) error
	// LoadSession returns nil with no error when no session is stored.
	LoadSession() (*Session, error)
	ClearSession() error
}
