package domain

import (
	"errors"
	"log/slog"
	"time"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FirstName     string
	MiddleName    *string
	LastName      string
	ContactNumber string
	UserType      string
	HomeNumber    string
	AddressLine1  string
	AddressLine2  *string
	PinCode       string
	City          string
	State         string
	Expertise     *string
	Experience    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LogValue keeps the password hash out of log output.
func (u *User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", u.ID),
		slog.String("email", u.Email),
	)
}
