package domain

import (
	"context"
	"time"
)

// MinAge is the exclusive lower bound for a user's age.
const MinAge = 18

// User represents a row of the user table. PasswordHash never leaves the
// service layer; handlers convert users to DTOs before responding.
type User struct {
	ID           int64
	Name         string
	Email        string
	Age          int
	IsAdmin      bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the mutable fields of a user. A nil IsAdmin keeps the
// stored flag.
type UserUpdate struct {
	Name    string
	Email   string
	Age     int
	IsAdmin *bool
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns users whose name or email contains search, ignoring case.
	// An empty search returns every user. Results are ordered by ID.
	List(ctx context.Context, search string) ([]User, error)
	Update(ctx context.Context, id int64, update UserUpdate) error
	Delete(ctx context.Context, id int64) error
	SetAdmin(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
