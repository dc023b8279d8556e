package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/user-admin/internal/domain"
)

const (
	maxNameLength  = 50
	maxEmailLength = 100
	// bcrypt.GenerateFromPassword rejects longer input.
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9]+([._+-][a-zA-Z0-9]+)*@[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*(\.[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*)*\.[a-zA-Z]{2,}$`,
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Age      int
	Password string
	IsAdmin  bool
}

// UserService implements the admin operations over the user table.
type UserService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// List returns users whose name or email contains search, or every user when
// search is blank.
func (s *UserService) List(ctx context.Context, search string) ([]domain.User, error) {
	users, err := s.users.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create validates input, hashes the password and stores a new user.
// Duplicate emails are rejected by the store's unique constraint.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateProfile(in.Name, in.Email, in.Age); err != nil {
		return 0, err
	}
	if in.Password == "" {
		return 0, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if len(in.Password) > maxPasswordBytes {
		return 0, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrInvalidInput, maxPasswordBytes)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Age:          in.Age,
		IsAdmin:      in.IsAdmin,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// Update replaces a user's profile fields. The password is never touched.
func (s *UserService) Update(ctx context.Context, id int64, update domain.UserUpdate) error {
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)

	if err := validateProfile(update.Name, update.Email, update.Age); err != nil {
		return err
	}
	if err := s.users.Update(ctx, id, update); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// SetAdmin promotes a user to admin. There is no inverse operation.
func (s *UserService) SetAdmin(ctx context.Context, id int64) error {
	if err := s.users.SetAdmin(ctx, id); err != nil {
		return fmt.Errorf("set admin %d: %w", id, err)
	}
	return nil
}

// defaultUsers are inserted into an empty table on first start.
var defaultUsers = []CreateUserInput{
	{Name: "Jean", Email: "jean.dupont@yahoo.com", Age: 50, Password: "1234"},
	{Name: "Alice", Email: "alice.marin@yahoo.com", Age: 25, Password: "9876", IsAdmin: true},
	{Name: "Gregoire", Email: "gregoire.lefeve@yahoo.com", Age: 40, Password: "4321"},
}

// SeedDefaults inserts the default users when the table is empty. It is a
// no-op once any user exists.
func (s *UserService) SeedDefaults(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		slog.Debug("users present, skipping seed", "count", count)
		return nil
	}

	for _, u := range defaultUsers {
		id, err := s.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("seed %s: %w", u.Email, err)
		}
		slog.Info("default user seeded", "id", id, "email", u.Email, "admin", u.IsAdmin)
	}
	return nil
}

func validateProfile(name, email string, age int) error {
	if name == "" || email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrInvalidInput, maxNameLength)
	}
	if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if age <= domain.MinAge {
		return fmt.Errorf("%w: age must be greater than %d", domain.ErrInvalidInput, domain.MinAge)
	}
	return nil
}
