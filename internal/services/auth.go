package services

import (
	"errors"
	"fmt"
	"time"

	"novelhub/internal/db"
	"novelhub/internal/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService keeps user credentials. Passwords are stored and compared as
// plain strings.
type AuthService struct {
	store *db.Store
	now   func() time.Time
}

func NewAuthService(store *db.Store) *AuthService {
	return &AuthService{store: store, now: clock}
}

// Register adds a user unless the email is already taken (exact,
// case-sensitive match).
func (s *AuthService) Register(username, email, password string) (models.UserProfile, error) {
	var created models.User
	err := s.store.Users.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, ErrUserExists
			}
		}
		created = models.User{
			ID:        fmt.Sprintf("user%d", len(users)+1),
			Username:  username,
			Email:     email,
			Password:  password,
			CreatedAt: models.NewTimestamp(s.now()),
		}
		return append(users, created), nil
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return models.UserProfile{}, err
		}
		return models.UserProfile{}, fmt.Errorf("register user: %w", err)
	}
	return created.Profile(), nil
}

// Authenticate returns the user whose email and password both match exactly.
// An unknown email and a wrong password fail the same way.
func (s *AuthService) Authenticate(email, password string) (models.UserProfile, error) {
	users, err := s.store.Users.Load()
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("authenticate: %w", err)
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u.Profile(), nil
		}
	}
	return models.UserProfile{}, ErrInvalidCredentials
}
