package services

import (
	"errors"
	"fmt"
	"log/slog"

	"digital-weather/models"

	"golang.org/x/crypto/bcrypt"
)

const RegisteredMessage = "User registered successfully"

// AuthService handles registration and password checks. Passwords are
// stored as bcrypt hashes and never compared in plain text.
type AuthService struct {
	repo      UserRepository
	cost      int
	dummyHash []byte
	logger    *slog.Logger
}

// NewAuthService creates a new auth service. An out-of-range cost falls
// back to bcrypt.DefaultCost.
func NewAuthService(repo UserRepository, cost int, logger *slog.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// Unknown usernames are checked against this hash so that a miss takes
	// as long as a wrong password
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)

	return &AuthService{
		repo:      repo,
		cost:      cost,
		dummyHash: dummyHash,
		logger:    logger,
	}
}

// Register hashes the password and stores a new user
func (as *AuthService) Register(username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), as.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	id, err := as.repo.CreateUser(username, string(hash))
	if err != nil {
		return "", err
	}

	as.logger.Info("user registered", "user_id", id, "username", username)
	return RegisteredMessage, nil
}

// Authenticate checks a username/password pair and tells the two failure
// causes apart (ErrUserNotFound, ErrWrongPassword). Use Login at the
// boundary so the cause is not revealed to the caller.
func (as *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := as.repo.GetUserByUsername(username)
	if errors.Is(err, ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(as.dummyHash, []byte(password))
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("comparing password hash: %w", err)
	}

	return user, nil
}

// Login reports true on a match. Unknown users and wrong passwords both
// yield false with ErrInvalidCredentials; the real cause goes to the
// audit log only.
func (as *AuthService) Login(username, password string) (bool, error) {
	user, err := as.Authenticate(username, password)
	switch {
	case err == nil:
		as.logger.Info("login succeeded", "user_id", user.ID, "username", username)
		return true, nil
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
		as.logger.Warn("login failed", "username", username, "reason", err.Error())
		return false, ErrInvalidCredentials
	default:
		return false, err
	}
}

// ListUsers returns all registered users without password hashes
func (as *AuthService) ListUsers() ([]models.User, error) {
	return as.repo.ListUsers()
}
