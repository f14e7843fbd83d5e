package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/auth"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// RegisterRequest is the body of a registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of a login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserStore is the persistence the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *database.User) error
	GetUserByEmail(ctx context.Context, email string) (*database.User, error)
	GetUserByUsername(ctx context.Context, username string) (*database.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*database.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService defines registration, login and current-user lookup
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context, userID string) (*database.User, error)
}

type authServiceImpl struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
	log    *logger.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenIssuer, log *logger.Logger) AuthService {
	return &authServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.With("component", "auth"),
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req RegisterRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)

	var v validation
	v.check(username != "", "Username is required")
	v.check(validEmail(email), "Please include a valid email")
	v.check(len(req.Password) >= minPasswordLength, "Please enter a password with 6 or more characters")
	if err := v.err(); err != nil {
		return "", err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", newValidationError("User already exists with this email")
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", fmt.Errorf("failed to look up email: %w", err)
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return "", newValidationError("Username is already taken")
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", fmt.Errorf("failed to look up username: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", err
	}

	user := &database.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicateEmail):
			return "", newValidationError("User already exists with this email")
		case errors.Is(err, database.ErrDuplicateUsername):
			return "", newValidationError("Username is already taken")
		}
		return "", err
	}

	s.log.Info("user registered", "user_id", user.ID)
	return s.tokens.Issue(user.ID.String())
}

func (s *authServiceImpl) Login(ctx context.Context, req LoginRequest) (string, error) {
	email := normalizeEmail(req.Email)

	var v validation
	v.check(validEmail(email), "Please include a valid email")
	v.check(req.Password != "", "Password is required")
	if err := v.err(); err != nil {
		return "", err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return s.tokens.Issue(user.ID.String())
}

func (s *authServiceImpl) Me(ctx context.Context, userID string) (*database.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.users.GetUserByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
