package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUsernameTaken      = fmt.Errorf("%w: username taken", ErrUserAlreadyExists)
	ErrEmailTaken         = fmt.Errorf("%w: email taken", ErrUserAlreadyExists)
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	RecordLogin(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and account removal.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register validates and stores a new user with a bcrypt password hash.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	username = strings.TrimSpace(username)
	email = models.NormalizeEmail(email)

	if !models.ValidateUsername(username) {
		return ErrInvalidUsername
	}
	if !models.ValidateEmail(email) {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrInvalidPassword
	}

	if err := svc.ensureFree(ctx, func(ctx context.Context) (*models.UserDB, error) {
		return svc.reader.GetByEmail(ctx, email)
	}, ErrEmailTaken); err != nil {
		return err
	}
	if err := svc.ensureFree(ctx, func(ctx context.Context) (*models.UserDB, error) {
		return svc.reader.GetByUsername(ctx, username)
	}, ErrUsernameTaken); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			logger.Log.Warnw("user created concurrently", "username", username, "email", email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID, "username", username)
	return nil
}

func (svc *AuthService) ensureFree(ctx context.Context, lookup func(context.Context) (*models.UserDB, error), taken error) error {
	_, err := lookup(ctx)
	switch {
	case err == nil:
		logger.Log.Warnw("user already exists", "reason", taken)
		return taken
	case errors.Is(err, common.ErrNotFound):
		return nil
	default:
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
}

// Login authenticates by username or email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	login = strings.TrimSpace(login)
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &login, &login)
	if errors.Is(err, common.ErrNotFound) {
		logger.Log.Warnw("user does not exist", "login", login)
		return "", ErrUserDoesNotExist
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "login", login)
		return "", ErrInvalidCredentials
	}

	if err := svc.writer.RecordLogin(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to record login", "user_id", user.UserID, "err", err)
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetUser returns the current state of a user.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, ErrUserDoesNotExist
	}
	return user, err
}

// DeleteAccount removes the user together with all journal entries.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := svc.writer.Delete(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return ErrUserDoesNotExist
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	logger.Log.Infow("account deleted", "user_id", userID)
	return nil
}
