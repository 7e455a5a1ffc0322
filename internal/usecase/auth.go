package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aibekm/item-service/internal/auth"
	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/email"
	"github.com/aibekm/item-service/internal/repository"
)

type AuthUsecase struct {
	users  repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService, sender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  sender,
		logger: logger.With("component", "auth_usecase"),
	}
}

type SignupInput struct {
	Email         string
	Password      string
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
}

// Signup hashes the password and stores the user. Email uniqueness is
// enforced by the users table, so a duplicate surfaces here as
// domain.ErrDuplicateEmail no matter how the race went.
func (u *AuthUsecase) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:         strings.ToLower(input.Email),
		PasswordHash:  hash,
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		ContactNumber: input.ContactNumber,
		UserType:      input.UserType,
		HomeNumber:    input.HomeNumber,
		AddressLine1:  input.AddressLine1,
		AddressLine2:  input.AddressLine2,
		PinCode:       input.PinCode,
		City:          input.City,
		State:         input.State,
		Expertise:     input.Expertise,
		Experience:    input.Experience,
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The account already exists at this point; a failed welcome email
	// must not fail the signup.
	subject := "Welcome"
	body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", created.FirstName)
	if err := u.email.Send(ctx, created.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "error", err)
	}

	return created, nil
}

// Login verifies the credentials and returns a signed bearer token.
// Unknown email and wrong password are deliberately indistinguishable.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
