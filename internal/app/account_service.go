package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Account field limits.
const (
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// errBadCredentials is returned for unknown users and wrong passwords alike.
var errBadCredentials = fmt.Errorf("%w: invalid username or password", domain.ErrUnauthenticated)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService.
type AccountService struct {
	users  ports.UserRepository
	tokens *auth.Tokens
	logger *slog.Logger
}

// NewAccountService creates an AccountService. A nil logger discards output.
func NewAccountService(users ports.UserRepository, tokens *auth.Tokens, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{users: users, tokens: tokens, logger: logger}
}

// Register validates the credentials and creates an account with a bcrypt
// password hash.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.ErrorContext(ctx, "failed to register user",
				slog.String("operation", "Register"),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))
	return nil
}

// Login verifies the credentials and issues a token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return "", errBadCredentials
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up user",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.WarnContext(ctx, "login rejected", slog.Int64("user_id", user.ID))
		return "", errBadCredentials
	}

	return s.tokens.Issue(auth.Principal{UserID: user.ID, Username: user.Username})
}

func validateCredentials(username, password string) error {
	fields := make(map[string]string)

	switch {
	case username == "":
		fields["username"] = domain.MsgRequired
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		fields["username"] = fmt.Sprintf("must be at most %d characters", MaxUsernameLength)
	}
	switch {
	case password == "":
		fields["password"] = domain.MsgRequired
	case utf8.RuneCountInString(password) < MinPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
