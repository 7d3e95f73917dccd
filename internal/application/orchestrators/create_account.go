package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gymdesk/internal/domain/account"
)

// AccountStore defines the user persistence interface for registration.
type AccountStore interface {
	Users(ctx context.Context) []account.User
	SaveUsers(ctx context.Context, users []account.User) error
	ByEmail(ctx context.Context, email string) (account.User, bool)
}

// ErrEmailTaken is returned when the email already has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// CreateAccountInput carries input for account registration.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateAccountDeps holds dependencies for CreateAccount.
type CreateAccountDeps struct {
	AccountStore AccountStore
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteCreateAccount registers a new user with a bcrypt-hashed password.
// PRE: Email is unused; Password meets the minimum length
// POST: User is appended to the users collection
func ExecuteCreateAccount(ctx context.Context, input CreateAccountInput, deps CreateAccountDeps) (account.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if _, exists := deps.AccountStore.ByEmail(ctx, email); exists {
		return account.User{}, ErrEmailTaken
	}

	user := account.User{
		ID:        deps.GenerateID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Role:      input.Role,
		CreatedAt: deps.Now(),
	}
	if err := user.Validate(); err != nil {
		return account.User{}, err
	}
	if err := user.SetPassword(input.Password); err != nil {
		return account.User{}, err
	}

	users := append(deps.AccountStore.Users(ctx), user)
	if err := deps.AccountStore.SaveUsers(ctx, users); err != nil {
		return account.User{}, err
	}

	slog.Info("account_event", "event", "account_created", "user_id", user.ID, "role", user.Role)
	return user, nil
}
