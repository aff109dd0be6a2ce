package accountimpl

import (
	"context"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/account"
	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/fx"
)

const specials = "!@#$%^&*"

type Opts struct {
	fx.In

	Capsy  capsy.Client
	Logger logger.Logger
}

type AccountImpl struct {
	capsy  capsy.Client
	logger logger.Logger
}

func New(opts Opts) *AccountImpl {
	return &AccountImpl{
		capsy:  opts.Capsy,
		logger: opts.Logger.WithComponent("Account"),
	}
}

var _ account.Client = (*AccountImpl)(nil)

func (a *AccountImpl) ChangePassword(ctx context.Context, password, confirm string) error {
	if !ValidPassword(password) {
		return account.ErrPasswordPolicy
	}
	if password != confirm {
		return account.ErrPasswordMismatch
	}

	if err := a.capsy.UpdatePassword(ctx, password); err != nil {
		a.logger.Error("Password update failed", "error", err)
		return err
	}

	a.logger.Info("Password updated")
	return nil
}

// ValidPassword enforces the signup password policy: 8-16 characters, at
// least one lower case letter, one upper case letter, one digit, and one of
// !@#$%^&*, with no other characters allowed. Spelled out as class checks
// because RE2 has no lookahead.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
