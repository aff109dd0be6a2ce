package usersimpl

import (
	"context"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/users"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Capsy  capsy.Client
	Logger logger.Logger
}

type UsersImpl struct {
	capsy  capsy.Client
	logger logger.Logger
}

func New(opts Opts) *UsersImpl {
	return &UsersImpl{
		capsy:  opts.Capsy,
		logger: opts.Logger.WithComponent("UserSearch"),
	}
}

var _ users.Client = (*UsersImpl)(nil)

// Search fetches the full account list and filters it locally: whitespace is
// stripped out of the keyword and matching is a case-insensitive containment
// check on full name and username. A blank keyword matches nothing.
func (u *UsersImpl) Search(ctx context.Context, keyword string) ([]domain.User, error) {
	needle := strings.ToLower(stripWhitespace(keyword))
	if needle == "" {
		return nil, nil
	}

	all, err := u.capsy.GetUsers(ctx)
	if err != nil {
		u.logger.Error("Failed to fetch users", "error", err)
		return nil, err
	}

	var matched []domain.User
	for _, user := range all {
		if strings.Contains(strings.ToLower(user.FullName), needle) ||
			strings.Contains(strings.ToLower(user.Username), needle) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
