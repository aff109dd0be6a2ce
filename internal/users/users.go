package users

import (
	"context"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

type Client interface {
	// Search matches accounts against a keyword by full name or username.
	Search(ctx context.Context, keyword string) ([]domain.User, error)
}
