package capsule

import (
	"context"
	"errors"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("capsule already recorded")
	ErrNotFound      = errors.New("capsule not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=capsule.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Create records a capsule this client published.
	Create(ctx context.Context, c domain.Capsule) error

	// ListDue returns capsules whose reveal time has passed and that have
	// not been announced yet, oldest reveal first.
	ListDue(ctx context.Context, now time.Time) ([]*domain.Capsule, error)

	// MarkNotified flags a capsule as announced.
	MarkNotified(ctx context.Context, id int64) error
}
