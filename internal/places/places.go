package places

import (
	"context"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=places.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// KeywordSearch returns candidate places for a free-text query. Result
	// ordering is whatever the service returns; it is not re-ranked locally.
	KeywordSearch(ctx context.Context, keyword string) ([]domain.Place, error)
}
