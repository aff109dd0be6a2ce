package placesimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/places"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/fx"
)

const keywordSearchPath = "/v2/local/search/keyword.json"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type PlacesImpl struct {
	baseURL string
	restKey string
	http    *http.Client
	logger  logger.Logger
}

func New(opts Opts) *PlacesImpl {
	return &PlacesImpl{
		baseURL: opts.Config.Kakao.BaseURL,
		restKey: opts.Config.Kakao.RESTKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  opts.Logger.WithComponent("KakaoPlaces"),
	}
}

var _ places.Client = (*PlacesImpl)(nil)

type keywordSearchResponse struct {
	Documents []domain.Place `json:"documents"`
}

func (p *PlacesImpl) KeywordSearch(ctx context.Context, keyword string) ([]domain.Place, error) {
	endpoint := p.baseURL + keywordSearchPath + "?query=" + url.QueryEscape(keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword search request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+p.restKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, "place search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.logger.Error("Keyword search returned non-OK status",
			"status", resp.StatusCode,
			"body", string(body))
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("place search returned status %d", resp.StatusCode)
	}

	var parsed keywordSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode keyword search response: %w", err)
	}

	p.logger.Debug("Keyword search completed", "keyword", keyword, "results", len(parsed.Documents))
	return parsed.Documents, nil
}
