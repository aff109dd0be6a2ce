package capsyimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type CapsyImpl struct {
	baseURL string
	token   string
	http    *http.Client
	logger  logger.Logger
}

func New(opts Opts) *CapsyImpl {
	timeout := time.Duration(opts.Config.Capsy.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CapsyImpl{
		baseURL: opts.Config.Capsy.BaseURL,
		token:   opts.Config.Capsy.AccessToken,
		http:    &http.Client{Timeout: timeout},
		logger:  opts.Logger.WithComponent("CapsyAPI"),
	}
}

var _ capsy.Client = (*CapsyImpl)(nil)

// CreatePost submits a new post as a multipart form, mirroring what the web
// client sends: the serialized payload under "title" and the channel id.
func (c *CapsyImpl) CreatePost(ctx context.Context, req capsy.CreatePostRequest) (*capsy.PostRef, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("title", req.PayloadJSON); err != nil {
		return nil, fmt.Errorf("failed to write title field: %w", err)
	}
	if err := form.WriteField("channelId", req.ChannelID); err != nil {
		return nil, fmt.Errorf("failed to write channelId field: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	var ref capsy.PostRef
	if err := c.do(ctx, http.MethodPost, "/posts/create", form.FormDataContentType(), &body, &ref); err != nil {
		return nil, err
	}

	c.logger.Info("Created post", "postID", ref.ID, "channelID", req.ChannelID)
	return &ref, nil
}

func (c *CapsyImpl) UpdatePost(ctx context.Context, req capsy.UpdatePostRequest) (*capsy.PostRef, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update request: %w", err)
	}

	var ref capsy.PostRef
	if err := c.do(ctx, http.MethodPut, "/posts/update", "application/json", bytes.NewReader(raw), &ref); err != nil {
		return nil, err
	}

	c.logger.Info("Updated post", "postID", ref.ID)
	return &ref, nil
}

func (c *CapsyImpl) GetPostDetail(ctx context.Context, postID string) (*capsy.PostDetail, error) {
	var detail capsy.PostDetail
	if err := c.do(ctx, http.MethodGet, "/posts/"+postID, "", nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *CapsyImpl) GetUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users/get-users", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *CapsyImpl) UpdatePassword(ctx context.Context, password string) error {
	raw, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("failed to encode password request: %w", err)
	}
	return c.do(ctx, http.MethodPut, "/settings/update-password", "application/json", bytes.NewReader(raw), nil)
}

// do performs one API round trip and decodes the JSON response into out when
// out is non-nil.
func (c *CapsyImpl) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(err, "a network error occurred, please try again shortly")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("API request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(msg))
		switch resp.StatusCode {
		case http.StatusNotFound:
			return apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("%s %s", method, path))
		case http.StatusUnauthorized:
			return apperrors.ErrUnauthorized
		default:
			return fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
