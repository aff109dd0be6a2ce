package capsy

import (
	"context"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

// PostRef is the backend's acknowledgement of a created or updated post.
type PostRef struct {
	ID string `json:"_id"`
}

// PostDetail carries a stored post. Title holds the serialized PostPayload
// JSON; that overloading is the backend's persistence convention and is
// decoded by the editor, never here.
type PostDetail struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// CreatePostRequest is sent as a multipart form: the payload JSON under
// "title" and the channel under "channelId".
type CreatePostRequest struct {
	PayloadJSON string
	ChannelID   string
}

type UpdatePostRequest struct {
	PostID    string `json:"postId"`
	Title     string `json:"title"`
	ChannelID string `json:"channelId"`
}

//go:generate go run go.uber.org/mock/mockgen -source=capsy.go -destination=mocks/mock.go -package=mocks
type Client interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*PostRef, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*PostRef, error)
	GetPostDetail(ctx context.Context, postID string) (*PostDetail, error)

	GetUsers(ctx context.Context) ([]domain.User, error)
	UpdatePassword(ctx context.Context, password string) error
}
