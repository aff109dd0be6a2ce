// Package editor defines the orchestrator that owns a post draft from first
// keystroke to a saved post on the backend.
package editor

import (
	"context"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
)

// Submission precondition failures, surfaced as notices. Each aborts the
// save before any request is sent.
var (
	ErrTitleRequired = apperrors.New("please enter a title")
	ErrBodyRequired  = apperrors.New("please enter some content")
	ErrMediaRequired = apperrors.New("a time capsule needs at least one attachment")
	ErrDateRequired  = apperrors.New("a time capsule needs a reveal date")
	ErrSaveInFlight  = apperrors.New("a save is already in progress")
)

//go:generate go run go.uber.org/mock/mockgen -source=editor.go -destination=mocks/mock.go -package=mocks
type Client interface {
	Draft() domain.Draft

	SetTitle(title string)
	SetBody(body string)
	SetMode(mode domain.Mode)
	SetRevealDate(rd domain.RevealDate)
	SetLocation(loc domain.Location)

	// AttachFiles encodes and size-checks each file up front; the first
	// violation rejects the whole batch.
	AttachFiles(ctx context.Context, paths ...string) error
	RemoveMedia(index int)

	// Load pre-populates the draft from an existing post for editing. On
	// failure the draft is left untouched.
	Load(ctx context.Context, postID string) error

	// Save validates the draft, assembles the payload, and issues a create
	// or update request. The draft survives any failure so the user can
	// correct and retry.
	Save(ctx context.Context) (*capsy.PostRef, error)

	// Reset discards the draft, returning the editor to its initial state.
	Reset()
}
