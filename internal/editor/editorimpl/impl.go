package editorimpl

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/editor"
	"github.com/capsy-labs/capsy-companion/internal/media"
	"github.com/capsy-labs/capsy-companion/internal/repositories/capsule"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Capsy    capsy.Client
	Media    media.Preparer
	Capsules capsule.Repository `optional:"true"`
	Logger   logger.Logger
	Config   *config.Config
}

type EditorImpl struct {
	capsy    capsy.Client
	media    media.Preparer
	capsules capsule.Repository
	logger   logger.Logger
	config   *config.Config

	draft   domain.Draft
	editing bool
	postID  string
	saving  atomic.Bool
}

func New(opts Opts) *EditorImpl {
	return &EditorImpl{
		capsy:    opts.Capsy,
		media:    opts.Media,
		capsules: opts.Capsules,
		logger:   opts.Logger.WithComponent("Editor"),
		config:   opts.Config,
		draft:    domain.Draft{Mode: domain.ModeGeneral},
	}
}

var _ editor.Client = (*EditorImpl)(nil)

func (e *EditorImpl) Draft() domain.Draft { return e.draft }

func (e *EditorImpl) SetTitle(title string) { e.draft.Title = title }
func (e *EditorImpl) SetBody(body string)   { e.draft.Body = body }
func (e *EditorImpl) SetMode(mode domain.Mode) {
	e.draft.Mode = mode
}

func (e *EditorImpl) SetRevealDate(rd domain.RevealDate) {
	e.draft.RevealDate = rd
}

func (e *EditorImpl) SetLocation(loc domain.Location) {
	e.draft.Location = &loc
}

func (e *EditorImpl) AttachFiles(ctx context.Context, paths ...string) error {
	staged := make([]domain.MediaItem, 0, len(paths))

	for _, path := range paths {
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return apperrors.Wrap(err, "something went wrong while processing the file, please try again")
		}

		item := domain.MediaItem{
			Name: filepath.Base(path),
			Path: path,
			MIME: mt.String(),
		}

		encoded, err := e.encode(ctx, item)
		if err != nil {
			return apperrors.Wrap(err, "something went wrong while processing the file, please try again")
		}
		if err := e.media.ValidateSize(encoded); err != nil {
			return err
		}

		staged = append(staged, item)
	}

	e.draft.Media = append(e.draft.Media, staged...)
	return nil
}

func (e *EditorImpl) RemoveMedia(index int) {
	if index < 0 || index >= len(e.draft.Media) {
		return
	}
	e.draft.Media = append(e.draft.Media[:index], e.draft.Media[index+1:]...)
}

func (e *EditorImpl) Load(ctx context.Context, postID string) error {
	detail, err := e.capsy.GetPostDetail(ctx, postID)
	if err != nil {
		e.logger.Error("Failed to load post for editing", "postID", postID, "error", err)
		return apperrors.Wrap(err, "failed to load the post")
	}

	payload, err := decodePayload(detail.Title)
	if err != nil {
		e.logger.Error("Post carried an undecodable payload", "postID", postID, "error", err)
		return apperrors.Wrap(err, "failed to load the post")
	}

	draft := domain.Draft{
		Title: payload.Title,
		Body:  unescapeNewlines(payload.Content),
		Mode:  domain.ModeGeneral,
	}

	if payload.CloseAt != "" {
		if rd, ok := e.revealDateFrom(payload.CloseAt); ok {
			draft.RevealDate = rd
			draft.Mode = domain.ModeTimeCapsule
		} else {
			e.logger.Warn("Ignoring unparseable closeAt", "postID", postID, "closeAt", payload.CloseAt)
		}
	}

	// Stored media comes back as encoded strings; restore each as a media
	// item so later handling matches freshly attached files.
	for i, encoded := range payload.Image {
		draft.Media = append(draft.Media, restoredItem(i, encoded))
	}
	if len(payload.Image) == 0 && detail.Image != "" {
		draft.Media = append(draft.Media, restoredItem(0, detail.Image))
	}

	if payload.CapsuleLocation != nil {
		loc := domain.Location{Name: *payload.CapsuleLocation}
		if payload.Address != nil {
			loc.Address = *payload.Address
		}
		if payload.Latitude != nil {
			loc.Latitude = *payload.Latitude
		}
		if payload.Longitude != nil {
			loc.Longitude = *payload.Longitude
		}
		draft.Location = &loc
	}

	e.draft = draft
	e.editing = true
	e.postID = postID
	e.logger.Info("Loaded post for editing", "postID", postID, "mode", draft.Mode)
	return nil
}

func (e *EditorImpl) Save(ctx context.Context) (*capsy.PostRef, error) {
	if !e.saving.CompareAndSwap(false, true) {
		return nil, editor.ErrSaveInFlight
	}
	defer e.saving.Store(false)

	if err := e.checkPreconditions(); err != nil {
		return nil, err
	}

	payloadJSON, err := e.assemblePayload(ctx)
	if err != nil {
		return nil, err
	}

	channelID := e.channelID()

	var ref *capsy.PostRef
	if e.editing {
		ref, err = e.capsy.UpdatePost(ctx, capsy.UpdatePostRequest{
			PostID:    e.postID,
			Title:     payloadJSON,
			ChannelID: channelID,
		})
	} else {
		ref, err = e.capsy.CreatePost(ctx, capsy.CreatePostRequest{
			PayloadJSON: payloadJSON,
			ChannelID:   channelID,
		})
	}
	if err != nil {
		e.logger.Error("Save failed", "editing", e.editing, "error", err)
		return nil, err
	}

	e.recordCapsule(ctx, ref)
	return ref, nil
}

func (e *EditorImpl) Reset() {
	e.draft = domain.Draft{Mode: domain.ModeGeneral}
	e.editing = false
	e.postID = ""
}

// checkPreconditions enforces the submission rules in order; the first
// failure wins and nothing is sent.
func (e *EditorImpl) checkPreconditions() error {
	if strings.TrimSpace(e.draft.Title) == "" {
		return editor.ErrTitleRequired
	}
	if strings.TrimSpace(e.draft.Body) == "" {
		return editor.ErrBodyRequired
	}
	if e.draft.Mode == domain.ModeTimeCapsule {
		if len(e.draft.Media) == 0 {
			return editor.ErrMediaRequired
		}
		// Format and future-date checks already ran in the date picker; only
		// presence matters here.
		if !e.draft.RevealDate.Complete() {
			return editor.ErrDateRequired
		}
	}
	return nil
}

func (e *EditorImpl) channelID() string {
	if e.draft.Mode == domain.ModeTimeCapsule {
		return e.config.Capsy.CapsuleChannelID
	}
	return e.config.Capsy.PostChannelID
}

// recordCapsule writes a ledger row for a newly created capsule so the
// notifier can announce it later. Best effort: a ledger failure never fails
// the save that already happened.
func (e *EditorImpl) recordCapsule(ctx context.Context, ref *capsy.PostRef) {
	if e.capsules == nil || e.editing || e.draft.Mode != domain.ModeTimeCapsule {
		return
	}

	revealAt, ok := e.revealInstant(e.draft.RevealDate)
	if !ok {
		return
	}

	err := e.capsules.Create(ctx, domain.Capsule{
		PostID:    ref.ID,
		Title:     e.draft.Title,
		ChannelID: e.channelID(),
		RevealAt:  revealAt,
	})
	if err != nil {
		e.logger.Warn("Failed to record capsule in the ledger", "postID", ref.ID, "error", err)
	}
}
