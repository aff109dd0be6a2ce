package editorimpl

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/capsy/mocks"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/editor"
	"github.com/capsy-labs/capsy-companion/internal/media"
	"github.com/capsy-labs/capsy-companion/internal/media/mediaimpl"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fakeCapsuleRepo struct {
	created []domain.Capsule
}

func (f *fakeCapsuleRepo) Create(_ context.Context, c domain.Capsule) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCapsuleRepo) ListDue(context.Context, time.Time) ([]*domain.Capsule, error) {
	return nil, nil
}

func (f *fakeCapsuleRepo) MarkNotified(context.Context, int64) error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Capsy.PostChannelID = "chan-post"
	cfg.Capsy.CapsuleChannelID = "chan-capsule"
	cfg.Capsy.TimezoneOffsetHours = 9
	return cfg
}

func newEditor(t *testing.T) (*EditorImpl, *mocks.MockClient, *fakeCapsuleRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := &fakeCapsuleRepo{}
	log := logger.New(logger.Opts{Env: "test"})

	ed := New(Opts{
		Capsy:    client,
		Media:    mediaimpl.New(mediaimpl.Opts{Logger: log}),
		Capsules: repo,
		Logger:   log,
		Config:   testConfig(),
	})
	return ed, client, repo
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSave_PreconditionsBlockInOrder(t *testing.T) {
	// No mock expectations anywhere here: a precondition failure must never
	// reach the network.
	tests := []struct {
		name    string
		prepare func(*EditorImpl)
		wantErr error
	}{
		{
			name:    "Blank Title",
			prepare: func(e *EditorImpl) { e.SetTitle("   ") },
			wantErr: editor.ErrTitleRequired,
		},
		{
			name: "Blank Body",
			prepare: func(e *EditorImpl) {
				e.SetTitle("t")
				e.SetBody(" \n ")
			},
			wantErr: editor.ErrBodyRequired,
		},
		{
			name: "Capsule Without Media",
			prepare: func(e *EditorImpl) {
				e.SetTitle("t")
				e.SetBody("b")
				e.SetMode(domain.ModeTimeCapsule)
				e.SetRevealDate(domain.RevealDate{Year: "2030", Month: "1", Day: "1"})
			},
			wantErr: editor.ErrMediaRequired,
		},
		{
			name: "Capsule Without Date",
			prepare: func(e *EditorImpl) {
				e.SetTitle("t")
				e.SetBody("b")
				e.SetMode(domain.ModeTimeCapsule)
				e.draft.Media = []domain.MediaItem{{Name: "x", MIME: "image/jpeg", Encoded: "data:image/jpeg;base64,AAA"}}
				e.SetRevealDate(domain.RevealDate{Year: "2030", Month: "1"})
			},
			wantErr: editor.ErrDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, _, _ := newEditor(t)
			tt.prepare(ed)
			if _, err := ed.Save(context.Background()); !apperrors.Is(err, tt.wantErr) {
				t.Errorf("Save() err = %v, want %v", err, tt.wantErr)
			}
			if ed.Draft().Title == "" && tt.wantErr != editor.ErrTitleRequired {
				t.Error("draft was not preserved after a failed save")
			}
		})
	}
}

func TestSave_GeneralPost(t *testing.T) {
	ed, client, repo := newEditor(t)
	ed.SetTitle("t")
	ed.SetBody("b")

	client.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req capsy.CreatePostRequest) (*capsy.PostRef, error) {
			if req.ChannelID != "chan-post" {
				t.Errorf("channelID = %q, want chan-post", req.ChannelID)
			}
			if req.PayloadJSON != `{"title":"t","content":"b","image":[]}` {
				t.Errorf("payload = %s", req.PayloadJSON)
			}
			return &capsy.PostRef{ID: "post-1"}, nil
		})

	ref, err := ed.Save(context.Background())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref.ID != "post-1" {
		t.Errorf("ref.ID = %q", ref.ID)
	}
	if len(repo.created) != 0 {
		t.Error("a general post must not be recorded in the capsule ledger")
	}
}

func TestSave_EscapesNewlines(t *testing.T) {
	ed, client, _ := newEditor(t)
	ed.SetTitle("t")
	ed.SetBody("line1\nline2")

	client.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req capsy.CreatePostRequest) (*capsy.PostRef, error) {
			var payload map[string]any
			if err := json.Unmarshal([]byte(req.PayloadJSON), &payload); err != nil {
				t.Fatalf("payload is not JSON: %v", err)
			}
			if payload["content"] != `line1\nline2` {
				t.Errorf("content = %q", payload["content"])
			}
			return &capsy.PostRef{ID: "post-2"}, nil
		})

	if _, err := ed.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestSave_TimeCapsule(t *testing.T) {
	ed, client, repo := newEditor(t)
	ed.SetTitle("capsule")
	ed.SetBody("open me later")
	ed.SetMode(domain.ModeTimeCapsule)
	ed.SetRevealDate(domain.RevealDate{Year: "2027", Month: "3", Day: "14"})
	ed.SetLocation(domain.Location{Name: "Seoul Forest", Address: "Seongsu-dong 1-ga", Latitude: 37.5444, Longitude: 127.0374})

	if err := ed.AttachFiles(context.Background(), writeTestPNG(t)); err != nil {
		t.Fatalf("AttachFiles: %v", err)
	}

	client.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req capsy.CreatePostRequest) (*capsy.PostRef, error) {
			if req.ChannelID != "chan-capsule" {
				t.Errorf("channelID = %q, want chan-capsule", req.ChannelID)
			}

			var payload domain.PostPayload
			if err := json.Unmarshal([]byte(req.PayloadJSON), &payload); err != nil {
				t.Fatalf("payload is not JSON: %v", err)
			}
			// Midnight on the chosen day, shifted back 9 hours.
			if payload.CloseAt != "2027-03-13T15:00:00.000Z" {
				t.Errorf("closeAt = %q", payload.CloseAt)
			}
			if len(payload.Image) != 1 || !strings.HasPrefix(payload.Image[0], "data:image/jpeg;base64,") {
				t.Errorf("image not encoded as expected: %d items", len(payload.Image))
			}
			if payload.CapsuleLocation == nil || *payload.CapsuleLocation != "Seoul Forest" {
				t.Error("capsuleLocation missing")
			}
			if payload.Latitude == nil || *payload.Latitude != 37.5444 {
				t.Error("latitude missing")
			}
			return &capsy.PostRef{ID: "capsule-1"}, nil
		})

	if _, err := ed.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(repo.created))
	}
	rec := repo.created[0]
	if rec.PostID != "capsule-1" || rec.ChannelID != "chan-capsule" {
		t.Errorf("unexpected ledger row: %+v", rec)
	}
	wantReveal := time.Date(2027, time.March, 13, 15, 0, 0, 0, time.UTC)
	if !rec.RevealAt.Equal(wantReveal) {
		t.Errorf("revealAt = %v, want %v", rec.RevealAt, wantReveal)
	}
}

func TestSave_InFlightGuard(t *testing.T) {
	ed, _, _ := newEditor(t)
	ed.SetTitle("t")
	ed.SetBody("b")
	ed.saving.Store(true)

	if _, err := ed.Save(context.Background()); !apperrors.Is(err, editor.ErrSaveInFlight) {
		t.Errorf("Save() err = %v, want ErrSaveInFlight", err)
	}
}

func TestLoad_RepopulatesCapsule(t *testing.T) {
	ed, client, _ := newEditor(t)

	stored := `{"title":"hello","content":"line1\\nline2","closeAt":"2027-03-13T15:00:00.000Z",` +
		`"image":["data:image/jpeg;base64,AAA"],"capsuleLocation":"Seoul Forest",` +
		`"address":"Seongsu-dong 1-ga","latitude":37.5444,"longitude":127.0374}`
	client.EXPECT().
		GetPostDetail(gomock.Any(), "post-9").
		Return(&capsy.PostDetail{ID: "post-9", Title: stored}, nil)

	if err := ed.Load(context.Background(), "post-9"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := ed.Draft()
	if d.Title != "hello" {
		t.Errorf("title = %q", d.Title)
	}
	if d.Body != "line1\nline2" {
		t.Errorf("body = %q", d.Body)
	}
	if d.Mode != domain.ModeTimeCapsule {
		t.Errorf("mode = %q, want timeCapsule because closeAt is present", d.Mode)
	}
	if d.RevealDate != (domain.RevealDate{Year: "2027", Month: "3", Day: "14"}) {
		t.Errorf("revealDate = %+v", d.RevealDate)
	}
	if len(d.Media) != 1 || d.Media[0].Encoded != "data:image/jpeg;base64,AAA" {
		t.Errorf("media not restored: %+v", d.Media)
	}
	if d.Location == nil || d.Location.Name != "Seoul Forest" || d.Location.Latitude != 37.5444 {
		t.Errorf("location not restored: %+v", d.Location)
	}
}

func TestLoad_FailureLeavesDraftEmpty(t *testing.T) {
	ed, client, _ := newEditor(t)
	client.EXPECT().
		GetPostDetail(gomock.Any(), "missing").
		Return(nil, apperrors.ErrNotFound)

	if err := ed.Load(context.Background(), "missing"); err == nil {
		t.Fatal("Load should fail")
	}
	if d := ed.Draft(); d.Title != "" || d.Body != "" || len(d.Media) != 0 {
		t.Errorf("draft not empty after failed load: %+v", d)
	}
}

func TestLoadThenSave_IssuesUpdate(t *testing.T) {
	ed, client, repo := newEditor(t)

	stored := `{"title":"hello","content":"body","closeAt":"2027-03-13T15:00:00.000Z","image":["data:image/jpeg;base64,AAA"]}`
	client.EXPECT().
		GetPostDetail(gomock.Any(), "post-9").
		Return(&capsy.PostDetail{ID: "post-9", Title: stored}, nil)

	if err := ed.Load(context.Background(), "post-9"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ed.SetTitle("hello again")

	client.EXPECT().
		UpdatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req capsy.UpdatePostRequest) (*capsy.PostRef, error) {
			if req.PostID != "post-9" {
				t.Errorf("postID = %q", req.PostID)
			}
			if req.ChannelID != "chan-capsule" {
				t.Errorf("channelID = %q", req.ChannelID)
			}
			var payload domain.PostPayload
			if err := json.Unmarshal([]byte(req.Title), &payload); err != nil {
				t.Fatalf("payload is not JSON: %v", err)
			}
			if payload.Title != "hello again" {
				t.Errorf("payload title = %q", payload.Title)
			}
			// Restored media is reused as-is rather than re-encoded.
			if len(payload.Image) != 1 || payload.Image[0] != "data:image/jpeg;base64,AAA" {
				t.Errorf("image = %+v", payload.Image)
			}
			return &capsy.PostRef{ID: "post-9"}, nil
		})

	if _, err := ed.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("an edit must not add a new ledger row")
	}
}

type rejectingPreparer struct {
	media.Preparer
}

func (rejectingPreparer) EncodeFile(context.Context, string) (string, error) {
	return "data:text/plain;base64,AAA", nil
}

func (rejectingPreparer) ValidateSize(string) error { return media.ErrTooLarge }

func TestAttachFiles_OversizeRejectsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.New(logger.Opts{Env: "test"})
	ed := New(Opts{
		Capsy:  mocks.NewMockClient(ctrl),
		Media:  rejectingPreparer{},
		Logger: log,
		Config: testConfig(),
	})

	path := filepath.Join(t.TempDir(), "clip.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ed.AttachFiles(context.Background(), path); !apperrors.Is(err, media.ErrTooLarge) {
		t.Errorf("AttachFiles err = %v, want ErrTooLarge", err)
	}
	if len(ed.Draft().Media) != 0 {
		t.Error("media staged despite the size violation")
	}
}

func TestRemoveMedia(t *testing.T) {
	ed, _, _ := newEditor(t)
	ed.draft.Media = []domain.MediaItem{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	ed.RemoveMedia(1)
	if len(ed.draft.Media) != 2 || ed.draft.Media[0].Name != "a" || ed.draft.Media[1].Name != "c" {
		t.Errorf("media after removal: %+v", ed.draft.Media)
	}

	// Out-of-range indexes are ignored.
	ed.RemoveMedia(5)
	ed.RemoveMedia(-1)
	if len(ed.draft.Media) != 2 {
		t.Errorf("media length changed by bad index: %d", len(ed.draft.Media))
	}
}
