package capsyimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *CapsyImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Capsy.BaseURL = srv.URL
	cfg.Capsy.AccessToken = "test-token"
	cfg.Capsy.TimeoutSeconds = 5

	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{Env: "test"})})
}

func TestCreatePost(t *testing.T) {
	var gotTitle, gotChannel, gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts/create" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		gotTitle = r.FormValue("title")
		gotChannel = r.FormValue("channelId")
		_ = json.NewEncoder(w).Encode(map[string]string{"_id": "post-123"})
	}))

	ref, err := client.CreatePost(context.Background(), capsy.CreatePostRequest{
		PayloadJSON: `{"title":"t","content":"b","image":[]}`,
		ChannelID:   "chan-post",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if ref.ID != "post-123" {
		t.Errorf("ref.ID = %q", ref.ID)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotTitle != `{"title":"t","content":"b","image":[]}` {
		t.Errorf("title field = %q", gotTitle)
	}
	if gotChannel != "chan-post" {
		t.Errorf("channelId field = %q", gotChannel)
	}
}

func TestUpdatePost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/posts/update" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req capsy.UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.PostID != "post-9" || req.ChannelID != "chan-capsule" {
			t.Errorf("unexpected body: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"_id": req.PostID})
	}))

	ref, err := client.UpdatePost(context.Background(), capsy.UpdatePostRequest{
		PostID:    "post-9",
		Title:     `{"title":"t","content":"b","image":[]}`,
		ChannelID: "chan-capsule",
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if ref.ID != "post-9" {
		t.Errorf("ref.ID = %q", ref.ID)
	}
}

func TestGetPostDetail_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetPostDetail(context.Background(), "missing")
	if !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestGetUsers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/get-users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"_id":"u1","fullName":"Jang Wonyoung","isOnline":true}]`))
	}))

	users, err := client.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 || users[0].FullName != "Jang Wonyoung" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestUpdatePassword(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/settings/update-password" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.UpdatePassword(context.Background(), "Secret1!"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if gotBody["password"] != "Secret1!" {
		t.Errorf("body = %v", gotBody)
	}
}
