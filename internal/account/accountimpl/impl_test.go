package accountimpl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/capsy-labs/capsy-companion/internal/account"
	"github.com/capsy-labs/capsy-companion/internal/account/accountimpl"
	capsymocks "github.com/capsy-labs/capsy-companion/internal/capsy/mocks"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newAccount(t *testing.T) (*accountimpl.AccountImpl, *capsymocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockCapsy := capsymocks.NewMockClient(ctrl)
	impl := accountimpl.New(accountimpl.Opts{
		Capsy:  mockCapsy,
		Logger: logger.New(logger.Opts{Env: "test"}),
	})
	return impl, mockCapsy
}

func TestValidPassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{"Valid", "Abcdef1!", true},
		{"Valid Max Length", "Abcdef1!Abcdef1!", true},
		{"Too Short", "Abc1!", false},
		{"Too Long", "Abcdef1!Abcdef1!x", false},
		{"No Upper", "abcdef1!", false},
		{"No Lower", "ABCDEF1!", false},
		{"No Digit", "Abcdefg!", false},
		{"No Special", "Abcdefg1", false},
		{"Disallowed Character", "Abcdef1! ", false},
		{"Disallowed Special", "Abcdef1?", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := accountimpl.ValidPassword(tc.password); got != tc.want {
				t.Errorf("ValidPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestChangePassword_InvalidNeverReachesBackend(t *testing.T) {
	impl, _ := newAccount(t)

	if err := impl.ChangePassword(context.Background(), "short", "short"); !errors.Is(err, account.ErrPasswordPolicy) {
		t.Fatalf("expected ErrPasswordPolicy, got %v", err)
	}
}

func TestChangePassword_Mismatch(t *testing.T) {
	impl, _ := newAccount(t)

	if err := impl.ChangePassword(context.Background(), "Abcdef1!", "Abcdef2!"); !errors.Is(err, account.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestChangePassword_Succeeds(t *testing.T) {
	impl, mockCapsy := newAccount(t)

	mockCapsy.EXPECT().UpdatePassword(gomock.Any(), "Abcdef1!").Return(nil)

	if err := impl.ChangePassword(context.Background(), "Abcdef1!", "Abcdef1!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChangePassword_PropagatesBackendError(t *testing.T) {
	impl, mockCapsy := newAccount(t)

	wantErr := errors.New("upstream down")
	mockCapsy.EXPECT().UpdatePassword(gomock.Any(), "Abcdef1!").Return(wantErr)

	if err := impl.ChangePassword(context.Background(), "Abcdef1!", "Abcdef1!"); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
